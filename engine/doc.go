/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package engine 提供表达式树的内存参考求值器。

构建器只负责描述计算，本包在一个小型列式数据帧上执行这些描述，
用于测试、命令行工具和示例。它不是查询引擎：没有优化器，也不做类型推导。

# 求值规则

  - 顶层的 col/cols/first/last 直接选择列，"*" 和 "^...$" 可以展开为多列
  - 表达式内部的选择器必须恰好解析为一列
  - 条件表达式按声明顺序逐行求值，第一个为 true 的分支胜出；谓词为 null 视为不命中
  - 比较运算遇到 null 得到 null，and/or 使用三值逻辑
  - 字面量和 count() 产生标量，默认广播到数据帧的行数

复合表达式被翻译为 expr-lang 源码后编译执行，列值和字面量通过环境切片传入。

# 示例

	f, _ := engine.FrameFromRows([]string{"temp"}, rows)
	e := engine.New(engine.WithConfig(types.DefaultEngineConfig()))
	out, err := e.Select(ctx, f, lazyexpr.Col("temp"), lazyexpr.Count())
*/
package engine
