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
Package lazyexpr 是列式查询引擎前面的惰性表达式构建层。

调用方在列名之上构建符号表达式：列引用、字面量、多分支条件表达式。
构建过程不执行任何计算，得到的不可变表达式树交给独立的查询引擎求值。

# 核心特性

• 条件表达式链 - When/Then/Otherwise，每个链位置是独立的类型，不完整的链无法结束
• 字面量转换 - 按固定顺序把带类型标签的宿主值转换为类型化字面量
• 列选择 - 单列、通配符、正则、列列表，名称原样保留给引擎解析
• 无状态 - 没有缓存、计数器或注册表，相同输入得到结构相等的树

# 入门示例

	import (
		"github.com/rulego/lazyexpr"
		"github.com/rulego/lazyexpr/expr"
	)

	temp := lazyexpr.Col("temp")
	level := lazyexpr.When(expr.Gt(temp, lazyexpr.MustLit(30))).
		Then(lazyexpr.MustLit("hot")).
		When(expr.Gt(temp, lazyexpr.MustLit(20))).
		Then(lazyexpr.MustLit("warm")).
		Otherwise(lazyexpr.MustLit("cold"))

	fmt.Println(level)
	// when((col("temp") > lit(30))).then(lit("hot")).when((col("temp") > lit(20))).then(lit("warm")).otherwise(lit("cold"))

# 字面量

宿主值按以下顺序匹配，第一个命中的规则生效：

 1. 大整数 -> float64 数值（超过 2^53 时丢失精度，这是有意保留的行为）
 2. null / undefined -> 空值字面量
 3. 字符串 -> 字符串字面量
 4. 布尔 -> 布尔字面量
 5. 数值 -> 数值字面量
 6. 数组 -> ErrUnsupportedLiteralType
 7. 其他 -> ErrUnsupportedLiteralType

# 求值

本包只构建表达式树。engine 包提供一个内存参考求值器，供命令行工具和测试使用；
生产环境中表达式树交给外部查询引擎。
*/
package lazyexpr
