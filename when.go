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

package lazyexpr

import (
	"github.com/rulego/lazyexpr/expr"
)

// 条件表达式构建器。每个链位置对应一个独立的小类型，
// 只暴露该位置合法的方法，因此无法在缺少 then 或 otherwise 时结束链：
//
//	When(p)                     -> WhenBuilder
//	WhenBuilder.Then(t)         -> WhenThen
//	WhenThen.Otherwise(o)       -> expr.Node
//	WhenThen.When(p2)           -> ChainedWhen
//	ChainedWhen.Then(t2)        -> ChainedThen
//	ChainedThen.When(p3)        -> ChainedWhen
//	ChainedThen.Otherwise(o)    -> expr.Node
//
// 所有方法都返回新值，不修改接收者，从同一中间状态分叉出的链互不影响。

// WhenBuilder 已声明谓词、等待结果的初始状态
type WhenBuilder struct {
	predicate expr.Node
}

// WhenThen 只有一个完整分支的状态
type WhenThen struct {
	predicate expr.Node
	then      expr.Node
}

// ChainedWhen 多分支链中，最后一个谓词还在等待结果
type ChainedWhen struct {
	branches  []expr.Branch
	predicate expr.Node
}

// ChainedThen 多分支链中，所有已声明的分支都已完整
type ChainedThen struct {
	branches []expr.Branch
}

// When 开始一个条件表达式链。
//
// 示例:
//
//	node := lazyexpr.When(expr.Gt(lazyexpr.Col("temp"), lazyexpr.MustLit(30))).
//		Then(lazyexpr.MustLit("hot")).
//		When(expr.Gt(lazyexpr.Col("temp"), lazyexpr.MustLit(20))).
//		Then(lazyexpr.MustLit("warm")).
//		Otherwise(lazyexpr.MustLit("cold"))
func When(predicate expr.Node) WhenBuilder {
	return WhenBuilder{predicate: orNull(predicate)}
}

// Then 为谓词指定结果
func (w WhenBuilder) Then(result expr.Node) WhenThen {
	return WhenThen{predicate: w.predicate, then: orNull(result)}
}

// When 追加下一个分支的谓词
func (w WhenThen) When(predicate expr.Node) ChainedWhen {
	return ChainedWhen{
		branches:  []expr.Branch{{Predicate: w.predicate, Result: w.then}},
		predicate: orNull(predicate),
	}
}

// Otherwise 结束链，得到单分支的条件表达式（普通三元表达式）
func (w WhenThen) Otherwise(result expr.Node) expr.Node {
	return expr.Ternary(w.predicate, w.then, orNull(result))
}

// Then 为挂起的谓词指定结果，完成一个分支
func (c ChainedWhen) Then(result expr.Node) ChainedThen {
	return ChainedThen{branches: appendBranch(c.branches, expr.Branch{
		Predicate: c.predicate,
		Result:    orNull(result),
	})}
}

// When 追加下一个分支的谓词
func (c ChainedThen) When(predicate expr.Node) ChainedWhen {
	return ChainedWhen{branches: c.branches, predicate: orNull(predicate)}
}

// Otherwise 结束链，按声明顺序折叠所有分支
func (c ChainedThen) Otherwise(result expr.Node) expr.Node {
	node, err := expr.NewConditional(c.branches, orNull(result))
	if err != nil {
		// 状态类型保证至少有两个完整分支且没有nil节点
		panic(err)
	}
	return node
}

// appendBranch 总是复制，避免分叉的链共享底层数组
func appendBranch(branches []expr.Branch, b expr.Branch) []expr.Branch {
	out := make([]expr.Branch, len(branches), len(branches)+1)
	copy(out, branches)
	return append(out, b)
}

// orNull nil 参数按空值字面量处理，零值 Conditional 折叠为它的 otherwise，
// 完成的树中不出现nil节点或没有分支的条件表达式
func orNull(n expr.Node) expr.Node {
	return expr.Normalize(n)
}
