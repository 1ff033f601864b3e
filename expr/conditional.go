package expr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyConditional 条件表达式至少需要一个分支
	ErrEmptyConditional = errors.New("conditional expression requires at least one branch")
	// ErrNilNode 表达式树中不允许出现nil节点
	ErrNilNode = errors.New("nil expression node")
)

// Branch 一个 WHEN ... THEN ... 分支
type Branch struct {
	Predicate Node
	Result    Node
}

// Equal 结构相等比较
func (b Branch) Equal(o Branch) bool {
	return Equal(b.Predicate, o.Predicate) && Equal(b.Result, o.Result)
}

// Conditional 多分支条件表达式。
// 引擎按声明顺序求值分支，第一个命中的谓词胜出，都不命中时取 otherwise。
// 二分支三元表达式也使用同一表示（只有一个分支）。
type Conditional struct {
	branches  []Branch
	otherwise Node
}

// Ternary 创建 if-then-else 三元表达式，等价于单分支的 Conditional。
// 参数经 Normalize 处理，nil 成为空值字面量。
func Ternary(predicate, then, otherwise Node) Conditional {
	return Conditional{
		branches:  []Branch{{Predicate: Normalize(predicate), Result: Normalize(then)}},
		otherwise: Normalize(otherwise),
	}
}

// NewConditional 由分支列表和兜底结果创建条件表达式。
// 分支被复制，顺序保持不变，不做排序或去重；子树中的空条件表达式经 Normalize 折叠。
func NewConditional(branches []Branch, otherwise Node) (Conditional, error) {
	if len(branches) == 0 {
		return Conditional{}, ErrEmptyConditional
	}
	for i, b := range branches {
		if b.Predicate == nil {
			return Conditional{}, fmt.Errorf("branch %d predicate: %w", i, ErrNilNode)
		}
		if b.Result == nil {
			return Conditional{}, fmt.Errorf("branch %d result: %w", i, ErrNilNode)
		}
	}
	if otherwise == nil {
		return Conditional{}, fmt.Errorf("otherwise: %w", ErrNilNode)
	}
	cp := make([]Branch, len(branches))
	for i, b := range branches {
		cp[i] = Branch{Predicate: Normalize(b.Predicate), Result: Normalize(b.Result)}
	}
	return Conditional{branches: cp, otherwise: Normalize(otherwise)}, nil
}

// Branches returns a copy of the branches in declaration order
func (c Conditional) Branches() []Branch {
	cp := make([]Branch, len(c.branches))
	copy(cp, c.branches)
	return cp
}

// Otherwise returns the fallback result
func (c Conditional) Otherwise() Node {
	return c.otherwise
}

func (c Conditional) String() string {
	var sb strings.Builder
	for i, b := range c.branches {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString("when(")
		sb.WriteString(nodeString(b.Predicate))
		sb.WriteString(").then(")
		sb.WriteString(nodeString(b.Result))
		sb.WriteString(")")
	}
	sb.WriteString(".otherwise(")
	sb.WriteString(nodeString(c.otherwise))
	sb.WriteString(")")
	return sb.String()
}

func (c Conditional) Equal(other Node) bool {
	o, ok := other.(Conditional)
	if !ok || len(o.branches) != len(c.branches) {
		return false
	}
	for i := range c.branches {
		if !c.branches[i].Equal(o.branches[i]) {
			return false
		}
	}
	return Equal(c.otherwise, o.otherwise)
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
