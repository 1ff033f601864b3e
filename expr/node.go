package expr

import (
	"strconv"
	"strings"
)

// Node 表达式树节点。
// 节点构造后不可变，子树可以被多棵树共享引用。
// 只有本包内的类型实现该接口。
type Node interface {
	// String 渲染节点，如 col("a")、lit(3.5)
	String() string
	// Equal 结构相等比较
	Equal(other Node) bool

	node()
}

// Column 单列引用。名称原样保留，"*" 通配符和 "^...$" 正则由引擎解释
type Column struct {
	Name string
}

// Columns 多列引用，保持声明顺序
type Columns struct {
	names []string
}

// Literal 类型化字面量
type Literal struct {
	Value Scalar
}

// Count 引擎原生的行计数
type Count struct{}

// First 引擎原生的第一列选择
type First struct{}

// Last 引擎原生的最后一列选择
type Last struct{}

func (Column) node()      {}
func (Columns) node()     {}
func (Literal) node()     {}
func (Conditional) node() {}
func (Count) node()       {}
func (First) node()       {}
func (Last) node()        {}
func (Binary) node()      {}

// Col 创建单列引用
func Col(name string) Column {
	return Column{Name: name}
}

// Cols 创建多列引用，复制传入的切片
func Cols(names []string) Columns {
	cp := make([]string, len(names))
	copy(cp, names)
	return Columns{names: cp}
}

// Lit 创建字面量节点
func Lit(value Scalar) Literal {
	return Literal{Value: value}
}

// CountRows creates the engine-native row count node
func CountRows() Count {
	return Count{}
}

// FirstColumn creates the engine-native first-column node
func FirstColumn() First {
	return First{}
}

// LastColumn creates the engine-native last-column node
func LastColumn() Last {
	return Last{}
}

// Names returns a copy of the selected column names
func (c Columns) Names() []string {
	cp := make([]string, len(c.names))
	copy(cp, c.names)
	return cp
}

// Len returns the number of selected columns
func (c Columns) Len() int {
	return len(c.names)
}

func (c Column) String() string {
	return "col(" + strconv.Quote(c.Name) + ")"
}

func (c Columns) String() string {
	quoted := make([]string, len(c.names))
	for i, n := range c.names {
		quoted[i] = strconv.Quote(n)
	}
	return "cols([" + strings.Join(quoted, ", ") + "])"
}

func (l Literal) String() string {
	return "lit(" + l.Value.String() + ")"
}

func (Count) String() string { return "count()" }
func (First) String() string { return "first()" }
func (Last) String() string  { return "last()" }

func (c Column) Equal(other Node) bool {
	o, ok := other.(Column)
	return ok && o.Name == c.Name
}

func (c Columns) Equal(other Node) bool {
	o, ok := other.(Columns)
	if !ok || len(o.names) != len(c.names) {
		return false
	}
	for i := range c.names {
		if c.names[i] != o.names[i] {
			return false
		}
	}
	return true
}

func (l Literal) Equal(other Node) bool {
	o, ok := other.(Literal)
	return ok && l.Value.Equal(o.Value)
}

func (Count) Equal(other Node) bool {
	_, ok := other.(Count)
	return ok
}

func (First) Equal(other Node) bool {
	_, ok := other.(First)
	return ok
}

func (Last) Equal(other Node) bool {
	_, ok := other.(Last)
	return ok
}

// Equal 比较两棵树是否结构相等，允许 nil
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
