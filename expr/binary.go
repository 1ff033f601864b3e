package expr

import "fmt"

// Operator 二元运算符，仅覆盖构造谓词所需的比较和逻辑运算
type Operator string

const (
	OpEq    Operator = "=="
	OpNotEq Operator = "!="
	OpGt    Operator = ">"
	OpGtEq  Operator = ">="
	OpLt    Operator = "<"
	OpLtEq  Operator = "<="
	OpAnd   Operator = "&&"
	OpOr    Operator = "||"
)

// IsComparison reports whether the operator compares two values
func (op Operator) IsComparison() bool {
	switch op {
	case OpEq, OpNotEq, OpGt, OpGtEq, OpLt, OpLtEq:
		return true
	}
	return false
}

// IsLogical reports whether the operator combines two booleans
func (op Operator) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// Binary 二元表达式，原样转交给引擎
type Binary struct {
	Left  Node
	Op    Operator
	Right Node
}

func binary(left Node, op Operator, right Node) Binary {
	return Binary{Left: left, Op: op, Right: right}
}

// Eq 相等比较，null 参与比较时结果为 null
func Eq(left, right Node) Binary { return binary(left, OpEq, right) }

// NotEq 不等比较
func NotEq(left, right Node) Binary { return binary(left, OpNotEq, right) }

// Gt 大于
func Gt(left, right Node) Binary { return binary(left, OpGt, right) }

// GtEq 大于等于
func GtEq(left, right Node) Binary { return binary(left, OpGtEq, right) }

// Lt 小于
func Lt(left, right Node) Binary { return binary(left, OpLt, right) }

// LtEq 小于等于
func LtEq(left, right Node) Binary { return binary(left, OpLtEq, right) }

// And 逻辑与，按三值逻辑求值
func And(left, right Node) Binary { return binary(left, OpAnd, right) }

// Or 逻辑或，按三值逻辑求值
func Or(left, right Node) Binary { return binary(left, OpOr, right) }

func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", nodeString(b.Left), b.Op, nodeString(b.Right))
}

func (b Binary) Equal(other Node) bool {
	o, ok := other.(Binary)
	return ok && b.Op == o.Op && Equal(b.Left, o.Left) && Equal(b.Right, o.Right)
}
