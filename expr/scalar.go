package expr

import (
	"math"
	"strconv"
)

// DataType 字面量的标量类型
type DataType int

const (
	// Null 引擎原生的空值标记，不等同于任何语言的 nil
	Null DataType = iota
	// Boolean 布尔类型
	Boolean
	// Float64 64位浮点类型，所有数值字面量（包括大整数）都落在这里
	Float64
	// Utf8 字符串类型
	Utf8
)

// String returns the engine-facing name of the data type
func (t DataType) String() string {
	switch t {
	case Null:
		return "null"
	case Boolean:
		return "bool"
	case Float64:
		return "float64"
	case Utf8:
		return "utf8"
	default:
		return "unknown"
	}
}

// Scalar 类型化的标量值，构造后不可变
type Scalar struct {
	typ DataType
	b   bool
	f   float64
	s   string
}

// NullScalar 创建空值标量
func NullScalar() Scalar {
	return Scalar{typ: Null}
}

// BoolScalar 创建布尔标量
func BoolScalar(b bool) Scalar {
	return Scalar{typ: Boolean, b: b}
}

// Float64Scalar 创建浮点标量
func Float64Scalar(f float64) Scalar {
	return Scalar{typ: Float64, f: f}
}

// StringScalar 创建字符串标量
func StringScalar(s string) Scalar {
	return Scalar{typ: Utf8, s: s}
}

// Type returns the scalar's data type
func (s Scalar) Type() DataType {
	return s.typ
}

// IsNull reports whether the scalar is the typed null marker
func (s Scalar) IsNull() bool {
	return s.typ == Null
}

// Bool returns the boolean payload; ok is false for other types
func (s Scalar) Bool() (v bool, ok bool) {
	return s.b, s.typ == Boolean
}

// Float64 returns the numeric payload; ok is false for other types
func (s Scalar) Float64() (v float64, ok bool) {
	return s.f, s.typ == Float64
}

// Str returns the string payload; ok is false for other types
func (s Scalar) Str() (v string, ok bool) {
	return s.s, s.typ == Utf8
}

// Interface 返回对应的Go值，空值返回nil
func (s Scalar) Interface() interface{} {
	switch s.typ {
	case Boolean:
		return s.b
	case Float64:
		return s.f
	case Utf8:
		return s.s
	default:
		return nil
	}
}

// Equal 结构相等比较。NaN 与 NaN 视为相等，保证同样的构造得到相等的树
func (s Scalar) Equal(o Scalar) bool {
	if s.typ != o.typ {
		return false
	}
	switch s.typ {
	case Null:
		return true
	case Boolean:
		return s.b == o.b
	case Float64:
		if math.IsNaN(s.f) && math.IsNaN(o.f) {
			return true
		}
		return s.f == o.f
	case Utf8:
		return s.s == o.s
	default:
		return false
	}
}

// String renders the scalar the way it appears inside lit(...)
func (s Scalar) String() string {
	switch s.typ {
	case Null:
		return "null"
	case Boolean:
		return strconv.FormatBool(s.b)
	case Float64:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case Utf8:
		return strconv.Quote(s.s)
	default:
		return "?"
	}
}
