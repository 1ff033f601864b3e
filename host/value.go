package host

import (
	"math/big"
	"strconv"
)

// Kind 宿主值的运行时类型标签
type Kind int

const (
	KindNull Kind = iota
	KindUndefined
	KindBool
	KindNumber
	KindBigInt
	KindString
	KindArray
	KindObject
	KindOther
)

// String returns the tag name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "other"
	}
}

// Value 宿主环境传入的带运行时类型标签的值。
// 封闭的联合类型：只有本包内的类型实现该接口。
type Value interface {
	Kind() Kind
	hostValue()
}

// Null 宿主的 null
type Null struct{}

// Undefined 宿主的 undefined
type Undefined struct{}

// Bool 布尔值
type Bool bool

// Number 双精度浮点数值
type Number float64

// String 字符串值
type String string

// Array 数组值
type Array []Value

// Object 键值对对象
type Object map[string]Value

// Other 无法归类的宿主值（函数、symbol 等），只保留类型描述
type Other struct {
	TypeName string
}

// BigInt 任意精度整数，内部持有副本，不会被调用方修改
type BigInt struct {
	v *big.Int
}

// NewBigInt 创建大整数宿主值
func NewBigInt(v *big.Int) BigInt {
	if v == nil {
		return BigInt{v: new(big.Int)}
	}
	return BigInt{v: new(big.Int).Set(v)}
}

// ParseBigInt 解析十进制整数字符串
func ParseBigInt(s string) (BigInt, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, false
	}
	return BigInt{v: v}, true
}

// Int returns a copy of the integer
func (b BigInt) Int() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

// Float64 返回最接近的 float64 表示。超过 2^53 的整数会丢失精度
func (b BigInt) Float64() float64 {
	if b.v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(b.v).Float64()
	return f
}

func (b BigInt) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

func (Null) Kind() Kind      { return KindNull }
func (Undefined) Kind() Kind { return KindUndefined }
func (Bool) Kind() Kind      { return KindBool }
func (Number) Kind() Kind    { return KindNumber }
func (BigInt) Kind() Kind    { return KindBigInt }
func (String) Kind() Kind    { return KindString }
func (Array) Kind() Kind     { return KindArray }
func (Object) Kind() Kind    { return KindObject }
func (Other) Kind() Kind     { return KindOther }

func (Null) hostValue()      {}
func (Undefined) hostValue() {}
func (Bool) hostValue()      {}
func (Number) hostValue()    {}
func (BigInt) hostValue()    {}
func (String) hostValue()    {}
func (Array) hostValue()     {}
func (Object) hostValue()    {}
func (Other) hostValue()     {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Canonical 把宿主值规范为值形式。
// 方法都是值接收者，所以联合类型的指针也满足 Value；
// 非空指针解引用，nil 指针和 nil 接口按 Undefined 处理。
func Canonical(v Value) Value {
	switch x := v.(type) {
	case nil:
		return Undefined{}
	case *Null:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *Undefined:
		return Undefined{}
	case *Bool:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *Number:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *BigInt:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *String:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *Array:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *Object:
		if x == nil {
			return Undefined{}
		}
		return *x
	case *Other:
		if x == nil {
			return Undefined{}
		}
		return *x
	default:
		return v
	}
}
