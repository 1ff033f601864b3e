package lazyexpr

import (
	"errors"
	"fmt"

	"github.com/rulego/lazyexpr/expr"
	"github.com/rulego/lazyexpr/host"
	"github.com/rulego/lazyexpr/logger"
)

// ErrUnsupportedLiteralType 宿主值无法转换为字面量（数组、对象等）
var ErrUnsupportedLiteralType = errors.New("unsupported literal type")

// UnsupportedLiteralTypeError 携带导致失败的宿主值类型标签
type UnsupportedLiteralTypeError struct {
	Kind host.Kind
}

func (e *UnsupportedLiteralTypeError) Error() string {
	return fmt.Sprintf("%s: %s literals are not yet supported", ErrUnsupportedLiteralType, e.Kind)
}

// Is 使 errors.Is(err, ErrUnsupportedLiteralType) 成立
func (e *UnsupportedLiteralTypeError) Is(target error) bool {
	return target == ErrUnsupportedLiteralType
}

// Lit 将宿主值转换为类型化字面量。
// 按固定顺序匹配类型标签，第一个命中的规则生效：
//  1. BigInt -> 最接近的 float64 数值字面量（超过 2^53 时丢失精度）
//  2. Null / Undefined -> 空值字面量
//  3. String -> 字符串字面量
//  4. Bool -> 布尔字面量
//  5. Number -> 数值字面量
//  6. Array -> ErrUnsupportedLiteralType
//  7. 其他 -> ErrUnsupportedLiteralType
//
// 指针形式的宿主值先解引用，nil 指针按 undefined 处理。
// 失败时不返回任何节点。
func Lit(v host.Value) (expr.Node, error) {
	switch x := host.Canonical(v).(type) {
	case host.BigInt:
		return expr.Lit(expr.Float64Scalar(x.Float64())), nil
	case host.Null, host.Undefined:
		return expr.Lit(expr.NullScalar()), nil
	case host.String:
		return expr.Lit(expr.StringScalar(string(x))), nil
	case host.Bool:
		return expr.Lit(expr.BoolScalar(bool(x))), nil
	case host.Number:
		return expr.Lit(expr.Float64Scalar(float64(x))), nil
	case host.Array:
		return nil, unsupported(host.KindArray)
	case host.Object:
		return nil, unsupported(host.KindObject)
	default:
		return nil, unsupported(host.KindOther)
	}
}

// LitValue 先把Go值转换为宿主值，再按 Lit 的规则生成字面量
func LitValue(v interface{}) (expr.Node, error) {
	hv, err := host.FromGo(v)
	if err != nil {
		return nil, err
	}
	return Lit(hv)
}

// MustLit 与 LitValue 相同，失败时 panic。用于静态常量
func MustLit(v interface{}) expr.Node {
	node, err := LitValue(v)
	if err != nil {
		panic(err)
	}
	return node
}

func unsupported(kind host.Kind) error {
	logger.Debug("literal coercion rejected %s value", kind)
	return &UnsupportedLiteralTypeError{Kind: kind}
}
