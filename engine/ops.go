package engine

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/rulego/lazyexpr/expr"
)

// 运算符到 expr-lang 辅助函数名的映射
var opFunctions = map[expr.Operator]string{
	expr.OpEq:    "cmp_eq",
	expr.OpNotEq: "cmp_ne",
	expr.OpGt:    "cmp_gt",
	expr.OpGtEq:  "cmp_ge",
	expr.OpLt:    "cmp_lt",
	expr.OpLtEq:  "cmp_le",
	expr.OpAnd:   "and3",
	expr.OpOr:    "or3",
}

// truthy 条件分支的谓词：null 视为不命中
func truthy(v interface{}) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	default:
		return false, fmt.Errorf("%w: got %T", ErrNotBoolean, v)
	}
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// compare 比较两个值，任一侧为 null 时结果为 null。
// 数值之间统一按 float64 比较；类型不同的值只能判断相等性。
func compare(op expr.Operator, a, b interface{}) (interface{}, error) {
	if a == nil || b == nil {
		return nil, nil
	}

	var c int
	switch {
	case isNumeric(a) && isNumeric(b):
		fa, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, err
		}
		fb, err := cast.ToFloat64E(b)
		if err != nil {
			return nil, err
		}
		switch {
		case fa < fb:
			c = -1
		case fa > fb:
			c = 1
		}
	default:
		sa, aIsString := a.(string)
		sb, bIsString := b.(string)
		ba, aIsBool := a.(bool)
		bb, bIsBool := b.(bool)
		switch {
		case aIsString && bIsString:
			switch {
			case sa < sb:
				c = -1
			case sa > sb:
				c = 1
			}
		case aIsBool && bIsBool:
			if op != expr.OpEq && op != expr.OpNotEq {
				return nil, fmt.Errorf("cannot order booleans with %s", op)
			}
			if ba != bb {
				c = 1
			}
		default:
			if op == expr.OpEq {
				return false, nil
			}
			if op == expr.OpNotEq {
				return true, nil
			}
			return nil, fmt.Errorf("cannot compare %T with %T using %s", a, b, op)
		}
	}

	switch op {
	case expr.OpEq:
		return c == 0, nil
	case expr.OpNotEq:
		return c != 0, nil
	case expr.OpGt:
		return c > 0, nil
	case expr.OpGtEq:
		return c >= 0, nil
	case expr.OpLt:
		return c < 0, nil
	case expr.OpLtEq:
		return c <= 0, nil
	default:
		return nil, fmt.Errorf("unsupported comparison operator %s", op)
	}
}

// logical 三值逻辑的 AND / OR
func logical(op expr.Operator, a, b interface{}) (interface{}, error) {
	for _, v := range []interface{}{a, b} {
		if _, ok := v.(bool); v != nil && !ok {
			return nil, fmt.Errorf("%w: %s operand is %T", ErrNotBoolean, op, v)
		}
	}
	ba, aKnown := a.(bool)
	bb, bKnown := b.(bool)

	switch op {
	case expr.OpAnd:
		if (aKnown && !ba) || (bKnown && !bb) {
			return false, nil
		}
		if aKnown && bKnown {
			return true, nil
		}
		return nil, nil
	case expr.OpOr:
		if (aKnown && ba) || (bKnown && bb) {
			return true, nil
		}
		if aKnown && bKnown {
			return false, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported logical operator %s", op)
	}
}
