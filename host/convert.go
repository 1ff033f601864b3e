package host

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// maxSafeInteger 2^53-1，超过该范围的整数不能用 float64 精确表示
const maxSafeInteger = 1<<53 - 1

// FromGo 将Go运行时值转换为宿主值。
// 转换规则：
//   - nil -> Null
//   - bool -> Bool
//   - string -> String
//   - 浮点数 -> Number
//   - 整数：安全范围内 -> Number，超出 -> BigInt
//   - *big.Int -> BigInt
//   - json.Number：整数形式按整数规则，其他按浮点
//   - 切片/数组 -> Array，键为字符串的map -> Object
//   - 其余类型 -> Other
//
// 已经是 Value 的参数按 Canonical 规范后返回。
func FromGo(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Canonical(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return nil, fmt.Errorf("convert %T: %w", v, err)
		}
		return Number(f), nil
	case int, int8, int16, int32, int64:
		n, err := cast.ToInt64E(x)
		if err != nil {
			return nil, fmt.Errorf("convert %T: %w", v, err)
		}
		return fromInt64(n), nil
	case uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToUint64E(x)
		if err != nil {
			return nil, fmt.Errorf("convert %T: %w", v, err)
		}
		if n > maxSafeInteger {
			return NewBigInt(new(big.Int).SetUint64(n)), nil
		}
		return Number(float64(n)), nil
	case *big.Int:
		return NewBigInt(x), nil
	case json.Number:
		return fromJSONNumber(x)
	case []interface{}:
		return fromSlice(reflect.ValueOf(x))
	case map[string]interface{}:
		return fromStringMap(x)
	case map[interface{}]interface{}:
		m, err := cast.ToStringMapE(x)
		if err != nil {
			return nil, fmt.Errorf("convert %T: %w", v, err)
		}
		return fromStringMap(m)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromSlice(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]interface{}, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			return fromStringMap(m)
		}
	}
	return Other{TypeName: fmt.Sprintf("%T", v)}, nil
}

func fromInt64(n int64) Value {
	if n > maxSafeInteger || n < -maxSafeInteger {
		return NewBigInt(big.NewInt(n))
	}
	return Number(float64(n))
}

// fromJSONNumber 整数形式的数字保留为整数，超出安全范围时成为 BigInt
func fromJSONNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if b, ok := ParseBigInt(s); ok {
			if b.v.IsInt64() {
				return fromInt64(b.v.Int64()), nil
			}
			return b, nil
		}
	}
	f, err := cast.ToFloat64E(n)
	if err != nil {
		return nil, fmt.Errorf("convert number %q: %w", s, err)
	}
	return Number(f), nil
}

func fromSlice(rv reflect.Value) (Value, error) {
	// []byte 视为不透明值而不是数字数组
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return Other{TypeName: rv.Type().String()}, nil
	}
	arr := make(Array, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := FromGo(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		arr[i] = elem
	}
	return arr, nil
}

func fromStringMap(m map[string]interface{}) (Value, error) {
	obj := make(Object, len(m))
	for k, elem := range m {
		v, err := FromGo(elem)
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", k, err)
		}
		obj[k] = v
	}
	return obj, nil
}
