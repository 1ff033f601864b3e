package host

import (
	"bytes"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode 将一个JSON文本解码为宿主值。
// 数字以原始文本解码：整数保留为整数，超出 float64 精确范围时成为 BigInt，
// 与宿主环境的 bigint 语义一致。
func Decode(data []byte) (Value, error) {
	dec := jsonAPI.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode host value: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode host value: unexpected trailing data")
	}
	return FromGo(raw)
}

// ToGo 将宿主值转换回普通Go值，用于日志和调试输出
func ToGo(v Value) interface{} {
	switch x := v.(type) {
	case Null, Undefined, nil:
		return nil
	case Bool:
		return bool(x)
	case Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return x.String()
		}
		return f
	case BigInt:
		return x.Int()
	case String:
		return string(x)
	case Array:
		out := make([]interface{}, len(x))
		for i, elem := range x {
			out[i] = ToGo(elem)
		}
		return out
	case Object:
		out := make(map[string]interface{}, len(x))
		for k, elem := range x {
			out[k] = ToGo(elem)
		}
		return out
	case Other:
		return "<" + x.TypeName + ">"
	default:
		return nil
	}
}
