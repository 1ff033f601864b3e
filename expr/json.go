package expr

import (
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonBranch struct {
	Predicate Node `json:"predicate"`
	Then      Node `json:"then"`
}

type jsonBinary struct {
	Op    Operator `json:"op"`
	Left  Node     `json:"left"`
	Right Node     `json:"right"`
}

// MarshalJSON 非有限浮点数无法用JSON数字表示，编码为字符串
func (s Scalar) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{"type": s.typ.String()}
	switch s.typ {
	case Null:
		out["value"] = nil
	case Float64:
		if math.IsNaN(s.f) || math.IsInf(s.f, 0) {
			out["value"] = strconv.FormatFloat(s.f, 'g', -1, 64)
		} else {
			out["value"] = s.f
		}
	default:
		out["value"] = s.Interface()
	}
	return json.Marshal(out)
}

func (c Column) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"column": c.Name})
}

func (c Columns) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{"columns": c.Names()})
}

func (l Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Scalar{"literal": l.Value})
}

func (c Conditional) MarshalJSON() ([]byte, error) {
	branches := make([]jsonBranch, len(c.branches))
	for i, b := range c.branches {
		branches[i] = jsonBranch{Predicate: b.Predicate, Then: b.Result}
	}
	return json.Marshal(map[string]interface{}{
		"when":      branches,
		"otherwise": c.otherwise,
	})
}

func (b Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]jsonBinary{
		"binary": {Op: b.Op, Left: b.Left, Right: b.Right},
	})
}

func (Count) MarshalJSON() ([]byte, error) { return []byte(`{"count":{}}`), nil }
func (First) MarshalJSON() ([]byte, error) { return []byte(`{"first":{}}`), nil }
func (Last) MarshalJSON() ([]byte, error)  { return []byte(`{"last":{}}`), nil }
