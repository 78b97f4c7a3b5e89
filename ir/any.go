package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

func fromNumber(raw string) (*Node, error) {
	res := &Node{Type: NumberType, Number: raw}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		res.Int64 = &i
		return res, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", raw, err)
	}
	res.Float64 = &f
	return res, nil
}

// ToAny converts a node to plain Go values: nil, bool, int64, float64,
// json.Number, string, []any and map[string]any. Object key order is
// not represented in the result; order-sensitive consumers use
// MarshalJSON instead.
func ToAny(node *Node) any {
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	default:
		return nil
	}
}
