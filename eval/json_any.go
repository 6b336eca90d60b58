package eval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/signadot/ldumpj/ir"
)

// ToAny converts node to plain Go values: objects become map[string]any,
// arrays []any and numbers int64 (or json.Number beyond 64 bits).
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return json.Number(node.Number)
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}

// FromAny converts the result of an evaluation back to a node. Map keys
// are sorted since Go maps carry no order.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x, nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return ir.FromInt(int64(x)), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		return ir.FromNumber(x.String()), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %v has no JSON representation", ErrEval, x)
		}
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return ir.FromInt(int64(x)), nil
		}
		return ir.FromNumber(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case []any:
		res := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return ir.FromSlice(res), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]ir.KeyVal, len(keys))
		for i, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: k, Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	}
	// other shapes go through their JSON form
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot convert %T: %w", ErrEval, v, err)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: cannot convert %T: %w", ErrEval, v, err)
	}
	return FromAny(generic)
}
