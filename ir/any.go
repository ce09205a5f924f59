package ir

import (
	"maps"
	"slices"

	"github.com/fieldsense/go-json/diag"
)

// ToAny converts a tree to plain Go values: nil, bool, float64, string,
// []any and map[string]any. Object insertion order is lost; map
// iteration order is unspecified.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Number
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, el := range v.Values {
			res[i] = ToAny(el)
		}
		return res
	case ObjectType:
		res := make(map[string]any, v.Len())
		for _, k := range v.Keys() {
			res[k] = ToAny(v.Get(k))
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values to a tree. Maps become objects with
// keys in sorted order, since Go map iteration order carries no
// information. Integer and float widths are folded to float64.
func FromAny(x any) (*Value, *diag.Error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case float64:
		return FromFloat(t), nil
	case float32:
		return FromFloat(float64(t)), nil
	case int:
		return FromFloat(float64(t)), nil
	case int32:
		return FromFloat(float64(t)), nil
	case int64:
		return FromFloat(float64(t)), nil
	case uint64:
		return FromFloat(float64(t)), nil
	case string:
		return FromString(t), nil
	case []any:
		res := NewArray()
		for _, el := range t {
			ev, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			ev, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, ev)
		}
		return res, nil
	}
	return nil, diag.New(diag.CodeInvalidValue, "cannot represent %T", x)
}
