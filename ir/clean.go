package ir

import (
	"math"

	"github.com/fieldsense/go-json/diag"
)

// CleanStats summarizes a CleanNaN pass.
type CleanStats struct {
	Original int
	Cleaned  int
	Removed  int
}

// CleanNaN filters an array of objects, dropping the entries whose
// field value is a NaN or infinite number, or null (the serialized
// form of a missing reading, since JSON text cannot carry NaN). Kept
// entries are deep copies; the input is not modified. Entries without
// the field are kept.
func CleanNaN(arr *Value, field string) (*Value, *CleanStats, *diag.Error) {
	if arr == nil {
		return nil, nil, diag.New(diag.CodeFormatNullInput, "clean of nil value")
	}
	if arr.Type != ArrayType {
		return nil, nil, diag.New(diag.CodeInvalidValue, "clean of %s value, want array", arr.Type)
	}
	stats := &CleanStats{Original: len(arr.Values)}
	res := NewArray()
	for _, el := range arr.Values {
		if fv := el.Get(field); fv != nil && missing(fv) {
			stats.Removed++
			continue
		}
		res.Append(el.Clone())
	}
	stats.Cleaned = len(res.Values)
	return res, stats, nil
}

func missing(v *Value) bool {
	switch v.Type {
	case NullType:
		return true
	case NumberType:
		return math.IsNaN(v.Number) || math.IsInf(v.Number, 0)
	}
	return false
}
