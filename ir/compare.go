package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result is 0 if a == b, -1 if a < b, and +1 if a > b.
// Types rank Null < Bool < Number < String < Array < Object.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return cmp.Compare(a.Number, b.Number)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal. Object member
// order does not affect equality.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func compareArrays(a, b *Value) int {
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

// compareObjects compares member sets under a sorted key order so the
// result is independent of insertion order.
func compareObjects(a, b *Value) int {
	aKeys := a.Keys()
	bKeys := b.Keys()
	slices.Sort(aKeys)
	slices.Sort(bKeys)
	n := min(len(aKeys), len(bKeys))
	for i := 0; i < n; i++ {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(aKeys[i]), b.Get(bKeys[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKeys), len(bKeys))
}
