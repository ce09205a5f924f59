package ir

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/fieldsense/go-json/diag"
)

// Value is a node in a document tree. Exactly one payload field is
// meaningful, selected by Type. Object entries live behind the Get,
// Set, Keys and Delete accessors; they keep insertion order, and a Set
// on an existing key replaces the value without moving the key.
type Value struct {
	Type   Type
	Bool   bool
	Number float64
	String string
	Values []*Value

	fields *linkedhashmap.Map
}

const arrayInitialCap = 8

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Number: f}
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

func NewArray() *Value {
	return &Value{Type: ArrayType, Values: make([]*Value, 0, arrayInitialCap)}
}

func NewObject() *Value {
	return &Value{Type: ObjectType, fields: linkedhashmap.New()}
}

// Append adds el to the end of an array value.
func (v *Value) Append(el *Value) *diag.Error {
	if v.Type != ArrayType {
		return diag.New(diag.CodeInvalidValue, "append to %s value", v.Type)
	}
	if v.Values == nil {
		v.Values = make([]*Value, 0, arrayInitialCap)
	}
	v.Values = append(v.Values, el)
	return nil
}

// At returns the i'th array element, or nil if v is not an array or i
// is out of range.
func (v *Value) At(i int) *Value {
	if v.Type != ArrayType || i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

// Get returns the value stored under key, or nil if v is not an object
// or the key is absent.
func (v *Value) Get(key string) *Value {
	if v.Type != ObjectType || v.fields == nil {
		return nil
	}
	ev, ok := v.fields.Get(key)
	if !ok {
		return nil
	}
	return ev.(*Value)
}

// Set stores val under key, replacing any prior value in place.
func (v *Value) Set(key string, val *Value) *diag.Error {
	if v.Type != ObjectType {
		return diag.New(diag.CodeInvalidValue, "set key on %s value", v.Type)
	}
	if v.fields == nil {
		v.fields = linkedhashmap.New()
	}
	v.fields.Put(key, val)
	return nil
}

// Delete removes key from an object, reporting whether it was present.
func (v *Value) Delete(key string) bool {
	if v.Type != ObjectType || v.fields == nil {
		return false
	}
	if _, ok := v.fields.Get(key); !ok {
		return false
	}
	v.fields.Remove(key)
	return true
}

// Len returns the element count of an array or the member count of an
// object, and 0 for every leaf type.
func (v *Value) Len() int {
	switch v.Type {
	case ArrayType:
		return len(v.Values)
	case ObjectType:
		if v.fields == nil {
			return 0
		}
		return v.fields.Size()
	}
	return 0
}

// Keys returns an object's keys in insertion order.
func (v *Value) Keys() []string {
	if v.Type != ObjectType || v.fields == nil {
		return nil
	}
	raw := v.fields.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Clone deep-copies a tree.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		Bool:   v.Bool,
		Number: v.Number,
		String: v.String,
	}
	switch v.Type {
	case ArrayType:
		res.Values = make([]*Value, len(v.Values))
		for i, el := range v.Values {
			res.Values[i] = el.Clone()
		}
	case ObjectType:
		res.fields = linkedhashmap.New()
		for _, k := range v.Keys() {
			res.fields.Put(k, v.Get(k).Clone())
		}
	}
	return res
}
