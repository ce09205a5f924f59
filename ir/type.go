package ir

import "fmt"

// Type discriminates the payload of a Value.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

var typeNames = map[Type]string{
	NullType:   "null",
	BoolType:   "bool",
	NumberType: "number",
	StringType: "string",
	ArrayType:  "array",
	ObjectType: "object",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if !ok {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return s
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown type %d", int(t))
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for typ, name := range typeNames {
		if name == string(d) {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown type %q", d)
}

// Types returns all value types in rank order.
func Types() []Type {
	return []Type{NullType, BoolType, NumberType, StringType, ArrayType, ObjectType}
}

// IsLeaf reports whether t is an atomic (non-container) type.
func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	}
	return true
}
