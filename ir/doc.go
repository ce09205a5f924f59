// Package ir provides the in-memory representation for JSON documents.
//
// A document is a tree of Value nodes. Value is a recursive tagged
// union: the Type field says which payload field is meaningful.
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number (IEEE-754 double)
//   - StringType: String (decoded, unquoted)
//   - ArrayType: Values
//   - ObjectType: insertion-ordered key/value pairs behind Get/Set/Keys
//
// Values are created by constructors (Null, FromBool, FromFloat,
// FromString, NewArray, NewObject) and mutated only through Append and
// Set. A Value owns its entire subtree; the construction API cannot
// produce cycles. Object keys are unique and Set on an existing key
// replaces the value in place without changing the key's position.
//
// Number may hold NaN or an infinity after programmatic mutation, but
// such values can never be serialized; see the encode package and
// CleanNaN.
//
// Value trees are not safe for concurrent mutation. Clone a tree per
// goroutine or synchronize externally.
package ir
