// Package canonical implements the deterministic string encoding (C1) used
// as the signing pre-image for every ledger request the core produces.
//
// A generic interface{} tree decoded via encoding/json cannot be used
// directly: Go's map[string]interface{} has no stable iteration order, and
// the canonical form depends on reproducing the source ledger's own key
// order exactly (see spec §9, "Map iteration order"). Value is therefore an
// explicit, order-preserving algebraic tree: Null | Bool | Number | String |
// Array | Object.
package canonical

// Value is the algebraic shape the serializer accepts: Null, Bool, Number,
// String, Array, or Object.
type Value interface {
	isValue()
}

type nullValue struct{}

// Null is the canonical representation of a JSON null.
var Null Value = nullValue{}

func (nullValue) isValue() {}

// Bool wraps a boolean leaf.
type Bool bool

func (Bool) isValue() {}

// Number wraps an integer leaf, stored as its exact decimal digits rather
// than as an int64. Token amounts are unsigned 64-bit quantities (spec
// §1), which a signed int64 cannot represent in full - the digit string
// round-trips values beyond the int64 range without truncation, matching
// the original implementation's value.to_string() serialization.
type Number string

func (Number) isValue() {}

// String wraps a string leaf.
type String string

func (String) isValue() {}

// Array is an ordered sequence of values.
type Array []Value

func (Array) isValue() {}

// Object is an insertion-ordered string-keyed map. Unlike a Go map, it
// deterministically replays the order entries were added, which is what
// lets the canonical serializer match the ledger's own key order.
type Object struct {
	keys   []string
	values map[string]Value
}

func (*Object) isValue() {}

// NewObject returns an empty, insertion-ordered object.
func NewObject() *Object {
	return &Object{values: map[string]Value{}}
}

// Set inserts or updates key. Updating an existing key does not move its
// position in iteration order, matching ordinary JSON-library semantics.
func (o *Object) Set(key string, v Value) *Object {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}
