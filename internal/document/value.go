package document

import "math"

// Value is a sealed interface over the document tree types.
// Only Null, Bool, String, Number, Array, and *Object implement it.
// Both instances and schemas are Values; a schema may additionally be a
// bare Bool (accept-all / reject-all).
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents a JSON null value.
// Using an explicit type keeps nil out of the tree entirely.
type Null struct{}

func (Null) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// String represents a string value.
type String string

func (String) value() {}

type numberKind uint8

const (
	numberInt numberKind = iota
	numberUint
	numberFloat
)

// Number represents a numeric value. The underlying encoding is one of
// int64, uint64, or float64; which one a literal gets is decided at decode
// time (integer literals stay integers). Comparisons between Numbers are by
// mathematical value, not encoding - see Equal.
type Number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func (Number) value() {}

// Array represents an ordered sequence of Values.
type Array []Value

func (Array) value() {}

// Object represents a string-keyed mapping with unique keys.
// Insertion order is preserved; iteration via Keys follows it.
type Object struct {
	keys    []string
	entries map[string]Value
}

func (*Object) value() {}

// Int64 creates a Number from a signed integer.
func Int64(v int64) Number {
	return Number{kind: numberInt, i: v}
}

// Uint64 creates a Number from an unsigned integer.
func Uint64(v uint64) Number {
	return Number{kind: numberUint, u: v}
}

// Float64 creates a Number from a float.
func Float64(v float64) Number {
	return Number{kind: numberFloat, f: v}
}

// IsFloat reports whether the number carries a floating-point encoding.
func (n Number) IsFloat() bool {
	return n.kind == numberFloat
}

// IsUint reports whether the number carries an unsigned integer encoding.
func (n Number) IsUint() bool {
	return n.kind == numberUint
}

// Float64 returns the numeric value as a float64, converting integer
// encodings. Values above 2^53 lose precision in the conversion.
func (n Number) Float64() float64 {
	switch n.kind {
	case numberInt:
		return float64(n.i)
	case numberUint:
		return float64(n.u)
	default:
		return n.f
	}
}

// Int64 returns the value as an int64 if it has an integer encoding that
// fits. Float encodings always report false, even for integral floats.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case numberInt:
		return n.i, true
	case numberUint:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Uint64 returns the value as a uint64 if it has a non-negative integer
// encoding. Float encodings always report false.
func (n Number) Uint64() (uint64, bool) {
	switch n.kind {
	case numberUint:
		return n.u, true
	case numberInt:
		if n.i >= 0 {
			return uint64(n.i), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// IsIntegral reports whether the mathematical value has no fractional part.
// True for all integer encodings and for floats like 4.0.
func (n Number) IsIntegral() bool {
	if n.kind != numberFloat {
		return true
	}
	return math.Trunc(n.f) == n.f
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

// Pair represents a key-value pair for literal Object construction.
type Pair struct {
	Key   string
	Value Value
}

// NewObjectFromPairs creates an Object from pairs, preserving their order.
// A repeated key overwrites the earlier value without changing its position.
func NewObjectFromPairs(pairs ...Pair) *Object {
	obj := NewObject()
	for _, p := range pairs {
		obj.Set(p.Key, p.Value)
	}
	return obj
}

// P is a shorthand for Pair for ergonomic construction.
// Example: NewObjectFromPairs(P("type", String("object")), P("minProperties", Int64(1)))
func P(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// Set inserts or replaces the value for key. New keys append to the
// iteration order; existing keys keep their original position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.entries[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = v
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	return o.keys
}
