package engine

import "github.com/sievekit/sieve/internal/document"

// Normalized forms of the boolean schemas. acceptAll is the empty schema
// (no keywords, nothing to fail); rejectAll is {"not": {}}, which fails for
// every instance because everything satisfies the empty schema. Constructed
// once at process start and treated as read-only from then on.
var (
	acceptAllSchema = document.NewObject()
	rejectAllSchema = document.NewObjectFromPairs(
		document.P("not", document.NewObject()),
	)
)

// normalizeBoolSchema maps the literal true/false schema forms onto their
// object equivalents so compound keywords (items, dependencies, allOf, ...)
// only ever recurse into object schemas. Non-boolean values pass through.
func normalizeBoolSchema(schema document.Value) document.Value {
	if b, ok := schema.(document.Bool); ok {
		if bool(b) {
			return acceptAllSchema
		}
		return rejectAllSchema
	}
	return schema
}

// arrayOrSingle returns schema's elements if it is an array, otherwise a
// one-element slice holding schema itself. Keywords that accept both a
// single value and a list (type, string dependencies) normalize through
// this.
func arrayOrSingle(v document.Value) []document.Value {
	if arr, ok := v.(document.Array); ok {
		return arr
	}
	return []document.Value{v}
}
