package engine

import (
	"fmt"
	"strings"

	"github.com/sievekit/sieve/internal/document"
	"github.com/sievekit/sieve/internal/pattern"
)

func validateMinProperties(instance, schema document.Value, _ *document.Object) *ValidationError {
	if count, bound, ok := propertyCountPair(instance, schema); ok && count < bound {
		return newError("minProperties")
	}
	return nil
}

func validateMaxProperties(instance, schema document.Value, _ *document.Object) *ValidationError {
	if count, bound, ok := propertyCountPair(instance, schema); ok && count > bound {
		return newError("maxProperties")
	}
	return nil
}

func propertyCountPair(instance, schema document.Value) (count, bound float64, ok bool) {
	obj, ok := instance.(*document.Object)
	if !ok {
		return 0, 0, false
	}
	n, ok := schema.(document.Number)
	if !ok {
		return 0, 0, false
	}
	return float64(obj.Len()), n.Float64(), true
}

// validateRequired checks that every named key is present.
func validateRequired(instance, schema document.Value, _ *document.Object) *ValidationError {
	obj, ok := instance.(*document.Object)
	if !ok {
		return nil
	}
	names, ok := schema.(document.Array)
	if !ok {
		return nil
	}
	for _, name := range names {
		key, ok := name.(document.String)
		if !ok {
			continue
		}
		if !obj.Has(string(key)) {
			return newError(fmt.Sprintf("required property '%s' missing", key))
		}
	}
	return nil
}

// validateProperties descends into each instance property that has a named
// subschema. Both trees move together here, so both path keys are set.
func validateProperties(instance, schema document.Value, _ *document.Object) *ValidationError {
	obj, ok := instance.(*document.Object)
	if !ok {
		return nil
	}
	props, ok := schema.(*document.Object)
	if !ok {
		return nil
	}
	for _, name := range props.Keys() {
		child, present := obj.Get(name)
		if !present {
			continue
		}
		subschema, _ := props.Get(name)
		if verr := descend(child, subschema, seg(name), seg(name)); verr != nil {
			return verr
		}
	}
	return nil
}

// validatePatternProperties descends into every instance property whose key
// matches a pattern, using the pattern string itself as the schema path
// segment. A malformed pattern is reported as a validation error.
func validatePatternProperties(instance, schema document.Value, _ *document.Object) *ValidationError {
	obj, ok := instance.(*document.Object)
	if !ok {
		return nil
	}
	patterns, ok := schema.(*document.Object)
	if !ok {
		return nil
	}
	for _, pat := range patterns.Keys() {
		compiled, err := pattern.Compile(pat)
		if err != nil {
			return newError(err.Error())
		}
		subschema, _ := patterns.Get(pat)
		for _, key := range obj.Keys() {
			if !compiled.Matches(key) {
				continue
			}
			child, _ := obj.Get(key)
			if verr := descend(child, subschema, seg(key), seg(pat)); verr != nil {
				return verr
			}
		}
	}
	return nil
}

// findAdditionalProperties returns the instance keys covered neither by the
// enclosing schema's properties (exact name) nor by its patternProperties
// (regex match), in instance key order. When either sibling keyword is
// present but not an object, no coverage is assumed and every key counts as
// additional.
func findAdditionalProperties(instance, parent *document.Object) ([]string, *ValidationError) {
	properties := objectOrEmpty(parent, "properties")
	patternProps := objectOrEmpty(parent, "patternProperties")
	if properties == nil || patternProps == nil {
		return instance.Keys(), nil
	}

	compiled := make([]*pattern.Compiled, 0, patternProps.Len())
	for _, pat := range patternProps.Keys() {
		c, err := pattern.Compile(pat)
		if err != nil {
			return nil, newError(err.Error())
		}
		compiled = append(compiled, c)
	}

	var extras []string
	for _, key := range instance.Keys() {
		if properties.Has(key) {
			continue
		}
		matched := false
		for _, c := range compiled {
			if c.Matches(key) {
				matched = true
				break
			}
		}
		if !matched {
			extras = append(extras, key)
		}
	}
	return extras, nil
}

// objectOrEmpty fetches a sibling keyword as an object, an empty object
// when absent, or nil when present with the wrong shape.
func objectOrEmpty(parent *document.Object, keyword string) *document.Object {
	v, ok := parent.Get(keyword)
	if !ok {
		return acceptAllSchema
	}
	obj, ok := v.(*document.Object)
	if !ok {
		return nil
	}
	return obj
}

// validateAdditionalProperties applies to the instance keys its sibling
// properties/patternProperties keywords leave uncovered, which is why this
// rule needs the enclosing schema object and not just its own value. An
// object value validates each uncovered key's value uniformly (no schema
// path segment per key); false forbids uncovered keys outright; true is
// always a no-op.
func validateAdditionalProperties(instance, schema document.Value, parent *document.Object) *ValidationError {
	obj, ok := instance.(*document.Object)
	if !ok {
		return nil
	}
	extras, verr := findAdditionalProperties(obj, parent)
	if verr != nil {
		return verr
	}

	switch s := schema.(type) {
	case *document.Object:
		for _, extra := range extras {
			child, _ := obj.Get(extra)
			if verr := descend(child, s, seg(extra), nil); verr != nil {
				return verr
			}
		}
	case document.Bool:
		if !bool(s) && len(extras) > 0 {
			return newError(fmt.Sprintf(
				"additional properties are not allowed (%s unexpected)",
				strings.Join(extras, ", ")))
		}
	}
	return nil
}

// validatePropertyNames validates each key of the instance, wrapped as a
// string value, against the subschema. Only the instance tree is traversed.
func validatePropertyNames(instance, schema document.Value, _ *document.Object) *ValidationError {
	obj, ok := instance.(*document.Object)
	if !ok {
		return nil
	}
	for _, key := range obj.Keys() {
		if verr := descend(document.String(key), schema, seg(key), nil); verr != nil {
			return verr
		}
	}
	return nil
}

// validateDependencies handles both dependency forms. A schema-valued
// dependency validates the whole instance against the subschema, but only
// when the triggering property is actually present. A string or
// string-list dependency requires the named keys to exist.
func validateDependencies(instance, schema document.Value, _ *document.Object) *ValidationError {
	obj, ok := instance.(*document.Object)
	if !ok {
		return nil
	}
	deps, ok := schema.(*document.Object)
	if !ok {
		return nil
	}
	for _, property := range deps.Keys() {
		raw, _ := deps.Get(property)
		dep := normalizeBoolSchema(raw)

		if depSchema, isSchema := dep.(*document.Object); isSchema {
			if !obj.Has(property) {
				continue
			}
			if verr := descend(instance, depSchema, nil, seg(property)); verr != nil {
				return verr
			}
			continue
		}

		for _, name := range arrayOrSingle(dep) {
			key, isString := name.(document.String)
			if !isString {
				continue
			}
			if !obj.Has(string(key)) {
				return newError("dependency")
			}
		}
	}
	return nil
}
