package engine

import (
	"github.com/sievekit/sieve/internal/document"
)

// Validate checks instance against schema and returns nil on acceptance or
// a *ValidationError describing the first failure encountered.
//
// Evaluation is fail-fast: at each schema level the keywords run in the
// schema's own key order, and the first failing keyword wins; siblings are
// not evaluated after a failure. Only one error is ever reported per call.
func Validate(instance, schema document.Value) error {
	if verr := runValidators(instance, schema); verr != nil {
		return verr
	}
	return nil
}

// IsValid reports whether instance satisfies schema, discarding the error
// detail. Rules that need a boolean existence check (contains, anyOf, not)
// use this internally.
func IsValid(instance, schema document.Value) bool {
	return runValidators(instance, schema) == nil
}

// runValidators applies every registered keyword of schema to instance.
func runValidators(instance, schema document.Value) *ValidationError {
	switch s := schema.(type) {
	case document.Bool:
		if bool(s) {
			return nil
		}
		return newError("false schema always fails")

	case *document.Object:
		// Reference resolution belongs to an external resolver. Until one is
		// wired in, a schema containing $ref is accepted as-is and none of
		// its sibling keywords run. Known limitation.
		if s.Has("$ref") {
			return nil
		}
		for _, keyword := range s.Keys() {
			rule, ok := keywordRules[keyword]
			if !ok {
				// Unknown keywords are no-ops; schemas stay forward-compatible.
				continue
			}
			value, _ := s.Get(keyword)
			if verr := rule(instance, value, s); verr != nil {
				verr.SchemaPath = append(verr.SchemaPath, keyword)
				return verr
			}
		}
		return nil

	default:
		// A scalar is not a schema at all.
		return newError("invalid schema")
	}
}

// descend recurses into a child instance/schema pair and, on failure, tags
// the propagating error with the traversed path segments. Either key may be
// nil: properties moves through both trees, items through the instance only,
// allOf through the schema only. Every recursive call a rule makes into
// subschemas must go through here so path accumulation stays exact.
func descend(instance, schema document.Value, instanceKey, schemaKey *string) *ValidationError {
	verr := runValidators(instance, schema)
	if verr == nil {
		return nil
	}
	if instanceKey != nil {
		verr.InstancePath = append(verr.InstancePath, *instanceKey)
	}
	if schemaKey != nil {
		verr.SchemaPath = append(verr.SchemaPath, *schemaKey)
	}
	return verr
}

// seg adapts a path segment for descend's optional parameters.
func seg(s string) *string {
	return &s
}
