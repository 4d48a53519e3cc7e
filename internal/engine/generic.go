package engine

import "github.com/sievekit/sieve/internal/document"

// validateType checks the instance against one type name or any of a list
// of type names. Unknown names always match, so schemas written against
// newer drafts degrade to no-ops instead of failing.
func validateType(instance, schema document.Value, _ *document.Object) *ValidationError {
	for _, candidate := range arrayOrSingle(schema) {
		if matchesSingleType(instance, candidate) {
			return nil
		}
	}
	return newError("type")
}

// matchesSingleType reports whether instance matches a single type name.
// Non-string schema entries match everything, mirroring the unknown-name
// policy.
func matchesSingleType(instance, schema document.Value) bool {
	name, ok := schema.(document.String)
	if !ok {
		return true
	}

	switch name {
	case "array":
		_, ok := instance.(document.Array)
		return ok
	case "object":
		_, ok := instance.(*document.Object)
		return ok
	case "null":
		_, ok := instance.(document.Null)
		return ok
	case "string":
		_, ok := instance.(document.String)
		return ok
	case "boolean":
		_, ok := instance.(document.Bool)
		return ok
	case "number":
		_, ok := instance.(document.Number)
		return ok
	case "integer":
		// Integer encodings qualify, and so do floats with no fractional
		// part: 4.0 is an integer, 4.5 is not.
		n, ok := instance.(document.Number)
		return ok && n.IsIntegral()
	default:
		return true
	}
}

// validateConst requires structural equality with the schema value.
func validateConst(instance, schema document.Value, _ *document.Object) *ValidationError {
	if !document.Equal(instance, schema) {
		return newError("invalid const")
	}
	return nil
}

// validateEnum requires structural equality with at least one element.
func validateEnum(instance, schema document.Value, _ *document.Object) *ValidationError {
	enums, ok := schema.(document.Array)
	if !ok {
		return nil
	}
	for _, candidate := range enums {
		if document.Equal(instance, candidate) {
			return nil
		}
	}
	return newError("enum")
}
