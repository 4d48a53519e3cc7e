package engine

import (
	"fmt"
	"strconv"

	"github.com/sievekit/sieve/internal/document"
)

// validateAllOf requires every subschema to pass. The first failure wins
// and its list index becomes the schema path segment.
func validateAllOf(instance, schema document.Value, _ *document.Object) *ValidationError {
	subschemas, ok := schema.(document.Array)
	if !ok {
		return nil
	}
	for i, subschema := range subschemas {
		normalized := normalizeBoolSchema(subschema)
		if verr := descend(instance, normalized, nil, seg(strconv.Itoa(i))); verr != nil {
			return verr
		}
	}
	return nil
}

// validateAnyOf requires at least one subschema to pass. Candidates are
// tried in order and the first success returns immediately; only after
// every branch has failed does the rule report a single aggregate error,
// with no per-branch detail. An empty list is a no-op.
func validateAnyOf(instance, schema document.Value, _ *document.Object) *ValidationError {
	subschemas, ok := schema.(document.Array)
	if !ok || len(subschemas) == 0 {
		return nil
	}
	for _, subschema := range subschemas {
		if IsValid(instance, normalizeBoolSchema(subschema)) {
			return nil
		}
	}
	return newError("anyOf")
}

// validateOneOf requires exactly one subschema to pass. Unlike anyOf this
// cannot short-circuit on the first success: a second match is just as
// fatal as no match, so every branch is counted.
func validateOneOf(instance, schema document.Value, _ *document.Object) *ValidationError {
	subschemas, ok := schema.(document.Array)
	if !ok {
		return nil
	}
	matched := 0
	for _, subschema := range subschemas {
		if IsValid(instance, normalizeBoolSchema(subschema)) {
			matched++
		}
	}
	if matched != 1 {
		return newError(fmt.Sprintf("oneOf: %d subschemas matched, exactly one required", matched))
	}
	return nil
}

// validateNot succeeds iff the inner schema fails. The inner error's detail
// is deliberately discarded; only the boolean outcome inverts.
func validateNot(instance, schema document.Value, _ *document.Object) *ValidationError {
	if runValidators(instance, schema) == nil {
		return newError("not")
	}
	return nil
}
