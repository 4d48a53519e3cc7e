package engine

import (
	"strconv"

	"github.com/sievekit/sieve/internal/document"
)

func validateMinItems(instance, schema document.Value, _ *document.Object) *ValidationError {
	if count, bound, ok := arrayLengthPair(instance, schema); ok && count < bound {
		return newError("minItems")
	}
	return nil
}

func validateMaxItems(instance, schema document.Value, _ *document.Object) *ValidationError {
	if count, bound, ok := arrayLengthPair(instance, schema); ok && count > bound {
		return newError("maxItems")
	}
	return nil
}

func arrayLengthPair(instance, schema document.Value) (count, bound float64, ok bool) {
	arr, ok := instance.(document.Array)
	if !ok {
		return 0, 0, false
	}
	n, ok := schema.(document.Number)
	if !ok {
		return 0, 0, false
	}
	return float64(len(arr)), n.Float64(), true
}

// validateUniqueItems requires pairwise structurally distinct elements when
// the keyword is true. Distinctness is structural: two separately built
// objects with the same entries are duplicates. Candidates are bucketed by
// structural hash and confirmed with Equal, so hash collisions cannot cause
// false rejections.
func validateUniqueItems(instance, schema document.Value, _ *document.Object) *ValidationError {
	arr, ok := instance.(document.Array)
	if !ok {
		return nil
	}
	b, ok := schema.(document.Bool)
	if !ok || !bool(b) {
		return nil
	}

	seen := make(map[uint64][]document.Value, len(arr))
	for _, elem := range arr {
		h := document.Hash(elem)
		for _, candidate := range seen[h] {
			if document.Equal(elem, candidate) {
				return newError("uniqueItems")
			}
		}
		seen[h] = append(seen[h], elem)
	}
	return nil
}

// validateItems applies a single schema to every element, or an array of
// schemas positionally ("tuple validation"). In tuple form, elements beyond
// the schema list are left alone; additionalItems owns them.
func validateItems(instance, schema document.Value, _ *document.Object) *ValidationError {
	arr, ok := instance.(document.Array)
	if !ok {
		return nil
	}

	switch items := normalizeBoolSchema(schema).(type) {
	case *document.Object:
		for i, elem := range arr {
			if verr := descend(elem, items, seg(strconv.Itoa(i)), nil); verr != nil {
				return verr
			}
		}
	case document.Array:
		for i := 0; i < len(arr) && i < len(items); i++ {
			idx := strconv.Itoa(i)
			if verr := descend(arr[i], items[i], seg(idx), seg(idx)); verr != nil {
				return verr
			}
		}
	}
	return nil
}

// validateAdditionalItems constrains the elements a tuple-form items list
// left unmatched. It only has meaning under tuple validation: with items
// absent or holding a single schema there is nothing "additional", so the
// rule is a no-op.
func validateAdditionalItems(instance, schema document.Value, parent *document.Object) *ValidationError {
	itemsValue, ok := parent.Get("items")
	if !ok {
		return nil
	}
	items, ok := itemsValue.(document.Array)
	if !ok {
		return nil
	}
	arr, ok := instance.(document.Array)
	if !ok {
		return nil
	}

	switch s := schema.(type) {
	case *document.Object:
		for i := len(items); i < len(arr); i++ {
			if verr := descend(arr[i], s, seg(strconv.Itoa(i)), nil); verr != nil {
				return verr
			}
		}
	case document.Bool:
		if !bool(s) && len(arr) > len(items) {
			return newError("additional items are not allowed")
		}
	}
	return nil
}

// validateContains requires at least one element to satisfy the subschema.
// The check is an aggregate yes/no; per-element failure detail is not
// surfaced, only the overall miss.
func validateContains(instance, schema document.Value, _ *document.Object) *ValidationError {
	arr, ok := instance.(document.Array)
	if !ok {
		return nil
	}
	for _, elem := range arr {
		if IsValid(elem, schema) {
			return nil
		}
	}
	return newError("nothing is valid under the given schema")
}
