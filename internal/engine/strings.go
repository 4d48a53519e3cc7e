package engine

import (
	"unicode/utf8"

	"github.com/sievekit/sieve/internal/document"
)

// Length limits count Unicode code points, not bytes: "héllo" has five
// characters regardless of encoding.

func validateMinLength(instance, schema document.Value, _ *document.Object) *ValidationError {
	if count, bound, ok := stringLengthPair(instance, schema); ok && count < bound {
		return newError("minLength")
	}
	return nil
}

func validateMaxLength(instance, schema document.Value, _ *document.Object) *ValidationError {
	if count, bound, ok := stringLengthPair(instance, schema); ok && count > bound {
		return newError("maxLength")
	}
	return nil
}

func stringLengthPair(instance, schema document.Value) (count, bound float64, ok bool) {
	s, ok := instance.(document.String)
	if !ok {
		return 0, 0, false
	}
	n, ok := schema.(document.Number)
	if !ok {
		return 0, 0, false
	}
	return float64(utf8.RuneCountInString(string(s))), n.Float64(), true
}
