package engine

import (
	"math"

	"github.com/sievekit/sieve/internal/document"
)

// The bounds keywords are no-ops unless both the instance and the schema
// value are numbers; type mismatches belong to the type keyword alone.
// Comparisons use the float64 view of both sides.

func validateMinimum(instance, schema document.Value, _ *document.Object) *ValidationError {
	if in, bound, ok := numberPair(instance, schema); ok && in < bound {
		return newError("minimum")
	}
	return nil
}

func validateMaximum(instance, schema document.Value, _ *document.Object) *ValidationError {
	if in, bound, ok := numberPair(instance, schema); ok && in > bound {
		return newError("maximum")
	}
	return nil
}

func validateExclusiveMinimum(instance, schema document.Value, _ *document.Object) *ValidationError {
	if in, bound, ok := numberPair(instance, schema); ok && in <= bound {
		return newError("exclusiveMinimum")
	}
	return nil
}

func validateExclusiveMaximum(instance, schema document.Value, _ *document.Object) *ValidationError {
	if in, bound, ok := numberPair(instance, schema); ok && in >= bound {
		return newError("exclusiveMaximum")
	}
	return nil
}

// numberPair extracts the float64 views of an instance/schema pair,
// reporting false unless both are numbers. Instance shape is checked first.
func numberPair(instance, schema document.Value) (in, bound float64, ok bool) {
	n, ok := instance.(document.Number)
	if !ok {
		return 0, 0, false
	}
	s, ok := schema.(document.Number)
	if !ok {
		return 0, 0, false
	}
	return n.Float64(), s.Float64(), true
}

// validateMultipleOf requires the instance to be an exact multiple of the
// divisor. A floating divisor (or instance) checks that the quotient has no
// fractional part; pure integer pairs use the exact integer remainder.
//
// A zero divisor is a schema-authoring error and fails outright rather than
// dividing by zero.
func validateMultipleOf(instance, schema document.Value, _ *document.Object) *ValidationError {
	in, ok := instance.(document.Number)
	if !ok {
		return nil
	}
	divisor, ok := schema.(document.Number)
	if !ok {
		return nil
	}
	if divisor.Float64() == 0 {
		return newError("multipleOf divisor must not be zero")
	}
	if multipleOfFailed(in, divisor) {
		return newError("not multipleOf")
	}
	return nil
}

func multipleOfFailed(in, divisor document.Number) bool {
	if in.IsFloat() || divisor.IsFloat() {
		return fractionalQuotient(in, divisor)
	}
	if u, ok := in.Uint64(); ok {
		if d, ok := divisor.Uint64(); ok && d != 0 {
			return u%d != 0
		}
	}
	if i, ok := in.Int64(); ok {
		if d, ok := divisor.Int64(); ok && d != 0 {
			return i%d != 0
		}
	}
	// Mixed signs or magnitudes that share no integer type.
	return fractionalQuotient(in, divisor)
}

func fractionalQuotient(in, divisor document.Number) bool {
	q := in.Float64() / divisor.Float64()
	return math.Trunc(q) != q
}
