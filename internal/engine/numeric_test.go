package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimum(t *testing.T) {
	mustPass(t, `5`, `{"minimum": 5}`)
	mustPass(t, `6`, `{"minimum": 5}`)
	mustPass(t, `5.0`, `{"minimum": 5}`)

	verr := mustFail(t, `4`, `{"minimum": 5}`)
	assert.Equal(t, "minimum", verr.Message)
	mustFail(t, `4.9`, `{"minimum": 5}`)
}

func TestMaximum(t *testing.T) {
	mustPass(t, `5`, `{"maximum": 5}`)
	mustPass(t, `4`, `{"maximum": 5}`)

	verr := mustFail(t, `6`, `{"maximum": 5}`)
	assert.Equal(t, "maximum", verr.Message)
}

func TestExclusiveBounds(t *testing.T) {
	mustPass(t, `6`, `{"exclusiveMinimum": 5}`)
	mustFail(t, `5`, `{"exclusiveMinimum": 5}`)
	mustFail(t, `4`, `{"exclusiveMinimum": 5}`)

	mustPass(t, `4`, `{"exclusiveMaximum": 5}`)
	mustFail(t, `5`, `{"exclusiveMaximum": 5}`)
	mustFail(t, `6`, `{"exclusiveMaximum": 5}`)
}

func TestBoundsShapeMismatchIsNoOp(t *testing.T) {
	// Non-number instances are the type keyword's business.
	mustPass(t, `"hello"`, `{"minimum": 5}`)
	mustPass(t, `null`, `{"maximum": 5}`)
	mustPass(t, `[1]`, `{"exclusiveMinimum": 5}`)

	// Non-number bounds make the keyword inert.
	mustPass(t, `4`, `{"minimum": "5"}`)
}

func TestBoundsAcrossEncodings(t *testing.T) {
	mustPass(t, `5`, `{"minimum": 4.5}`)
	mustFail(t, `4`, `{"minimum": 4.5}`)
	mustPass(t, `-3`, `{"minimum": -10}`)
	mustFail(t, `-11`, `{"minimum": -10}`)
}

func TestMultipleOf(t *testing.T) {
	mustPass(t, `10`, `{"multipleOf": 5}`)
	mustPass(t, `0`, `{"multipleOf": 5}`)
	mustPass(t, `-10`, `{"multipleOf": 5}`)
	mustPass(t, `10`, `{"multipleOf": 2.5}`)
	mustPass(t, `4.5`, `{"multipleOf": 1.5}`)

	verr := mustFail(t, `7`, `{"multipleOf": 5}`)
	assert.Equal(t, "not multipleOf", verr.Message)
	mustFail(t, `7.5`, `{"multipleOf": 2}`)
}

func TestMultipleOfZeroDivisor(t *testing.T) {
	verr := mustFail(t, `10`, `{"multipleOf": 0}`)
	assert.Equal(t, "multipleOf divisor must not be zero", verr.Message)

	mustFail(t, `10`, `{"multipleOf": 0.0}`)
}

func TestMultipleOfShapeMismatchIsNoOp(t *testing.T) {
	mustPass(t, `"ten"`, `{"multipleOf": 5}`)
	mustPass(t, `10`, `{"multipleOf": "5"}`)
}

func TestMultipleOfLargeIntegers(t *testing.T) {
	// Exact integer arithmetic; float rounding must not flip the verdict.
	mustPass(t, `9007199254740993`, `{"multipleOf": 1}`)
	mustPass(t, `18446744073709551615`, `{"multipleOf": 5}`)
	mustFail(t, `18446744073709551615`, `{"multipleOf": 2}`)
}
