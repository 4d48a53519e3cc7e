package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinLength(t *testing.T) {
	mustPass(t, `"hello"`, `{"minLength": 5}`)
	mustPass(t, `"hello!"`, `{"minLength": 5}`)

	verr := mustFail(t, `"hi"`, `{"minLength": 5}`)
	assert.Equal(t, "minLength", verr.Message)
	mustFail(t, `""`, `{"minLength": 1}`)
}

func TestMaxLength(t *testing.T) {
	mustPass(t, `"hi"`, `{"maxLength": 2}`)
	mustPass(t, `""`, `{"maxLength": 0}`)

	verr := mustFail(t, `"hello"`, `{"maxLength": 2}`)
	assert.Equal(t, "maxLength", verr.Message)
}

func TestLengthCountsCodePoints(t *testing.T) {
	// "héllo" is five characters even though é is two bytes in UTF-8.
	mustPass(t, `"héllo"`, `{"minLength": 5, "maxLength": 5}`)
	mustFail(t, `"héllo"`, `{"maxLength": 4}`)

	mustPass(t, `"日本語"`, `{"maxLength": 3}`)
	mustFail(t, `"日本語"`, `{"maxLength": 2}`)
}

func TestLengthShapeMismatchIsNoOp(t *testing.T) {
	mustPass(t, `42`, `{"minLength": 5}`)
	mustPass(t, `[1, 2]`, `{"maxLength": 1}`)
	mustPass(t, `"hi"`, `{"minLength": "5"}`)
}
