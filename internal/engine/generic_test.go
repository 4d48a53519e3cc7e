package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeSingleName(t *testing.T) {
	mustPass(t, `"hi"`, `{"type": "string"}`)
	mustPass(t, `null`, `{"type": "null"}`)
	mustPass(t, `true`, `{"type": "boolean"}`)
	mustPass(t, `[1]`, `{"type": "array"}`)
	mustPass(t, `{"a": 1}`, `{"type": "object"}`)
	mustPass(t, `4.5`, `{"type": "number"}`)

	verr := mustFail(t, `42`, `{"type": "string"}`)
	assert.Equal(t, "type", verr.Message)
	assert.Equal(t, []string{"type"}, verr.SchemaPath)
}

func TestTypeInteger(t *testing.T) {
	mustPass(t, `4`, `{"type": "integer"}`)
	mustPass(t, `-4`, `{"type": "integer"}`)
	// 4.0 has no fractional part, so it counts as an integer.
	mustPass(t, `4.0`, `{"type": "integer"}`)
	mustFail(t, `4.5`, `{"type": "integer"}`)
	mustFail(t, `"4"`, `{"type": "integer"}`)
}

func TestTypeList(t *testing.T) {
	schema := `{"type": ["string", "null"]}`
	mustPass(t, `"x"`, schema)
	mustPass(t, `null`, schema)
	mustFail(t, `42`, schema)
}

func TestTypeUnknownNameMatches(t *testing.T) {
	mustPass(t, `42`, `{"type": "timestamp"}`)
	mustPass(t, `42`, `{"type": ["string", "whatever"]}`)
}

func TestTypeNonStringEntryMatches(t *testing.T) {
	mustPass(t, `42`, `{"type": 7}`)
	mustPass(t, `42`, `{"type": ["string", 7]}`)
}

func TestConst(t *testing.T) {
	mustPass(t, `42`, `{"const": 42}`)
	mustPass(t, `42`, `{"const": 42.0}`)
	mustPass(t, `{"a": 1, "b": 2}`, `{"const": {"b": 2, "a": 1}}`)

	verr := mustFail(t, `43`, `{"const": 42}`)
	assert.Equal(t, "invalid const", verr.Message)
	mustFail(t, `"42"`, `{"const": 42}`)
}

func TestEnum(t *testing.T) {
	schema := `{"enum": [1, "two", null, [3]]}`
	mustPass(t, `1`, schema)
	mustPass(t, `"two"`, schema)
	mustPass(t, `null`, schema)
	mustPass(t, `[3]`, schema)

	verr := mustFail(t, `2`, schema)
	assert.Equal(t, "enum", verr.Message)
	mustFail(t, `"1"`, schema)
}

func TestEnumNonArrayIsNoOp(t *testing.T) {
	mustPass(t, `"anything"`, `{"enum": "not-a-list"}`)
}
