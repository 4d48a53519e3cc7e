package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/internal/document"
)

// mustParse builds a document.Value from a JSON literal, keeping test cases
// readable next to their schemas.
func mustParse(t *testing.T, src string) document.Value {
	t.Helper()
	v, err := document.UnmarshalJSON([]byte(src))
	require.NoError(t, err, "test fixture %q", src)
	return v
}

// check runs Validate with both sides given as JSON literals.
func check(t *testing.T, instance, schema string) error {
	t.Helper()
	return Validate(mustParse(t, instance), mustParse(t, schema))
}

// mustFail asserts validation fails and returns the failure for further
// inspection.
func mustFail(t *testing.T, instance, schema string) *ValidationError {
	t.Helper()
	err := check(t, instance, schema)
	require.Error(t, err, "instance %s against schema %s", instance, schema)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "engine errors are *ValidationError")
	return verr
}

// mustPass asserts validation succeeds.
func mustPass(t *testing.T, instance, schema string) {
	t.Helper()
	require.NoError(t, check(t, instance, schema),
		"instance %s against schema %s", instance, schema)
}
