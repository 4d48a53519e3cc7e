package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/internal/document"
)

func TestLoadDocumentJSON(t *testing.T) {
	v, err := LoadDocument(fixture("valid.json"))
	require.NoError(t, err)
	assert.True(t, document.Equal(
		document.NewObjectFromPairs(document.P("a", document.Int64(7))), v))
}

func TestLoadDocumentYAML(t *testing.T) {
	v, err := LoadDocument(fixture("instance.yaml"))
	require.NoError(t, err)
	assert.True(t, document.Equal(
		document.NewObjectFromPairs(document.P("a", document.Int64(7))), v))
}

func TestLoadDocumentNotFound(t *testing.T) {
	_, err := LoadDocument(fixture("does-not-exist.json"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.Equal(t, "file not found", loadErr.Message)
}

func TestLoadDocumentDirectory(t *testing.T) {
	_, err := LoadDocument("testdata")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeReadFailed, loadErr.Code)
	assert.Equal(t, "is a directory", loadErr.Message)
}

func TestLoadDocumentParseError(t *testing.T) {
	_, err := LoadDocument(fixture("malformed.json"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}

func TestLoadDocumentExtensionCase(t *testing.T) {
	// .JSON must route through the strict JSON decoder too.
	path := filepath.Join(t.TempDir(), "doc.JSON")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1} trailing`), 0o644))

	_, err := LoadDocument(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}
