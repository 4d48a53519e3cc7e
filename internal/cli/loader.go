package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sievekit/sieve/internal/document"
)

// LoadError represents a failure to read or parse a document file.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// LoadDocument reads a file and decodes it into a document Value.
// Extension decides the decoder: .json goes through the strict JSON path,
// everything else (.yaml, .yml, extensionless) through YAML, which accepts
// JSON as a subset anyway.
func LoadDocument(path string) (document.Value, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "file not found"}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Path: path, Message: err.Error()}
	}
	if info.IsDir() {
		return nil, &LoadError{Code: ErrCodeReadFailed, Path: path, Message: "is a directory"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Path: path, Message: err.Error()}
	}

	var v document.Value
	if strings.EqualFold(filepath.Ext(path), ".json") {
		v, err = document.UnmarshalJSON(data)
	} else {
		v, err = document.UnmarshalYAML(data)
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}
	}
	return v, nil
}
