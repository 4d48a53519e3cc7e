package engine

import (
	"fmt"
	"strings"
)

// ValidationError is the single failure type for everything the engine can
// reject: instance violations ("minimum", "required property missing") and
// schema-authoring mistakes ("invalid schema", malformed patterns) alike.
// Every failure is returned as a value; nothing in the engine panics.
//
// Both paths accumulate innermost-first: the failing rule constructs the
// error with empty paths, and each recursion level appends its own segment
// while the error propagates outward. Rendering therefore reverses them.
type ValidationError struct {
	// Message describes the failure, usually named after the keyword.
	Message string

	// InstancePath traces the location within the instance, innermost-first.
	InstancePath []string

	// SchemaPath traces the location within the schema, innermost-first.
	SchemaPath []string
}

// newError creates a ValidationError with empty paths.
func newError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Error implements the error interface. Paths render root-to-leaf.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("at %q in schema %q: %s",
		e.RenderedInstancePath(),
		e.RenderedSchemaPath(),
		e.Message)
}

// RenderedInstancePath returns the instance path root-to-leaf, joined by "/".
func (e *ValidationError) RenderedInstancePath() string {
	return renderPath(e.InstancePath)
}

// RenderedSchemaPath returns the schema path root-to-leaf, joined by "/".
func (e *ValidationError) RenderedSchemaPath() string {
	return renderPath(e.SchemaPath)
}

// renderPath reverses the accumulated segments into logical order.
func renderPath(segments []string) string {
	reversed := make([]string, len(segments))
	for i, s := range segments {
		reversed[len(segments)-1-i] = s
	}
	return strings.Join(reversed, "/")
}
