package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "failed")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad input")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))

	wrapped := fmt.Errorf("context: %w", NewExitError(ExitCommandError, "inner"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestExitErrorMessage(t *testing.T) {
	plain := NewExitError(ExitFailure, "validation failed")
	assert.Equal(t, "validation failed", plain.Error())

	withCause := &ExitError{Code: ExitCommandError, Message: "open db", Err: errors.New("locked")}
	assert.Equal(t, "open db: locked", withCause.Error())
	assert.EqualError(t, withCause.Unwrap(), "locked")
}

func TestFormatterErrorfText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.Errorf(ErrCodeNotFound, "file not found", nil))
	assert.Equal(t, "Error [E005]: file not found\n", buf.String())
}

func TestFormatterErrorfJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Errorf(ErrCodeParseFailed, "bad document", nil))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeParseFailed, resp.Error.Code)
	assert.Equal(t, "bad document", resp.Error.Message)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut, Verbose: true}

	f.VerboseLog("checking %s", "thing")

	assert.Empty(t, out.String(), "diagnostics must not corrupt JSON output")
	assert.Equal(t, "checking thing\n", errOut.String())
}

func TestVerboseLogSilentByDefault(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Writer: &out, ErrWriter: &errOut}

	f.VerboseLog("should not appear")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
