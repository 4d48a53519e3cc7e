package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sievekit/sieve/internal/document"
	"github.com/sievekit/sieve/internal/engine"
	"github.com/sievekit/sieve/internal/history"
)

// ValidationReport holds the outcome of a single validation run.
type ValidationReport struct {
	Valid bool           `json:"valid"`
	RunID string         `json:"run_id,omitempty"`
	Error *ReportedError `json:"error,omitempty"`
}

// ReportedError is the JSON shape of a validation failure.
type ReportedError struct {
	Message          string `json:"message"`
	InstanceLocation string `json:"instance_location"`
	SchemaLocation   string `json:"schema_location"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var recordPath string

	cmd := &cobra.Command{
		Use:   "validate <schema> <instance>",
		Short: "Validate an instance document against a schema",
		Long: `Validate a JSON or YAML instance document against a JSON Schema.

Both files may be JSON or YAML; the schema must itself be a valid schema
document (an object of keywords, or a bare true/false). On failure the
first violation is reported together with its location in the instance and
in the schema.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], args[1], recordPath, cmd)
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "record the run in a history database at this path")

	return cmd
}

func runValidate(opts *RootOptions, schemaPath, instancePath, recordPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	schema, err := LoadDocument(schemaPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	instance, err := LoadDocument(instancePath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	formatter.VerboseLog("Validating %s against %s", instancePath, schemaPath)

	report := ValidationReport{Valid: true}
	verr := validationErrorFrom(engine.Validate(instance, schema))
	if verr != nil {
		report.Valid = false
		report.Error = &ReportedError{
			Message:          verr.Message,
			InstanceLocation: verr.RenderedInstancePath(),
			SchemaLocation:   verr.RenderedSchemaPath(),
		}
	}

	if recordPath != "" {
		runID, err := recordRun(recordPath, schemaPath, instancePath, schema, instance, report)
		if err != nil {
			_ = formatter.Errorf(ErrCodeStoreFailed, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
		report.RunID = runID
		formatter.VerboseLog("Recorded run %s in %s", runID, recordPath)
	}

	return outputValidationReport(formatter, report)
}

// validationErrorFrom unwraps the engine's error type. A nil error stays
// nil; anything else must be a *engine.ValidationError by construction.
func validationErrorFrom(err error) *engine.ValidationError {
	if err == nil {
		return nil
	}
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &engine.ValidationError{Message: err.Error()}
}

func recordRun(recordPath, schemaPath, instancePath string, schema, instance document.Value, report ValidationReport) (string, error) {
	schemaDigest, err := document.Digest(schema)
	if err != nil {
		return "", fmt.Errorf("digest schema: %w", err)
	}
	instanceDigest, err := document.Digest(instance)
	if err != nil {
		return "", fmt.Errorf("digest instance: %w", err)
	}

	store, err := history.Open(recordPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	run := history.Run{
		ID:             history.NewRunID(),
		CreatedAt:      time.Now(),
		SchemaPath:     schemaPath,
		InstancePath:   instancePath,
		SchemaDigest:   schemaDigest,
		InstanceDigest: instanceDigest,
		Valid:          report.Valid,
	}
	if report.Error != nil {
		run.Message = report.Error.Message
		run.InstanceLocation = report.Error.InstanceLocation
		run.SchemaLocation = report.Error.SchemaLocation
	}

	if err := store.WriteRun(context.Background(), run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Errorf(loadErr.Code, fmt.Sprintf("%s: %s", loadErr.Path, loadErr.Message), nil)
	} else {
		_ = formatter.Errorf(ErrCodeGeneric, err.Error(), nil)
	}
	// Load errors are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, err.Error())
}

func outputValidationReport(formatter *OutputFormatter, report ValidationReport) error {
	if formatter.Format == "json" {
		resp := Response{Status: "ok", Data: report}
		if !report.Valid {
			resp.Status = "error"
			resp.Error = &ResponseError{Code: ErrCodeGeneric, Message: report.Error.Message}
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
		if !report.Valid {
			return NewExitError(ExitFailure, "validation failed")
		}
		return nil
	}

	if report.Valid {
		fmt.Fprintln(formatter.Writer, "✓ instance valid")
		return nil
	}

	fmt.Fprintln(formatter.Writer, "✗ validation failed")
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintf(formatter.Writer, "  %s\n", report.Error.Message)
	fmt.Fprintf(formatter.Writer, "  instance path: %s\n", report.Error.InstanceLocation)
	fmt.Fprintf(formatter.Writer, "  schema path:   %s\n", report.Error.SchemaLocation)
	return NewExitError(ExitFailure, "validation failed")
}
