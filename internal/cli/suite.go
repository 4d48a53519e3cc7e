package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sievekit/sieve/internal/document"
	"github.com/sievekit/sieve/internal/engine"
)

// SuiteResult summarizes a test-suite run.
type SuiteResult struct {
	Total    int            `json:"total"`
	Passed   int            `json:"passed"`
	Failed   int            `json:"failed"`
	Failures []SuiteFailure `json:"failures,omitempty"`
}

// SuiteFailure is one case whose outcome differed from the expectation.
type SuiteFailure struct {
	Group    string `json:"group"`
	Case     string `json:"case"`
	Expected bool   `json:"expected"`
	Message  string `json:"message,omitempty"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <suite-file>",
		Short: "Run a schema test suite",
		Long: `Run a test-suite file of schemas and expected validation outcomes.

The file holds an array of groups in the layout of the official
JSON-Schema-Test-Suite: each group has a description, a schema, and a list
of test cases carrying an instance ("data") and the expected verdict
("valid"). Either JSON or YAML works.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSuite(opts *RootOptions, suitePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := LoadDocument(suitePath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	result, err := runSuiteDocument(doc, formatter)
	if err != nil {
		_ = formatter.Errorf(ErrCodeInvalidSuite, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	return outputSuiteResult(formatter, result)
}

// runSuiteDocument interprets the suite document and runs every case.
// Structural problems in the suite file itself come back as errors;
// mismatched verdicts land in the result.
func runSuiteDocument(doc document.Value, formatter *OutputFormatter) (*SuiteResult, error) {
	groups, ok := doc.(document.Array)
	if !ok {
		return nil, fmt.Errorf("suite file must hold an array of test groups")
	}

	result := &SuiteResult{}
	for i, rawGroup := range groups {
		group, ok := rawGroup.(*document.Object)
		if !ok {
			return nil, fmt.Errorf("group %d: not an object", i)
		}
		description := stringField(group, "description", fmt.Sprintf("group %d", i))
		schema, ok := group.Get("schema")
		if !ok {
			return nil, fmt.Errorf("group %q: missing schema", description)
		}
		testsValue, ok := group.Get("tests")
		if !ok {
			return nil, fmt.Errorf("group %q: missing tests", description)
		}
		tests, ok := testsValue.(document.Array)
		if !ok {
			return nil, fmt.Errorf("group %q: tests is not an array", description)
		}

		formatter.VerboseLog("Running group: %s (%d cases)", description, len(tests))

		for j, rawCase := range tests {
			testCase, ok := rawCase.(*document.Object)
			if !ok {
				return nil, fmt.Errorf("group %q: case %d is not an object", description, j)
			}
			caseName := stringField(testCase, "description", fmt.Sprintf("case %d", j))
			data, ok := testCase.Get("data")
			if !ok {
				return nil, fmt.Errorf("group %q: case %q missing data", description, caseName)
			}
			expectedValue, ok := testCase.Get("valid")
			if !ok {
				return nil, fmt.Errorf("group %q: case %q missing valid", description, caseName)
			}
			expected, ok := expectedValue.(document.Bool)
			if !ok {
				return nil, fmt.Errorf("group %q: case %q: valid is not a boolean", description, caseName)
			}

			result.Total++
			verr := validationErrorFrom(engine.Validate(data, schema))
			got := verr == nil
			if got == bool(expected) {
				result.Passed++
				continue
			}

			result.Failed++
			failure := SuiteFailure{
				Group:    description,
				Case:     caseName,
				Expected: bool(expected),
			}
			if verr != nil {
				failure.Message = verr.Error()
			}
			result.Failures = append(result.Failures, failure)
		}
	}

	return result, nil
}

func stringField(obj *document.Object, key, fallback string) string {
	if v, ok := obj.Get(key); ok {
		if s, ok := v.(document.String); ok {
			return string(s)
		}
	}
	return fallback
}

func outputSuiteResult(formatter *OutputFormatter, result *SuiteResult) error {
	if formatter.Format == "json" {
		resp := Response{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &ResponseError{
				Code:    ErrCodeGeneric,
				Message: fmt.Sprintf("%d of %d cases failed", result.Failed, result.Total),
			}
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
		if result.Failed > 0 {
			return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
		}
		return nil
	}

	for _, failure := range result.Failures {
		verdict := "invalid"
		expected := "valid"
		if !failure.Expected {
			verdict = "valid"
			expected = "invalid"
		}
		fmt.Fprintf(formatter.Writer, "✗ %s: %s (expected %s, got %s)\n",
			failure.Group, failure.Case, expected, verdict)
		if failure.Message != "" {
			fmt.Fprintf(formatter.Writer, "    %s\n", failure.Message)
		}
	}
	if result.Failed > 0 {
		fmt.Fprintln(formatter.Writer)
		fmt.Fprintf(formatter.Writer, "%d/%d cases passed\n", result.Passed, result.Total)
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}

	fmt.Fprintf(formatter.Writer, "✓ %d/%d cases passed\n", result.Passed, result.Total)
	return nil
}
