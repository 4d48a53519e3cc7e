package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sievekit/sieve/internal/history"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <database>",
		Short: "List recorded validation runs",
		Long: `List validation runs recorded with "validate --record", newest first.

Each line shows the run timestamp, a short run ID, the verdict, and the
validated files. Failed runs additionally show the failure location.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, args[0], limit, cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list (0 for all)")

	return cmd
}

func runHistory(opts *RootOptions, dbPath string, limit int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		_ = formatter.Errorf(ErrCodeNotFound, fmt.Sprintf("database not found: %s", dbPath), nil)
		return NewExitError(ExitCommandError, "database not found")
	}

	store, err := history.Open(dbPath)
	if err != nil {
		_ = formatter.Errorf(ErrCodeStoreFailed, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		_ = formatter.Errorf(ErrCodeStoreFailed, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.JSON(Response{Status: "ok", Data: runs})
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no recorded runs")
		return nil
	}

	for _, run := range runs {
		verdict := "✓"
		if !run.Valid {
			verdict = "✗"
		}
		fmt.Fprintf(formatter.Writer, "%s  %s  %s  %s -> %s\n",
			run.CreatedAt.UTC().Format(time.RFC3339),
			shortID(run.ID),
			verdict,
			run.InstancePath,
			run.SchemaPath,
		)
		if !run.Valid {
			fmt.Fprintf(formatter.Writer, "    %s (instance: %s, schema: %s)\n",
				run.Message, run.InstanceLocation, run.SchemaLocation)
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
