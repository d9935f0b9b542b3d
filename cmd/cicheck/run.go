package main

import (
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vertti/cicheck/pkg/check"
	"github.com/vertti/cicheck/pkg/output"
	"github.com/vertti/cicheck/pkg/runner"
	"github.com/vertti/cicheck/pkg/shell"
)

var (
	noColor bool
	verbose bool
)

// ErrChecksFailed is returned when at least one check fails.
var ErrChecksFailed = errors.New("one or more checks failed")

func init() {
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log each check to stderr")
}

// runRoot runs every registered check and prints the summary.
// The returned error causes main to exit with code 1.
func runRoot(cmd *cobra.Command, _ []string) error {
	// From here on failures are reported by the table, not by cobra.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	logger := newLogger(cmd.ErrOrStderr(), verbose)
	exec := &shell.RealExecutor{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	}

	results := runner.New(exec, logger).Run(slices.Clone(registry))
	output.New(cmd.OutOrStdout(), noColor).PrintResults(results)

	if !check.AllPassed(results) {
		return ErrChecksFailed
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
