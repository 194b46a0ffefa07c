package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nyanfmt/internal/diagfmt"
	"nyanfmt/internal/driver"
	"nyanfmt/internal/observ"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.nyan",
	Short: "Print the syntax tree of a nyanlang source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()
	cmd.SilenceUsage = true
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}
	result, err := driver.Parse(cmd.Context(), filePath, maxDiagnostics, timer)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if showTimings {
		defer fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) //nolint:errcheck
	}

	if result.Bag.HasErrors() {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
		return &exitError{reason: "parse: syntax error"}
	}

	if format == "json" {
		return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Root)
	}
	return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Root)
}
