package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nyanfmt/internal/diagfmt"
	"nyanfmt/internal/driver"
	"nyanfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format nyanlang source files",
	Long: `Format nyanlang files or directories. Without -w or --check the
formatted text is printed to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place")
	fmtCmd.Flags().Bool("check", false, "list files whose formatting differs and exit non-zero")
	fmtCmd.Flags().String("format", "text", "result format (text|json)")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().Bool("cache", false, "skip files recorded as canonical in the disk cache")
	fmtCmd.Flags().Bool("verify", false, "re-format the output and fail if it changes again")
	fmtCmd.Flags().String("ui", "auto", "progress view for -w/--check (auto|on|off)")
	fmtCmd.Flags().String("path-mode", "auto", "diagnostic path display (auto|absolute|relative|basename)")
}

type fmtFlags struct {
	write      bool
	check      bool
	format     string
	verify     bool
	ui         uiMode
	pathMode   diagfmt.PathMode
	quiet      bool
	timings    bool
	maxDiag    int
	colorError bool
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var f fmtFlags
	var err error
	if f.write, err = cmd.Flags().GetBool("write"); err != nil {
		return f, err
	}
	if f.check, err = cmd.Flags().GetBool("check"); err != nil {
		return f, err
	}
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, err
	}
	if f.verify, err = cmd.Flags().GetBool("verify"); err != nil {
		return f, err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, err
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	pathMode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return f, err
	}
	f.pathMode = diagfmt.ParsePathMode(pathMode)
	if f.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return f, err
	}
	if f.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return f, err
	}
	if f.maxDiag, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return f, err
	}
	f.colorError = useColor(cmd, os.Stderr)

	if f.write && f.check {
		return f, errors.New("fmt: --write cannot be used with --check")
	}
	if f.format != "text" && f.format != "json" {
		return f, fmt.Errorf("fmt: unsupported output format %q", f.format)
	}
	return f, nil
}

func (f fmtFlags) mode() driver.Mode {
	switch {
	case f.write:
		return driver.ModeWrite
	case f.check:
		return driver.ModeCheck
	default:
		return driver.ModeStdout
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cache, err := openCache(cfg)
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if flags.timings {
		timer = observ.NewTimer()
	}
	opts := driver.FormatOptions{
		Mode:           flags.mode(),
		MaxDiagnostics: flags.maxDiag,
		Config:         cfg,
		Verify:         flags.verify,
		Cache:          cache,
		Timer:          timer,
	}

	ctx := cmd.Context()
	files, err := driver.CollectSourceFiles(ctx, args, cfg)
	if err != nil {
		return err
	}

	var run *driver.FormatRun
	stdoutBusy := opts.Mode == driver.ModeStdout || flags.format == "json"
	if !flags.quiet && shouldUseTUI(flags.ui, stdoutBusy) && len(files) > 0 {
		run, err = runFormatWithUI(ctx, "nyanfmt "+opts.Mode.String(), files, opts)
	} else {
		run, err = driver.FormatPaths(ctx, files, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		if err := renderFmtJSON(out, run, flags); err != nil {
			return err
		}
	default:
		renderFmtText(out, run, flags)
	}
	renderFmtDiagnostics(cmd.ErrOrStderr(), run, flags)

	if flags.timings {
		payload := driver.BuildTimingPayload("fmt", "", len(run.Results), timer)
		if flags.format == "json" {
			if err := driver.WriteTimingsJSON(cmd.ErrOrStderr(), payload); err != nil {
				return err
			}
		} else {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) //nolint:errcheck
		}
	}

	if run.HasErrors() {
		return &exitError{reason: "fmt: failed to format some files"}
	}
	if flags.check && len(run.Changed()) > 0 {
		return &exitError{reason: "fmt: formatting changes required"}
	}
	return nil
}

func renderFmtText(out io.Writer, run *driver.FormatRun, flags fmtFlags) {
	for _, res := range run.Results {
		if res.Err != nil {
			continue
		}
		var printErr error
		switch {
		case flags.check:
			if res.Changed && !flags.quiet {
				_, printErr = fmt.Fprintln(out, res.Path)
			}
		case flags.write:
			if res.Changed && !flags.quiet {
				_, printErr = fmt.Fprintf(out, "reformatted %s\n", res.Path)
			}
		default:
			_, printErr = out.Write(res.Formatted)
		}
		if printErr != nil {
			panic(printErr)
		}
	}
}

// renderFmtDiagnostics prints lex/parse diagnostics with source context and
// the remaining per-file errors as one line each.
func renderFmtDiagnostics(errOut io.Writer, run *driver.FormatRun, flags fmtFlags) {
	if flags.format == "json" {
		return
	}
	bag := run.Diagnostics(flags.maxDiag)
	diagfmt.Pretty(errOut, bag, run.FileSet, diagfmt.PrettyOpts{
		Color:     flags.colorError,
		Context:   1,
		PathMode:  flags.pathMode,
		ShowNotes: true,
	})
	for _, res := range run.Results {
		var fe *driver.FileError
		if errors.As(res.Err, &fe) {
			fmt.Fprintf(errOut, "fmt: %v\n", fe) //nolint:errcheck
		}
	}
}

func renderFmtJSON(out io.Writer, run *driver.FormatRun, flags fmtFlags) error {
	type jsonResult struct {
		Path      string `json:"path"`
		Changed   bool   `json:"changed"`
		Cached    bool   `json:"cached,omitempty"`
		Error     string `json:"error,omitempty"`
		Formatted string `json:"formatted,omitempty"`
	}
	type jsonPayload struct {
		Mode        string                    `json:"mode"`
		Results     []jsonResult              `json:"results"`
		Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
	}

	payload := jsonPayload{
		Mode:    flags.mode().String(),
		Results: make([]jsonResult, 0, len(run.Results)),
		Diagnostics: diagfmt.BuildDiagnosticsOutput(run.Diagnostics(flags.maxDiag), run.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         flags.pathMode,
			IncludeNotes:     true,
		}),
	}
	for _, res := range run.Results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if flags.mode() == driver.ModeStdout && res.Err == nil {
			jr.Formatted = string(res.Formatted)
		}
		payload.Results = append(payload.Results, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
