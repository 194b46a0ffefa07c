package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nyanfmt/internal/version"
)

type versionInfo struct {
	Version    string
	GitCommit  string
	GitMessage string
	BuildDate  string
}

type versionOptions struct {
	format      string
	showHash    bool
	showMessage bool
	showDate    bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

const versionTagline = "every cat in its place"

var (
	versionFormat      string
	versionShowHash    bool
	versionShowMessage bool
	versionShowDate    bool
	versionShowFull    bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowMessage, "message", false, "include git commit message")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show nyanfmt build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := versionOptions{
			format:      strings.ToLower(versionFormat),
			showHash:    versionShowHash || versionShowFull,
			showMessage: versionShowMessage || versionShowFull,
			showDate:    versionShowDate || versionShowFull,
		}

		switch opts.format {
		case "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := collectVersionInfo()
		if opts.format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info, opts)
		}

		// fatih/color сам смотрит на NO_COLOR и tty; --color имеет приоритет
		color.NoColor = !useColor(cmd, os.Stdout)
		info.Version = version.Colored()
		renderVersionPretty(cmd.OutOrStdout(), info, opts)
		return nil
	},
}

func collectVersionInfo() versionInfo {
	return versionInfo{
		Version:    version.Plain(),
		GitCommit:  strings.TrimSpace(version.GitCommit),
		GitMessage: strings.TrimSpace(version.GitMessage),
		BuildDate:  strings.TrimSpace(version.BuildDate),
	}
}

// versionField is one optional line of build metadata.
type versionField struct {
	label string
	value string
}

func selectedFields(info versionInfo, opts versionOptions) []versionField {
	var out []versionField
	if opts.showHash {
		out = append(out, versionField{"commit", valueOrUnknown(info.GitCommit)})
	}
	if opts.showMessage {
		out = append(out, versionField{"message", valueOrUnknown(info.GitMessage)})
	}
	if opts.showDate {
		out = append(out, versionField{"built", valueOrUnknown(info.BuildDate)})
	}
	return out
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) {
	fmt.Fprintf(out, "nyanfmt %s - %s\n", info.Version, versionTagline)
	fields := selectedFields(info, opts)
	if len(fields) == 0 {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
		return
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-8s %s\n", f.label+":", f.value)
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	payload := versionPayload{Tool: "nyanfmt", Version: info.Version, Tagline: versionTagline}
	for _, f := range selectedFields(info, opts) {
		switch f.label {
		case "commit":
			payload.GitCommit = f.value
		case "message":
			payload.GitMessage = f.value
		case "built":
			payload.BuildDate = f.value
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
