package driver

import (
	"encoding/json"
	"io"

	"nyanfmt/internal/observ"
)

// TimingPayload is the JSON shape of --timings output.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	Files   int                  `json:"files,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// BuildTimingPayload snapshots timer under kind ("fmt", "parse", ...).
func BuildTimingPayload(kind, path string, files int, timer *observ.Timer) TimingPayload {
	report := timer.Report()
	if kind == "" {
		kind = "pipeline"
	}
	return TimingPayload{
		Kind:    kind,
		Path:    path,
		Files:   files,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	}
}

// WriteTimingsJSON writes payload as one JSON object.
func WriteTimingsJSON(w io.Writer, payload TimingPayload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
