package diagfmt

import (
	"encoding/json"
	"io"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/source"
)

// PositionJSON is one end of a span. Line/Col are filled only with
// IncludePositions.
type PositionJSON struct {
	Byte uint32 `json:"byte"`
	Line uint32 `json:"line,omitempty"`
	Col  uint32 `json:"col,omitempty"`
}

// LocationJSON is a span rendered for machines.
type LocationJSON struct {
	File  string       `json:"file"`
	Start PositionJSON `json:"start"`
	End   PositionJSON `json:"end"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root object of `--format json` diagnostics.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

type locator struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (l locator) at(span source.Span) LocationJSON {
	loc := LocationJSON{
		File:  formatPath(l.fs, l.opts.PathMode, l.fs.Get(span.File)),
		Start: PositionJSON{Byte: span.Start},
		End:   PositionJSON{Byte: span.End},
	}
	if l.opts.IncludePositions {
		start, end := l.fs.Resolve(span)
		loc.Start.Line, loc.Start.Col = start.Line, start.Col
		loc.End.Line, loc.End.Col = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput converts bag without encoding it, so callers can
// embed it into a larger report.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	l := locator{fs: fs, opts: opts}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: l.at(d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: n.Msg, Location: l.at(n.Span)})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes BuildDiagnosticsOutput as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
