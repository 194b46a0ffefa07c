package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// Ширина подчёркивания считается в колонках терминала, поэтому хангыль
// (две колонки на символ) выравнивается правильно.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

type palette struct {
	sev   map[diag.Severity]*color.Color
	code  *color.Color
	caret *color.Color
	gut   *color.Color
	note  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		code:  color.New(color.Bold),
		caret: color.New(color.FgRed, color.Bold),
		gut:   color.New(color.FgBlue),
		note:  color.New(color.FgCyan),
	}
	all := []*color.Color{p.code, p.caret, p.gut, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) string {
	if c, ok := p.sev[s]; ok {
		return c.Sprint(s.String())
	}
	return s.String()
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(fs, opts.PathMode, f)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", //nolint:errcheck
		path, start.Line, start.Col, p.severity(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
	writeSnippet(w, fs, f, d.Primary, opts.Context, p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), formatPath(fs, opts.PathMode, nf), ns.Line, ns.Col, n.Msg) //nolint:errcheck
	}
}

// writeSnippet печатает строки вокруг span и каретки под ним.
func writeSnippet(w io.Writer, fs *source.FileSet, f *source.File, sp source.Span, context int8, p palette) {
	start, end := fs.Resolve(sp)
	ctx := uint32(max(context, 0))
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	lastLine := lineCount(f)
	last := min(start.Line+ctx, lastLine)
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", p.gut.Sprintf("%*d |", gutterWidth, ln), text) //nolint:errcheck
		if ln != start.Line {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", p.gut.Sprintf("%*s |", gutterWidth, ""), p.caret.Sprint(caretLine(text, start, end))) //nolint:errcheck
	}
}

// caretLine строит "   ^~~" под байтовыми колонками [start.Col, end.Col).
func caretLine(text string, start, end source.LineCol) string {
	from := clampCol(int(start.Col)-1, len(text))
	to := len(text)
	if end.Line == start.Line {
		to = clampCol(int(end.Col)-1, len(text))
	}
	var sb strings.Builder
	for _, r := range text[:from] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := runewidth.StringWidth(text[from:max(from, to)])
	sb.WriteByte('^')
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

func clampCol(c, n int) int {
	return min(max(c, 0), n)
}

func lineCount(f *source.File) uint32 {
	n := uint32(len(f.LineIdx)) + 1
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] == '\n' {
		n--
	}
	return max(n, 1)
}
