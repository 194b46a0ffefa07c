package lexer

import (
	"fmt"
	"unicode/utf8"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/source"
)

// Error is the single terminal failure of Tokenize.
// Remaining is the unconsumed text starting at the offending position.
type Error struct {
	Remaining string
	Span      source.Span
	Code      diag.Code
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at offset %d, remaining input %q", e.Code.ID(), e.message(), e.Span.Start, preview(e.Remaining))
}

func (e *Error) message() string {
	switch e.Code {
	case diag.LexUnterminatedComment:
		return "unterminated comment"
	case diag.LexUnknownChar:
		r, _ := utf8.DecodeRuneInString(e.Remaining)
		return fmt.Sprintf("unknown character %q", r)
	default:
		return e.Code.Title()
	}
}

// Diagnostic converts the error into a diag record.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Code, e.Span, e.message())
	if e.Code == diag.LexUnterminatedComment {
		d = d.WithNote(source.Span{File: e.Span.File, Start: e.Span.Start, End: e.Span.Start + 1}, "comment opened here")
	}
	return d
}

const previewLimit = 32

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLimit {
		return s
	}
	n := 0
	for i := range s {
		if n == previewLimit {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

func (lx *Lexer) errorAt(code diag.Code, m Mark) *Error {
	rest := lx.file.Content[m:lx.cursor.Limit]
	sp := source.Span{File: lx.file.ID, Start: uint32(m), End: lx.cursor.Limit}
	if code == diag.LexUnknownChar {
		_, sz := utf8.DecodeRune(rest)
		sp.End = sp.Start + uint32(max(sz, 1))
	}
	return &Error{
		Remaining: string(rest),
		Span:      sp,
		Code:      code,
	}
}
