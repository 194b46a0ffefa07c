package lexer_test

import (
	"errors"
	"testing"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/source"
	"nyanfmt/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func equalKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []token.Kind
	}{
		{"empty", "", nil},
		{"spaces only", "  \t ", nil},
		{"all operators", "?!냥냐.,~-뀨", []token.Kind{
			token.Right, token.Left, token.Inc, token.Dec, token.Out,
			token.In, token.JumpRight, token.JumpLeft, token.Debug,
		}},
		{"spaces between", "냥 냥\t!", []token.Kind{token.Inc, token.Inc, token.Left}},
		{"comment and word", `"hi"냥냥!?`, []token.Kind{
			token.Comment, token.Inc, token.Inc, token.Left, token.Right,
		}},
		{"newlines collapse", "냥\n\n\n냐", []token.Kind{token.Inc, token.NewLine, token.Dec}},
		{"crlf collapse", "냥\r\n\r\n냐", []token.Kind{token.Inc, token.NewLine, token.Dec}},
		{"blank line with spaces", "냥\n   \n\t\n냐", []token.Kind{token.Inc, token.NewLine, token.Dec}},
		{"trailing spaces after newline", "냥\n  ", []token.Kind{token.Inc, token.NewLine}},
		{"leading newline", "\n냥", []token.Kind{token.NewLine, token.Inc}},
		{"comment then newline", "\"a\"\n냥", []token.Kind{token.Comment, token.NewLine, token.Inc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.TokenizeString(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := kinds(toks); !equalKinds(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoConsecutiveNewLines(t *testing.T) {
	toks, err := lexer.TokenizeString("\n\n냥\n \n\r\n냐\n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].IsNewLine() && toks[i-1].IsNewLine() {
			t.Fatalf("adjacent NewLine tokens at %d: %v", i, kinds(toks))
		}
	}
}

func TestCommentText(t *testing.T) {
	toks, err := lexer.TokenizeString("\"multi\nline 냥\"\"\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 comments, got %v", kinds(toks))
	}
	if toks[0].Text != "multi\nline 냥" {
		t.Errorf("first comment text = %q", toks[0].Text)
	}
	if toks[1].Kind != token.Comment || toks[1].Text != "" {
		t.Errorf("second token = %v", toks[1])
	}
}

func TestTokenSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("spans.nyan", []byte("냥 \"c\"\n?"))
	toks, err := lexer.Tokenize(fs.Get(id))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []source.Span{
		{File: id, Start: 0, End: 3},
		{File: id, Start: 4, End: 7},
		{File: id, Start: 7, End: 8},
		{File: id, Start: 8, End: 9},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Span != want[i] {
			t.Errorf("token %d (%v): span %+v, want %+v", i, tok.Kind, tok.Span, want[i])
		}
	}
	if toks[0].Text != "냥" || toks[3].Text != "?" {
		t.Errorf("operator text not preserved: %q %q", toks[0].Text, toks[3].Text)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		code      diag.Code
		remaining string
		start     uint32
	}{
		{"unknown char", "냥냥%$#?", diag.LexUnknownChar, "%$#?", 6},
		{"letter", "a", diag.LexUnknownChar, "a", 0},
		{"lone cr", "냥\r냥", diag.LexUnknownChar, "\r냥", 3},
		{"unterminated comment", "냥 \"open", diag.LexUnterminatedComment, "\"open", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.TokenizeString(tt.in)
			if err == nil {
				t.Fatalf("expected error, got tokens %v", kinds(toks))
			}
			if toks != nil {
				t.Errorf("expected no tokens on failure, got %v", kinds(toks))
			}
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *lexer.Error, got %T", err)
			}
			if lexErr.Code != tt.code {
				t.Errorf("code = %v, want %v", lexErr.Code.ID(), tt.code.ID())
			}
			if lexErr.Remaining != tt.remaining {
				t.Errorf("remaining = %q, want %q", lexErr.Remaining, tt.remaining)
			}
			if lexErr.Span.Start != tt.start {
				t.Errorf("span start = %d, want %d", lexErr.Span.Start, tt.start)
			}
		})
	}
}

func TestErrorDiagnostic(t *testing.T) {
	_, err := lexer.TokenizeString("?\"abc")
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %v", err)
	}
	d := lexErr.Diagnostic()
	if d.Severity != diag.SevError || d.Code != diag.LexUnterminatedComment {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 1 {
		t.Fatalf("expected a note at the opening quote, got %+v", d.Notes)
	}
}

func TestOperatorLiteralsRoundTrip(t *testing.T) {
	for _, k := range token.Operators {
		toks, err := lexer.TokenizeString(string(k.Literal()))
		if err != nil {
			t.Fatalf("%v: %v", k, err)
		}
		if len(toks) != 1 || toks[0].Kind != k {
			t.Fatalf("%v: got %v", k, kinds(toks))
		}
	}
}
