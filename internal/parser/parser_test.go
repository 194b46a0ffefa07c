package parser_test

import (
	"errors"
	"strings"
	"testing"

	"nyanfmt/internal/comb"
	"nyanfmt/internal/diag"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/parser"
	"nyanfmt/internal/token"
)

func tokens(kinds ...token.Kind) []token.Token {
	out := make([]token.Token, len(kinds))
	for i, k := range kinds {
		out[i] = token.New(k)
	}
	return out
}

func TestParseCommentAndWord(t *testing.T) {
	toks, err := lexer.TokenizeString(`"hi"냥냥!?`)
	if err != nil {
		t.Fatal(err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code := root.Code
	if len(code.LeadingSentences) != 0 || len(code.TrailingComments) != 0 || len(code.Paragraphs) != 1 {
		t.Fatalf("unexpected shape: %+v", code)
	}
	p := code.Paragraphs[0]
	if len(p.Comments) != 1 || p.Comments[0].Text != "hi" {
		t.Fatalf("comments: %+v", p.Comments)
	}
	if len(p.Sentences) != 1 || len(p.Sentences[0]) != 1 || p.Sentences[0][0].String() != "냥냥!?" {
		t.Fatalf("sentences: %+v", p.Sentences)
	}
}

func TestParseOnlyComments(t *testing.T) {
	toks, err := lexer.TokenizeString("\"a\" \"b\"\n\"c\"\n")
	if err != nil {
		t.Fatal(err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(root.Code.TrailingComments); got != 3 || len(root.Code.Paragraphs) != 0 {
		t.Fatalf("expected 3 trailing comments, got %+v", root.Code)
	}
}

func TestParseBlankProgram(t *testing.T) {
	for _, src := range []string{"", "\n", "  \n\n \t\n"} {
		toks, err := lexer.TokenizeString(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		root, err := parser.Parse(toks)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if !root.Code.Empty() {
			t.Fatalf("%q: expected empty code, got %+v", src, root.Code)
		}
	}
}

func TestParseTrailingInput(t *testing.T) {
	tests := []struct {
		name   string
		toks   []token.Token
		offset int
	}{
		{"two leading newlines", tokens(token.NewLine, token.NewLine, token.In), 0},
		{"three newlines between sentences", tokens(token.In, token.NewLine, token.NewLine, token.NewLine, token.In), 2},
		{"repeated newlines", tokens(token.NewLine, token.NewLine, token.In, token.NewLine, token.NewLine, token.NewLine, token.NewLine, token.In, token.NewLine), 0},
		{"two newlines only", tokens(token.NewLine, token.NewLine), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.toks)
			var pe *parser.Error
			if !errors.As(err, &pe) {
				t.Fatalf("expected *parser.Error, got %v", err)
			}
			if pe.Expected != parser.EndOfInput || pe.Kind != comb.KindEof {
				t.Fatalf("got (%v, %v)", pe.Expected, pe.Kind)
			}
			if pe.Position.Offset() != tt.offset {
				t.Fatalf("error at token %d, want %d", pe.Position.Offset(), tt.offset)
			}
			if pe.Code() != diag.SynUnexpectedToken {
				t.Fatalf("code = %s", pe.Code().ID())
			}
			if !strings.Contains(pe.Error(), "unexpected NewLine") {
				t.Fatalf("message = %q", pe.Error())
			}
		})
	}
}

func TestParseAcceptsSingleNewLinesAroundSentences(t *testing.T) {
	_, err := parser.Parse(tokens(token.NewLine, token.In, token.NewLine, token.NewLine, token.In, token.NewLine))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseConsumesEverything(t *testing.T) {
	srcs := []string{
		"냥냐?!.,~-뀨",
		"냥\n냐\n\"c\"\n?\n\n\"d\" \"e\"",
		"\"a\"\n\n\n냥 냥\n\n\"b\"",
	}
	for _, src := range srcs {
		toks, err := lexer.TokenizeString(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if _, err := parser.Parse(toks); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestErrorDiagnosticSpan(t *testing.T) {
	toks, err := lexer.TokenizeString("냥")
	if err != nil {
		t.Fatal(err)
	}
	nl := token.New(token.NewLine)
	nl.Span = toks[0].Span
	nl.Span.Start, nl.Span.End = 3, 4
	bad := []token.Token{toks[0], nl, nl, nl, toks[0]}
	_, err = parser.Parse(bad)
	var pe *parser.Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *parser.Error, got %v", err)
	}
	d := pe.Diagnostic()
	if d.Code != diag.SynUnexpectedToken || d.Primary.Start != 3 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}
