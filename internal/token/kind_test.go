package token_test

import (
	"testing"

	"nyanfmt/internal/source"
	"nyanfmt/internal/token"
)

func TestLiteralsAreUnique(t *testing.T) {
	seen := make(map[rune]token.Kind)
	for _, k := range token.Operators {
		r := k.Literal()
		if r == 0 {
			t.Fatalf("%v has no literal", k)
		}
		if prev, ok := seen[r]; ok {
			t.Fatalf("%v and %v share literal %q", prev, k, r)
		}
		seen[r] = k
	}
	if len(seen) != 9 {
		t.Fatalf("expected 9 operators, got %d", len(seen))
	}
}

func TestLiteralOfNonOperator(t *testing.T) {
	for _, k := range []token.Kind{token.Invalid, token.Comment, token.NewLine} {
		if r := k.Literal(); r != 0 {
			t.Errorf("%v.Literal() = %q, want 0", k, r)
		}
		if k.IsOperator() {
			t.Errorf("%v must not be an operator", k)
		}
	}
}

func TestClassesAreDisjoint(t *testing.T) {
	owner := make(map[token.Kind]token.Class)
	for _, c := range []token.Class{token.ClassHead, token.ClassBody, token.ClassTail} {
		for _, k := range c.Kinds() {
			if prev, ok := owner[k]; ok {
				t.Fatalf("%v belongs to %v and %v", k, prev, c)
			}
			owner[k] = c
			if k.Class() != c {
				t.Errorf("%v.Class() = %v, want %v", k, k.Class(), c)
			}
		}
	}
	for _, k := range token.Operators {
		if _, ok := owner[k]; !ok {
			t.Errorf("operator %v has no class", k)
		}
	}
	if token.Comment.Class() != token.ClassNone || token.NewLine.Class() != token.ClassNone {
		t.Error("comment and newline must not belong to a word class")
	}
}

func TestSameIgnoresSpan(t *testing.T) {
	a := token.Token{Kind: token.Inc, Span: source.Span{Start: 0, End: 3}, Text: "냥"}
	b := token.New(token.Inc)
	if !a.Same(b) {
		t.Error("tokens of the same operator kind must be the same")
	}
	if a.Same(token.New(token.Dec)) {
		t.Error("different kinds must differ")
	}
	if !token.NewComment("x").Same(token.Token{Kind: token.Comment, Text: "x", Span: source.Span{End: 3}}) {
		t.Error("comments with equal text must be the same")
	}
	if token.NewComment("x").Same(token.NewComment("y")) {
		t.Error("comments with different text must differ")
	}
}

func TestTokenString(t *testing.T) {
	if got := token.NewComment("hi").String(); got != "Comment(hi)" {
		t.Errorf("got %q", got)
	}
	if got := token.New(token.JumpLeft).String(); got != "JumpLeft" {
		t.Errorf("got %q", got)
	}
}
