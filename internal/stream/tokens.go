// Package stream adapts a token slice to the comb.Input contract so the
// generic combinators can run over lexer output.
package stream

import (
	"iter"
	"strings"

	"nyanfmt/internal/comb"
	"nyanfmt/internal/source"
	"nyanfmt/internal/token"
)

// Tokens is an immutable view over a borrowed token slice. Off is the index of
// the first element in the slice the view was cut from; it only serves error
// reporting.
type Tokens struct {
	toks []token.Token
	off  int
}

var _ comb.Input[token.Token, Tokens] = Tokens{}

// New wraps toks without copying.
func New(toks []token.Token) Tokens {
	return Tokens{toks: toks}
}

// Of builds a token class from kinds, for use with comb.IsA.
func Of(kinds ...token.Kind) Tokens {
	toks := make([]token.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = token.New(k)
	}
	return Tokens{toks: toks}
}

func (t Tokens) Len() int { return len(t.toks) }

func (t Tokens) At(i int) token.Token { return t.toks[i] }

// Offset returns the position of the view inside the original sequence.
func (t Tokens) Offset() int { return t.off }

func (t Tokens) All() iter.Seq2[int, token.Token] {
	return func(yield func(int, token.Token) bool) {
		for i, tok := range t.toks {
			if !yield(i, tok) {
				return
			}
		}
	}
}

func (t Tokens) Position(pred func(token.Token) bool) (int, bool) {
	for i, tok := range t.toks {
		if pred(tok) {
			return i, true
		}
	}
	return 0, false
}

// Compare reports whether the view starts with a token that is the same as want.
func (t Tokens) Compare(want token.Token) bool {
	return len(t.toks) > 0 && t.toks[0].Same(want)
}

// Contains reports whether some token of the view is the same as tok.
func (t Tokens) Contains(tok token.Token) bool {
	for _, x := range t.toks {
		if x.Same(tok) {
			return true
		}
	}
	return false
}

// Take returns the first n tokens. n must not exceed Len.
func (t Tokens) Take(n int) Tokens {
	return Tokens{toks: t.toks[:n:n], off: t.off}
}

// TakeSplit splits the view at n; taken followed by rest is the original view.
func (t Tokens) TakeSplit(n int) (rest, taken Tokens) {
	return Tokens{toks: t.toks[n:], off: t.off + n}, Tokens{toks: t.toks[:n:n], off: t.off}
}

// Kinds lists the kinds of the view.
func (t Tokens) Kinds() []token.Kind {
	out := make([]token.Kind, len(t.toks))
	for i, tok := range t.toks {
		out[i] = tok.Kind
	}
	return out
}

// Span returns the span of the first token, if any.
func (t Tokens) Span() (source.Span, bool) {
	if len(t.toks) == 0 {
		return source.Span{}, false
	}
	return t.toks[0].Span, true
}

func (t Tokens) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, tok := range t.toks {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tok.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
