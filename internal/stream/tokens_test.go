package stream_test

import (
	"slices"
	"testing"

	"nyanfmt/internal/comb"
	"nyanfmt/internal/stream"
	"nyanfmt/internal/token"
)

func sample() stream.Tokens {
	return stream.New([]token.Token{
		token.NewComment("c"),
		token.New(token.Inc),
		token.New(token.Dec),
		token.New(token.Out),
		token.New(token.NewLine),
	})
}

func collect(s stream.Tokens) []token.Token {
	out := make([]token.Token, 0, s.Len())
	for _, tok := range s.All() {
		out = append(out, tok)
	}
	return out
}

func TestTakeSplitAssociativity(t *testing.T) {
	s := sample()
	for n := 0; n <= s.Len(); n++ {
		rest, taken := s.TakeSplit(n)
		if taken.Len() != n || rest.Len() != s.Len()-n {
			t.Fatalf("n=%d: lengths %d+%d", n, taken.Len(), rest.Len())
		}
		joined := append(collect(taken), collect(rest)...)
		if !slices.EqualFunc(joined, collect(s), token.Token.Same) {
			t.Fatalf("n=%d: taken++rest = %v", n, joined)
		}
		if rest.Offset() != n {
			t.Fatalf("n=%d: rest offset %d", n, rest.Offset())
		}
		if got := s.Take(n); got.Len() != n {
			t.Fatalf("n=%d: Take returned %d", n, got.Len())
		}
	}
}

func TestCompareAndContains(t *testing.T) {
	s := sample()
	if !s.Compare(token.NewComment("c")) {
		t.Error("Compare must match the first comment")
	}
	if s.Compare(token.NewComment("d")) {
		t.Error("Compare must check comment text")
	}
	if stream.New(nil).Compare(token.New(token.Inc)) {
		t.Error("empty view matches nothing")
	}
	head := stream.Of(token.Inc, token.Dec, token.Debug)
	if !head.Contains(token.New(token.Dec)) || head.Contains(token.New(token.Out)) {
		t.Error("class membership broken")
	}
}

func TestPositionAndAll(t *testing.T) {
	s := sample()
	i, ok := s.Position(token.Token.IsNewLine)
	if !ok || i != 4 {
		t.Fatalf("Position = %d, %v", i, ok)
	}
	if _, ok := s.Position(func(tok token.Token) bool { return tok.Kind == token.Debug }); ok {
		t.Fatal("unexpected match")
	}
	n := 0
	for idx, tok := range s.All() {
		if !tok.Same(s.At(idx)) {
			t.Fatalf("All yielded %v at %d", tok, idx)
		}
		n++
	}
	if n != s.Len() {
		t.Fatalf("All yielded %d tokens", n)
	}
}

func TestCombinatorsOverTokens(t *testing.T) {
	s := sample()
	rest, got, err := comb.Tag[token.Token, stream.Tokens](token.NewComment("c"))(s)
	if err != nil || got.Len() != 1 || rest.Len() != 4 {
		t.Fatalf("Tag: %v %v %v", got, rest, err)
	}

	head := stream.Of(token.Inc, token.Dec, token.Debug)
	rest, got, err = comb.IsA[token.Token](head)(rest)
	if err != nil {
		t.Fatalf("IsA: %v", err)
	}
	if !slices.Equal(got.Kinds(), []token.Kind{token.Inc, token.Dec}) {
		t.Fatalf("IsA took %v", got.Kinds())
	}
	if rest.At(0).Kind != token.Out || rest.Offset() != 3 {
		t.Fatalf("rest = %v at %d", rest, rest.Offset())
	}
}

func TestString(t *testing.T) {
	got := stream.New([]token.Token{token.NewComment("x"), token.New(token.Left)}).String()
	if got != "[Comment(x), Left]" {
		t.Fatalf("got %q", got)
	}
}
