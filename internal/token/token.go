package token

import (
	"nyanfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// New returns a token of kind k without location, as built by tests and
// grammar tables. Operators get their literal as Text.
func New(k Kind) Token {
	t := Token{Kind: k}
	if r := k.Literal(); r != 0 {
		t.Text = string(r)
	}
	return t
}

// NewComment returns a comment token carrying text.
func NewComment(text string) Token {
	return Token{Kind: Comment, Text: text}
}

// Same reports whether t and o are the same token, ignoring location.
// Only comments compare their text; other kinds are equal by kind alone.
func (t Token) Same(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == Comment {
		return t.Text == o.Text
	}
	return true
}

// Class returns the grammar class the token belongs to.
func (t Token) Class() Class { return t.Kind.Class() }

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool { return t.Kind == Comment }

// IsNewLine reports whether the token is a collapsed line break.
func (t Token) IsNewLine() bool { return t.Kind == NewLine }

func (t Token) String() string {
	switch t.Kind {
	case Comment:
		return "Comment(" + t.Text + ")"
	default:
		return t.Kind.String()
	}
}
