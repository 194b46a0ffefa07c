package ast

import (
	"strings"

	"nyanfmt/internal/token"
)

// Head is a run of Inc, Dec and Debug.
type Head []token.Kind

// Body is a run of Out, In, JumpRight and JumpLeft.
type Body []token.Kind

// Tail is a run of Right and Left.
type Tail []token.Kind

func (h Head) String() string { return literals(h) }
func (b Body) String() string { return literals(b) }
func (t Tail) String() string { return literals(t) }

func literals(ks []token.Kind) string {
	var sb strings.Builder
	for _, k := range ks {
		sb.WriteRune(k.Literal())
	}
	return sb.String()
}

// Word is Head? Body? Tail?; a nil part is absent.
type Word struct {
	Head Head
	Body Body
	Tail Tail
}

// Empty reports whether all three parts are absent.
func (w Word) Empty() bool {
	return len(w.Head) == 0 && len(w.Body) == 0 && len(w.Tail) == 0
}

// Kinds returns the operators of the word in source order.
func (w Word) Kinds() []token.Kind {
	out := make([]token.Kind, 0, len(w.Head)+len(w.Body)+len(w.Tail))
	out = append(out, w.Head...)
	out = append(out, w.Body...)
	return append(out, w.Tail...)
}

func (w Word) String() string {
	return w.Head.String() + w.Body.String() + w.Tail.String()
}

// Sentence is a non-empty run of words.
type Sentence []Word

// Comment is the text between two '"'.
type Comment struct {
	Text string
}

func (c Comment) String() string {
	return `"` + c.Text + `"`
}
