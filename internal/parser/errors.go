package parser

import (
	"errors"
	"fmt"

	"nyanfmt/internal/comb"
	"nyanfmt/internal/diag"
	"nyanfmt/internal/stream"
)

// Construct names the grammar element the parser was looking for.
type Construct uint8

const (
	ConstructUnknown Construct = iota
	ConstructHead
	ConstructBody
	ConstructTail
	ConstructWord
	ConstructSentence
	ConstructComment
	ConstructParagraph
	ConstructCode
	EndOfInput
)

func (c Construct) String() string {
	switch c {
	case ConstructHead:
		return "head"
	case ConstructBody:
		return "body"
	case ConstructTail:
		return "tail"
	case ConstructWord:
		return "word"
	case ConstructSentence:
		return "sentence"
	case ConstructComment:
		return "comment"
	case ConstructParagraph:
		return "paragraph"
	case ConstructCode:
		return "code"
	case EndOfInput:
		return "end of input"
	default:
		return "unknown"
	}
}

// Error is the single terminal failure of Parse. Position is the token view
// where the failing construct was attempted.
type Error struct {
	Position stream.Tokens
	Expected Construct
	Kind     comb.ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at token %d", e.Code().ID(), e.message(), e.Position.Offset())
}

// Code maps the error onto a diagnostic code.
func (e *Error) Code() diag.Code {
	if e.Expected == EndOfInput && e.Position.Len() > 0 {
		return diag.SynUnexpectedToken
	}
	return diag.SynExpectConstruct
}

func (e *Error) message() string {
	found := "end of input"
	if e.Position.Len() > 0 {
		found = e.Position.At(0).String()
	}
	if e.Expected == EndOfInput {
		return fmt.Sprintf("unexpected %s, expected end of input", found)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, found)
}

// Diagnostic converts the error into a diag record pointing at the first
// unconsumed token.
func (e *Error) Diagnostic() diag.Diagnostic {
	sp, _ := e.Position.Span()
	return diag.NewError(e.Code(), sp, e.message())
}

// expect labels recoverable combinator failures of p with c. A failure that
// already carries a label keeps it, so the innermost construct wins.
func expect[O any](c Construct, p comb.Parser[stream.Tokens, O]) comb.Parser[stream.Tokens, O] {
	return func(in stream.Tokens) (stream.Tokens, O, error) {
		rest, out, err := p(in)
		if err == nil || comb.IsFatal(err) {
			return rest, out, err
		}
		var ce *comb.Error[stream.Tokens]
		if errors.As(err, &ce) {
			return rest, out, &Error{Position: ce.Input, Expected: c, Kind: ce.Kind}
		}
		return rest, out, err
	}
}
