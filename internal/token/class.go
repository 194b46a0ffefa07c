package token

// Class groups operator kinds by their position inside a word.
type Class uint8

const (
	// ClassNone covers comments, newlines and invalid tokens.
	ClassNone Class = iota
	// ClassHead opens a word: Inc, Dec, Debug.
	ClassHead
	// ClassBody is the middle of a word: Out, In, JumpRight, JumpLeft.
	ClassBody
	// ClassTail closes a word: Right, Left.
	ClassTail
)

// Class returns the word class of k.
func (k Kind) Class() Class {
	switch k {
	case Inc, Dec, Debug:
		return ClassHead
	case Out, In, JumpRight, JumpLeft:
		return ClassBody
	case Right, Left:
		return ClassTail
	default:
		return ClassNone
	}
}

// Kinds returns the members of c in declaration order.
func (c Class) Kinds() []Kind {
	switch c {
	case ClassHead:
		return []Kind{Inc, Dec, Debug}
	case ClassBody:
		return []Kind{Out, In, JumpRight, JumpLeft}
	case ClassTail:
		return []Kind{Right, Left}
	default:
		return nil
	}
}

func (c Class) String() string {
	switch c {
	case ClassHead:
		return "head"
	case ClassBody:
		return "body"
	case ClassTail:
		return "tail"
	default:
		return "none"
	}
}
