package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Right moves the pointer right.
	Right // ?
	// Left moves the pointer left.
	Left // !
	// Inc increments the current cell.
	Inc // 냥
	// Dec decrements the current cell.
	Dec // 냐
	// Out writes the current cell.
	Out // .
	// In reads into the current cell.
	In // ,
	// JumpRight jumps forward past the matching JumpLeft when the cell is zero.
	JumpRight // ~
	// JumpLeft jumps back to the matching JumpRight when the cell is non-zero.
	JumpLeft // -
	// Debug dumps interpreter state.
	Debug // 뀨

	// Comment is free text between two '"'.
	Comment
	// NewLine is one or more consecutive line breaks.
	NewLine
)

var literals = [...]rune{
	Right:     '?',
	Left:      '!',
	Inc:       '냥',
	Dec:       '냐',
	Out:       '.',
	In:        ',',
	JumpRight: '~',
	JumpLeft:  '-',
	Debug:     '뀨',
}

// Operators lists the operator kinds in lexing priority order.
var Operators = [...]Kind{Right, Left, Inc, Dec, Out, In, JumpRight, JumpLeft, Debug}

// Literal returns the source rune of an operator kind, or 0 for other kinds.
func (k Kind) Literal() rune {
	if int(k) < len(literals) {
		return literals[k]
	}
	return 0
}

// IsOperator reports whether k is one of the nine operators.
func (k Kind) IsOperator() bool {
	return k >= Right && k <= Debug
}

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Inc:
		return "Inc"
	case Dec:
		return "Dec"
	case Out:
		return "Out"
	case In:
		return "In"
	case JumpRight:
		return "JumpRight"
	case JumpLeft:
		return "JumpLeft"
	case Debug:
		return "Debug"
	case Comment:
		return "Comment"
	case NewLine:
		return "NewLine"
	default:
		return "Kind(?)"
	}
}
