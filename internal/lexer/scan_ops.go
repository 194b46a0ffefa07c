package lexer

import (
	"nyanfmt/internal/token"
)

// scanOperator пробует операторы в порядке token.Operators.
// Все литералы: одна руна, так что жадность не нужна.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.cursor.Mark()
	r, sz := lx.cursor.PeekRune()
	if sz == 0 {
		return token.Token{}, false
	}
	for _, k := range token.Operators {
		if k.Literal() == r {
			lx.cursor.BumpRune()
			return lx.emit(k, start), true
		}
	}
	return token.Token{}, false
}
