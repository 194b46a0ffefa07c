package lexer

import (
	"nyanfmt/internal/token"
)

// scanNewLine сворачивает серию переводов строки в один NewLine.
// Пробелы между переводами строки поглощаются, хвостовые пробелы
// после последнего перевода остаются обычным пропуском.
func (lx *Lexer) scanNewLine() (token.Token, bool) {
	start := lx.cursor.Mark()
	if !lx.eatLineEnding() {
		return token.Token{}, false
	}
	for {
		m := lx.cursor.Mark()
		lx.skipHSpace()
		if !lx.eatLineEnding() {
			lx.cursor.Reset(m)
			break
		}
	}
	return lx.emit(token.NewLine, start), true
}
