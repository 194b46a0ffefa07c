package lexer

import (
	"bytes"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/token"

	"fortio.org/safecast"
)

// scanComment читает `"..."`. Экранирования нет: комментарий заканчивается
// на первой следующей кавычке и может занимать несколько строк.
// Text хранит содержимое без кавычек.
func (lx *Lexer) scanComment() (token.Token, bool, *Error) {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('"') {
		return token.Token{}, false, nil
	}
	body := lx.cursor.Rest()
	end := bytes.IndexByte(body, '"')
	if end < 0 {
		lx.cursor.Reset(start)
		return token.Token{}, false, lx.errorAt(diag.LexUnterminatedComment, start)
	}
	n, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(err)
	}
	lx.cursor.Off += n
	lx.cursor.Bump() // closing quote
	tok := lx.emit(token.Comment, start)
	tok.Text = string(body[:end])
	return tok, true, nil
}
