package lexer

import "nyanfmt/internal/token"

// isHSpace: горизонтальные пробелы, которые лексер пропускает между токенами.
func isHSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// skipHSpace съедает пробелы и табы.
func (lx *Lexer) skipHSpace() {
	for isHSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// eatLineEnding съедает "\n" или "\r\n".
func (lx *Lexer) eatLineEnding() bool {
	if lx.cursor.Eat('\n') {
		return true
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\r' && b1 == '\n' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}

func (lx *Lexer) emit(k token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
