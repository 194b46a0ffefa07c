package lexer

import (
	"nyanfmt/internal/diag"
	"nyanfmt/internal/source"
	"nyanfmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Tokenize разбивает весь файл на токены. Вход должен быть поглощён целиком,
// иначе возвращается *Error с остатком текста; восстановления нет.
func Tokenize(file *source.File) ([]token.Token, error) {
	toks, err := New(file).All()
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// TokenizeString лексит текст как виртуальный файл без нормализации.
func TokenizeString(text string) ([]token.Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(text))
	return Tokenize(fs.Get(id))
}

// All читает токены до конца файла.
func (lx *Lexer) All() ([]token.Token, *Error) {
	var out []token.Token
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}

// Next возвращает следующий токен; ok == false на EOF.
func (lx *Lexer) Next() (tok token.Token, ok bool, err *Error) {
	// 1) пропустить горизонтальные пробелы
	lx.skipHSpace()
	if lx.cursor.EOF() {
		return token.Token{}, false, nil
	}

	// 2) операторы, затем комментарий, затем перевод строки
	if tok, ok := lx.scanOperator(); ok {
		return tok, true, nil
	}
	tok, ok, err = lx.scanComment()
	if err != nil {
		return token.Token{}, false, err
	}
	if ok {
		return tok, true, nil
	}
	if tok, ok := lx.scanNewLine(); ok {
		return tok, true, nil
	}

	// 3) ничего не подошло
	return token.Token{}, false, lx.errorAt(diag.LexUnknownChar, lx.cursor.Mark())
}
