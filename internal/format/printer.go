package format

import (
	"errors"

	"nyanfmt/internal/ast"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/parser"
	"nyanfmt/internal/source"
)

type printer struct {
	w *Writer
}

// Print renders root in canonical form.
func Print(root ast.Root) string {
	p := printer{w: NewWriter(0)}
	p.code(root.Code)
	p.w.Finish()
	return p.w.String()
}

// Source formats src. It fails with *lexer.Error or *parser.Error.
func Source(src string) (string, error) {
	toks, err := lexer.TokenizeString(src)
	if err != nil {
		return "", err
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return "", err
	}
	return Print(root), nil
}

// File formats an already loaded source file.
func File(sf *source.File) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	toks, err := lexer.Tokenize(sf)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	p := printer{w: NewWriter(len(sf.Content))}
	p.code(root.Code)
	p.w.Finish()
	return p.w.Bytes(), nil
}

func (p *printer) code(c ast.Code) {
	for _, s := range c.LeadingSentences {
		p.w.Newline()
		p.sentence(s)
	}
	for _, para := range c.Paragraphs {
		p.w.BlankLine()
		p.paragraph(para)
	}
	p.w.BlankLine()
	for _, cm := range c.TrailingComments {
		p.w.WriteString(cm.String())
		p.w.Newline()
	}
}

func (p *printer) paragraph(para ast.Paragraph) {
	for _, cm := range para.Comments {
		p.w.WriteString(cm.String())
		p.w.Newline()
	}
	for _, s := range para.Sentences {
		p.w.Newline()
		p.sentence(s)
	}
}

func (p *printer) sentence(s ast.Sentence) {
	for i, word := range s {
		if i > 0 {
			p.w.Space()
		}
		p.w.WriteString(word.String())
	}
}
