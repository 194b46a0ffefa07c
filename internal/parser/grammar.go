package parser

import (
	"nyanfmt/internal/ast"
	"nyanfmt/internal/comb"
	"nyanfmt/internal/stream"
	"nyanfmt/internal/token"
)

type tok = token.Token

var (
	headClass = stream.Of(token.ClassHead.Kinds()...)
	bodyClass = stream.Of(token.ClassBody.Kinds()...)
	tailClass = stream.Of(token.ClassTail.Kinds()...)
)

// grammar holds the assembled parsers; built once, stateless, safe to share.
type grammar struct {
	newline    comb.Parser[stream.Tokens, stream.Tokens]
	head       comb.Parser[stream.Tokens, ast.Head]
	body       comb.Parser[stream.Tokens, ast.Body]
	tail       comb.Parser[stream.Tokens, ast.Tail]
	word       comb.Parser[stream.Tokens, ast.Word]
	sentence   comb.Parser[stream.Tokens, ast.Sentence]
	sentences0 comb.Parser[stream.Tokens, []ast.Sentence]
	sentences1 comb.Parser[stream.Tokens, []ast.Sentence]
	comment    comb.Parser[stream.Tokens, ast.Comment]
	comments0  comb.Parser[stream.Tokens, []ast.Comment]
	comments1  comb.Parser[stream.Tokens, []ast.Comment]
	paragraph  comb.Parser[stream.Tokens, ast.Paragraph]
	code       comb.Parser[stream.Tokens, ast.Code]
	root       comb.Parser[stream.Tokens, ast.Root]
}

var g = newGrammar()

func newGrammar() *grammar {
	gr := &grammar{}
	gr.newline = comb.Tag[tok, stream.Tokens](token.New(token.NewLine))

	gr.head = expect(ConstructHead, comb.Map(comb.IsA[tok](headClass),
		func(ts stream.Tokens) ast.Head { return ast.Head(ts.Kinds()) }))
	gr.body = expect(ConstructBody, comb.Map(comb.IsA[tok](bodyClass),
		func(ts stream.Tokens) ast.Body { return ast.Body(ts.Kinds()) }))
	gr.tail = expect(ConstructTail, comb.Map(comb.IsA[tok](tailClass),
		func(ts stream.Tokens) ast.Tail { return ast.Tail(ts.Kinds()) }))

	parts := comb.Tuple3(comb.Opt(gr.head), comb.Opt(gr.body), comb.Opt(gr.tail))
	gr.word = expect(ConstructWord, comb.Map(
		comb.Verify(parts, func(p comb.Triple[ast.Head, ast.Body, ast.Tail]) bool {
			return p.A != nil || p.B != nil || p.C != nil
		}),
		func(p comb.Triple[ast.Head, ast.Body, ast.Tail]) ast.Word {
			return ast.Word{Head: p.A, Body: p.B, Tail: p.C}
		}))

	gr.sentence = expect(ConstructSentence, comb.Map(comb.Many1[tok](gr.word),
		func(ws []ast.Word) ast.Sentence { return ast.Sentence(ws) }))
	gr.sentences0 = comb.Many0[tok](gr.padNewLineSentence())
	gr.sentences1 = comb.Many1[tok](gr.padNewLineSentence())

	gr.comment = expect(ConstructComment, comb.MapOpt(comb.Any[tok, stream.Tokens](),
		func(t tok) (ast.Comment, bool) {
			if t.Kind != token.Comment {
				return ast.Comment{}, false
			}
			return ast.Comment{Text: t.Text}, true
		}))
	gr.comments0 = comb.Many0[tok](padNewLine(gr.newline, gr.comment))
	gr.comments1 = comb.Many1[tok](padNewLine(gr.newline, gr.comment))

	gr.paragraph = expect(ConstructParagraph, comb.Map(comb.Pair(gr.comments1, gr.sentences1),
		func(p comb.Tuple2[[]ast.Comment, []ast.Sentence]) ast.Paragraph {
			return ast.Paragraph{Comments: p.A, Sentences: p.B}
		}))

	gr.code = expect(ConstructCode, comb.Map(
		comb.Tuple3(gr.sentences0, comb.Many0[tok](gr.paragraph), gr.comments0),
		func(p comb.Triple[[]ast.Sentence, []ast.Paragraph, []ast.Comment]) ast.Code {
			return ast.Code{LeadingSentences: p.A, Paragraphs: p.B, TrailingComments: p.C}
		}))

	// Файл из одних пустых строк: пустая программа.
	blank := comb.Value(ast.Root{}, comb.AllConsuming[tok](gr.newline))
	full := comb.Map(comb.AllConsuming[tok](gr.code),
		func(c ast.Code) ast.Root { return ast.Root{Code: c} })
	gr.root = expect(EndOfInput, comb.Alt(blank, full))
	return gr
}

func (gr *grammar) padNewLineSentence() comb.Parser[stream.Tokens, ast.Sentence] {
	return padNewLine(gr.newline, gr.sentence)
}

// padNewLine allows one NewLine on each side of p and drops them.
func padNewLine[O any](nl comb.Parser[stream.Tokens, stream.Tokens], p comb.Parser[stream.Tokens, O]) comb.Parser[stream.Tokens, O] {
	opt := comb.Opt(nl)
	return comb.Delimited(opt, p, opt)
}
