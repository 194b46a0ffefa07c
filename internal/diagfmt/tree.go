package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nyanfmt/internal/ast"
)

// FormatTreePretty печатает дерево с отступами, по узлу на строку:
//
//	Root
//	  Sentence
//	    Word head=냥 body=. tail=?
//	  Paragraph
//	    Comment "hi"
func FormatTreePretty(w io.Writer, root ast.Root) error {
	tp := treePrinter{w: w}
	tp.line(0, "Root")
	c := root.Code
	for _, s := range c.LeadingSentences {
		tp.sentence(1, s)
	}
	for _, p := range c.Paragraphs {
		tp.line(1, "Paragraph")
		for _, cm := range p.Comments {
			tp.line(2, "Comment "+cm.String())
		}
		for _, s := range p.Sentences {
			tp.sentence(2, s)
		}
	}
	for _, cm := range c.TrailingComments {
		tp.line(1, "Comment "+cm.String())
	}
	return tp.err
}

type treePrinter struct {
	w   io.Writer
	err error
}

func (tp *treePrinter) line(depth int, s string) {
	if tp.err != nil {
		return
	}
	_, tp.err = fmt.Fprintf(tp.w, "%s%s\n", strings.Repeat("  ", depth), s)
}

func (tp *treePrinter) sentence(depth int, s ast.Sentence) {
	tp.line(depth, "Sentence")
	for _, wd := range s {
		parts := make([]string, 0, 3)
		if len(wd.Head) > 0 {
			parts = append(parts, "head="+wd.Head.String())
		}
		if len(wd.Body) > 0 {
			parts = append(parts, "body="+wd.Body.String())
		}
		if len(wd.Tail) > 0 {
			parts = append(parts, "tail="+wd.Tail.String())
		}
		tp.line(depth+1, "Word "+strings.Join(parts, " "))
	}
}

// WordJSON is a word with its parts as literal strings; absent parts are omitted.
type WordJSON struct {
	Head string `json:"head,omitempty"`
	Body string `json:"body,omitempty"`
	Tail string `json:"tail,omitempty"`
}

type ParagraphJSON struct {
	Comments  []string     `json:"comments"`
	Sentences [][]WordJSON `json:"sentences"`
}

type TreeJSON struct {
	LeadingSentences [][]WordJSON    `json:"leading_sentences"`
	Paragraphs       []ParagraphJSON `json:"paragraphs"`
	TrailingComments []string        `json:"trailing_comments"`
}

// BuildTreeOutput переводит дерево в JSON-структуру без сериализации.
func BuildTreeOutput(root ast.Root) TreeJSON {
	c := root.Code
	out := TreeJSON{
		LeadingSentences: sentencesJSON(c.LeadingSentences),
		Paragraphs:       make([]ParagraphJSON, 0, len(c.Paragraphs)),
		TrailingComments: commentsJSON(c.TrailingComments),
	}
	for _, p := range c.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, ParagraphJSON{
			Comments:  commentsJSON(p.Comments),
			Sentences: sentencesJSON(p.Sentences),
		})
	}
	return out
}

// FormatTreeJSON выводит дерево в JSON формате
func FormatTreeJSON(w io.Writer, root ast.Root) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeOutput(root))
}

func sentencesJSON(ss []ast.Sentence) [][]WordJSON {
	out := make([][]WordJSON, 0, len(ss))
	for _, s := range ss {
		words := make([]WordJSON, 0, len(s))
		for _, wd := range s {
			words = append(words, WordJSON{
				Head: wd.Head.String(),
				Body: wd.Body.String(),
				Tail: wd.Tail.String(),
			})
		}
		out = append(out, words)
	}
	return out
}

func commentsJSON(cs []ast.Comment) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Text)
	}
	return out
}
