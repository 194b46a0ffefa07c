package ast

// Paragraph is one or more comments followed by one or more sentences.
type Paragraph struct {
	Comments  []Comment
	Sentences []Sentence
}

// Code is the body of a program: bare sentences before the first comment,
// then paragraphs, then comments not followed by any sentence.
type Code struct {
	LeadingSentences []Sentence
	Paragraphs       []Paragraph
	TrailingComments []Comment
}

// Empty reports whether the program has no content at all.
func (c Code) Empty() bool {
	return len(c.LeadingSentences) == 0 && len(c.Paragraphs) == 0 && len(c.TrailingComments) == 0
}

type Root struct {
	Code Code
}
