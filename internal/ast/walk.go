package ast

// Visitor receives nodes in source order. Returning false from a method stops
// the walk.
type Visitor interface {
	Sentence(s Sentence) bool
	Word(w Word) bool
	Comment(c Comment) bool
}

// Walk visits every sentence, word and comment of root in source order.
func Walk(root Root, v Visitor) {
	walkCode(root.Code, v)
}

func walkCode(c Code, v Visitor) bool {
	for _, s := range c.LeadingSentences {
		if !walkSentence(s, v) {
			return false
		}
	}
	for _, p := range c.Paragraphs {
		for _, cm := range p.Comments {
			if !v.Comment(cm) {
				return false
			}
		}
		for _, s := range p.Sentences {
			if !walkSentence(s, v) {
				return false
			}
		}
	}
	for _, cm := range c.TrailingComments {
		if !v.Comment(cm) {
			return false
		}
	}
	return true
}

func walkSentence(s Sentence, v Visitor) bool {
	if !v.Sentence(s) {
		return false
	}
	for _, w := range s {
		if !v.Word(w) {
			return false
		}
	}
	return true
}
