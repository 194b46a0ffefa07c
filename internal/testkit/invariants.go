package testkit

import (
	"fmt"

	"nyanfmt/internal/ast"
	"nyanfmt/internal/token"
)

// CheckTreeInvariants runs the structural checks every parsed tree must pass:
// 1) every word has at least one part
// 2) head/body/tail parts are non-empty and hold only kinds of their class
// 3) sentences are non-empty
// 4) paragraphs have at least one comment and one sentence
func CheckTreeInvariants(root ast.Root) error {
	for i, p := range root.Code.Paragraphs {
		if len(p.Comments) == 0 {
			return fmt.Errorf("paragraph %d has no comments", i)
		}
		if len(p.Sentences) == 0 {
			return fmt.Errorf("paragraph %d has no sentences", i)
		}
	}
	var c treeChecker
	ast.Walk(root, &c)
	return c.err
}

// treeChecker останавливает обход на первом нарушении.
type treeChecker struct {
	sentence int
	word     int
	err      error
}

func (c *treeChecker) Sentence(s ast.Sentence) bool {
	c.sentence++
	c.word = 0
	if len(s) == 0 {
		c.err = fmt.Errorf("sentence %d is empty", c.sentence)
	}
	return c.err == nil
}

func (c *treeChecker) Word(w ast.Word) bool {
	c.word++
	c.err = checkWord(w)
	if c.err != nil {
		c.err = fmt.Errorf("sentence %d, word %d: %w", c.sentence, c.word, c.err)
	}
	return c.err == nil
}

func (c *treeChecker) Comment(ast.Comment) bool { return true }

func checkWord(w ast.Word) error {
	if w.Empty() {
		return fmt.Errorf("empty word")
	}
	if err := checkPart(w.Head, token.ClassHead); err != nil {
		return err
	}
	if err := checkPart(w.Body, token.ClassBody); err != nil {
		return err
	}
	return checkPart(w.Tail, token.ClassTail)
}

func checkPart[P ~[]token.Kind](part P, class token.Class) error {
	if part == nil {
		return nil
	}
	if len(part) == 0 {
		return fmt.Errorf("%s part present but empty", class)
	}
	for _, k := range part {
		if k.Class() != class {
			return fmt.Errorf("%s part holds %v", class, k)
		}
	}
	return nil
}
