// Package parser recovers the syntax tree from a token sequence.
//
// Грамматика:
//
//	Root      := Code end-of-input | NewLine end-of-input
//	Code      := Sentence* Paragraph* Comment*
//	Paragraph := Comment+ Sentence+
//	Sentence  := Word+
//	Word      := Head? Body? Tail?   (хотя бы одна часть)
//	Head      := (Inc|Dec|Debug)+
//	Body      := (Out|In|JumpRight|JumpLeft)+
//	Tail      := (Right|Left)+
//
// Every sentence and every comment may carry one NewLine before and one after
// it; those are consumed and dropped. Anything else left over is a single
// terminal *Error. There is no recovery.
package parser
