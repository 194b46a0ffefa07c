// Package ast holds the syntax tree of a nyanlang program.
//
// Иерархия: Root → Code → {Sentence, Paragraph, Comment}; Paragraph →
// {Comment, Sentence}; Sentence → Word → {Head, Body, Tail}. Узлы: обычные
// значения без указателей на родителей; после построения парсером не меняются.
//
// Invariants upheld by the parser (and checked by internal/testkit):
//   - a Word has at least one of Head, Body, Tail;
//   - Head, Body and Tail are non-empty and drawn from one token class;
//   - a Sentence has at least one Word;
//   - a Paragraph has at least one Comment and at least one Sentence.
package ast
