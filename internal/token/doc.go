// Package token defines lexical token kinds of nyanlang.
// Invariants:
//   - Each operator kind is bound to exactly one literal rune (see Literal).
//   - Token.Text of an operator is its literal; of a comment, the text between
//     the quotes; of a NewLine, the whole collapsed run of line breaks.
//   - The Head, Body and Tail classes are disjoint; Comment and NewLine belong
//     to none of them.
//   - Horizontal whitespace is never represented as a token.
package token
