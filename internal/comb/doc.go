// Package comb is a small parser-combinator engine generic over its input.
//
// An input is any value implementing Input: an immutable view over a sequence
// of elements that can be split into a consumed prefix and a remainder. A
// Parser consumes a prefix of its input and returns the remainder together
// with its output, or an error.
//
// Errors come in two flavours. A plain *Error is recoverable: combinators such
// as Opt, Alt and Many0 catch it and try something else. An error wrapped by
// Cut is fatal and stops every enclosing combinator.
//
// Элементы сравниваются только через методы Input (Compare, Contains), поэтому
// сам движок ничего не знает о токенах или рунах.
package comb
