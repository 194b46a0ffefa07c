package comb

import "iter"

// Input is a splittable sequence of elements E. I is the concrete view type,
// so Take and TakeSplit stay within it.
type Input[E any, I any] interface {
	// Len returns the number of remaining elements.
	Len() int
	// At returns element i; i must be below Len.
	At(i int) E
	// All iterates over the elements with their index.
	All() iter.Seq2[int, E]
	// Position returns the index of the first element matching pred.
	Position(pred func(E) bool) (int, bool)
	// Compare reports whether the input starts with want.
	Compare(want E) bool
	// Contains reports whether e occurs anywhere in the input.
	Contains(e E) bool
	// Take returns the first n elements.
	Take(n int) I
	// TakeSplit splits at n: taken holds the first n elements, rest the others.
	TakeSplit(n int) (rest, taken I)
}
