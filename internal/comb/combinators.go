package comb

// Parser consumes a prefix of I and returns the remainder and a value.
type Parser[I, O any] func(I) (I, O, error)

// Tag matches one element equal to want and returns it as a one-element view.
func Tag[E any, I Input[E, I]](want E) Parser[I, I] {
	return func(in I) (I, I, error) {
		if !in.Compare(want) {
			var zero I
			return in, zero, NewError(in, KindTag)
		}
		rest, taken := in.TakeSplit(1)
		return rest, taken, nil
	}
}

// IsA takes the longest non-empty prefix whose elements all belong to set.
func IsA[E any, I Input[E, I]](set I) Parser[I, I] {
	return func(in I) (I, I, error) {
		n, found := in.Position(func(e E) bool { return !set.Contains(e) })
		if !found {
			n = in.Len()
		}
		if n == 0 {
			var zero I
			return in, zero, NewError(in, KindIsA)
		}
		rest, taken := in.TakeSplit(n)
		return rest, taken, nil
	}
}

// Any takes a single element; it fails with KindEof on empty input.
func Any[E any, I Input[E, I]]() Parser[I, E] {
	return func(in I) (I, E, error) {
		if in.Len() == 0 {
			var zero E
			return in, zero, NewError(in, KindEof)
		}
		e := in.At(0)
		rest, _ := in.TakeSplit(1)
		return rest, e, nil
	}
}

// Eof succeeds only on empty input.
func Eof[E any, I Input[E, I]]() Parser[I, I] {
	return func(in I) (I, I, error) {
		if in.Len() != 0 {
			var zero I
			return in, zero, NewError(in, KindEof)
		}
		return in, in, nil
	}
}

// AllConsuming runs p and then requires the input to be exhausted.
func AllConsuming[E any, I Input[E, I], O any](p Parser[I, O]) Parser[I, O] {
	eof := Eof[E, I]()
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil {
			return in, out, err
		}
		if _, _, err := eof(rest); err != nil {
			var zero O
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Map transforms the output of p.
func Map[I, A, B any](p Parser[I, A], f func(A) B) Parser[I, B] {
	return func(in I) (I, B, error) {
		rest, a, err := p(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		return rest, f(a), nil
	}
}

// MapOpt transforms the output of p; f returning false fails with KindMapOpt
// at the input p started from.
func MapOpt[I, A, B any](p Parser[I, A], f func(A) (B, bool)) Parser[I, B] {
	return func(in I) (I, B, error) {
		rest, a, err := p(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		b, ok := f(a)
		if !ok {
			return in, b, NewError(in, KindMapOpt)
		}
		return rest, b, nil
	}
}

// Verify runs p and checks its output with pred.
func Verify[I, O any](p Parser[I, O], pred func(O) bool) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil {
			return in, out, err
		}
		if !pred(out) {
			var zero O
			return in, zero, NewError(in, KindVerify)
		}
		return rest, out, nil
	}
}

// Value replaces the output of p with v.
func Value[I, O, V any](v V, p Parser[I, O]) Parser[I, V] {
	return Map(p, func(O) V { return v })
}

// Opt makes p optional. On a recoverable failure it consumes nothing and
// yields the zero value of O.
func Opt[I, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero O
			if IsFatal(err) {
				return in, zero, err
			}
			return in, zero, nil
		}
		return rest, out, nil
	}
}

// Alt returns the result of the first parser that succeeds. When all fail the
// error of the last one is returned.
func Alt[I, O any](ps ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		err := NewError(in, KindAlt)
		for _, p := range ps {
			rest, out, perr := p(in)
			if perr == nil {
				return rest, out, nil
			}
			if IsFatal(perr) {
				return in, zero, perr
			}
			err = perr
		}
		return in, zero, err
	}
}

// Preceded runs first and p, keeping the output of p.
func Preceded[I, A, O any](first Parser[I, A], p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, _, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := p(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Terminated runs p and last, keeping the output of p.
func Terminated[I, O, B any](p Parser[I, O], last Parser[I, B]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = last(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Delimited runs open, p and closing, keeping the output of p.
func Delimited[I, A, O, B any](open Parser[I, A], p Parser[I, O], closing Parser[I, B]) Parser[I, O] {
	return Preceded(open, Terminated(p, closing))
}

// Pair runs a then b.
func Pair[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Tuple2[A, B]] {
	return func(in I) (I, Tuple2[A, B], error) {
		var out Tuple2[A, B]
		rest, va, err := a(in)
		if err != nil {
			return in, out, err
		}
		rest, vb, err := b(rest)
		if err != nil {
			return in, out, err
		}
		return rest, Tuple2[A, B]{A: va, B: vb}, nil
	}
}

// Tuple3 runs a, b and c in order.
func Tuple3[I, A, B, C any](a Parser[I, A], b Parser[I, B], c Parser[I, C]) Parser[I, Triple[A, B, C]] {
	return func(in I) (I, Triple[A, B, C], error) {
		var out Triple[A, B, C]
		rest, va, err := a(in)
		if err != nil {
			return in, out, err
		}
		rest, vb, err := b(rest)
		if err != nil {
			return in, out, err
		}
		rest, vc, err := c(rest)
		if err != nil {
			return in, out, err
		}
		return rest, Triple[A, B, C]{A: va, B: vb, C: vc}, nil
	}
}

type Tuple2[A, B any] struct {
	A A
	B B
}

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Cut turns recoverable failures of p into fatal ones.
func Cut[I, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil && !IsFatal(err) {
			return rest, out, &fatalError{err: err}
		}
		return rest, out, err
	}
}
