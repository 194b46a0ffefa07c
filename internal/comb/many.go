package comb

// Many0 applies p until it fails. A success that consumes nothing is an error
// (KindMany), since it would loop forever. The result is nil when p never
// matched.
func Many0[E any, I Input[E, I], O any](p Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		var out []O
		cur := in
		for {
			rest, v, err := p(cur)
			if err != nil {
				if IsFatal(err) {
					return in, nil, err
				}
				return cur, out, nil
			}
			if rest.Len() == cur.Len() {
				return in, nil, NewError(cur, KindMany)
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// Many1 is Many0 that requires at least one match. The first failure of p is
// returned unchanged.
func Many1[E any, I Input[E, I], O any](p Parser[I, O]) Parser[I, []O] {
	tail := Many0[E, I, O](p)
	return func(in I) (I, []O, error) {
		rest, first, err := p(in)
		if err != nil {
			return in, nil, err
		}
		if rest.Len() == in.Len() {
			return in, nil, NewError(in, KindMany)
		}
		rest, more, err := tail(rest)
		if err != nil {
			return in, nil, err
		}
		return rest, append([]O{first}, more...), nil
	}
}
