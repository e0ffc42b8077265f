package syntax

// Then composes two units into one whose output is the flat pair of
// both outputs. Parsing runs a then b against the same cursor and
// fails fast: if either side fails, the failure is wrapped with the
// cursor position at that moment and returned immediately.
func Then[C Cursor, T1, T2 any](a Unit[C, T1], b Unit[C, T2]) Unit[C, Tuple2[T1, T2]] {
	return thenUnit[C, T1, T2]{a: a, b: b}
}

type thenUnit[C Cursor, T1, T2 any] struct {
	a Unit[C, T1]
	b Unit[C, T2]
}

func (u thenUnit[C, T1, T2]) Parse(c C) (Tuple2[T1, T2], error) {
	var out Tuple2[T1, T2]
	v1, err := u.a.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	v2, err := u.b.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	out.V1 = v1
	out.V2 = v2
	return out, nil
}

// Print writes b's fragment before a's. Fragments are inserted at the
// cursor's leading edge, so the reversed call order leaves them in
// parse order: a's bytes first, then b's.
func (u thenUnit[C, T1, T2]) Print(o Tuple2[T1, T2], c C) error {
	if err := u.b.Print(o.V2, c); err != nil {
		return err
	}
	return u.a.Print(o.V1, c)
}
