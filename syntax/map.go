package syntax

// Map adapts a unit's output through a pair of conversions. The two
// functions must be inverses of each other wherever they succeed, or
// the round-trip law breaks for the mapped unit. A conversion error on
// the parse side is wrapped with the cursor position like any other
// parse failure; on the print side it propagates unchanged.
func Map[C Cursor, A, B any](u Unit[C, A], to func(A) (B, error), from func(B) (A, error)) Unit[C, B] {
	return mapped[C, A, B]{unit: u, to: to, from: from}
}

type mapped[C Cursor, A, B any] struct {
	unit Unit[C, A]
	to   func(A) (B, error)
	from func(B) (A, error)
}

func (u mapped[C, A, B]) Parse(c C) (B, error) {
	var out B
	a, err := u.unit.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	out, err = u.to(a)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return out, nil
}

func (u mapped[C, A, B]) Print(o B, c C) error {
	a, err := u.from(o)
	if err != nil {
		return err
	}
	return u.unit.Print(a, c)
}
