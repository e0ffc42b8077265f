package syntax

// Side selects which variant of a Branch is active.
type Side int

const (
	First Side = iota
	Second
)

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "invalid"
	}
}

// Branch dispatches to one of two units, chosen once at construction.
// This is not alternation: the inactive side is never tried, not even
// when it would have matched and the active side fails. It models a
// branch decided while the parser graph is built, such as a feature
// flag or dialect switch.
//
// Branch panics when side is neither First nor Second; the variant is
// part of the unit's construction and an invalid one must be rejected
// before any parse or print call.
func Branch[C Cursor, O any](side Side, first, second Unit[C, O]) Unit[C, O] {
	if side != First && side != Second {
		panic("syntax: Branch side must be First or Second")
	}
	return branch[C, O]{side: side, first: first, second: second}
}

type branch[C Cursor, O any] struct {
	side   Side
	first  Unit[C, O]
	second Unit[C, O]
}

func (u branch[C, O]) active() Unit[C, O] {
	if u.side == First {
		return u.first
	}
	return u.second
}

func (u branch[C, O]) Parse(c C) (O, error) {
	out, err := u.active().Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return out, nil
}

func (u branch[C, O]) Print(o O, c C) error {
	return u.active().Print(o, c)
}

// Maybe wraps a unit with a presence decided at construction. Built
// absent, Parse returns the zero output without touching the cursor
// and Print writes nothing; built present, both calls delegate. For a
// structurally void optional (say an optional trailing separator),
// wrap a Unit[C, Void]: its zero value is Void itself.
func Maybe[C Cursor, O any](u Unit[C, O], present bool) Unit[C, O] {
	return maybe[C, O]{unit: u, present: present}
}

type maybe[C Cursor, O any] struct {
	unit    Unit[C, O]
	present bool
}

func (u maybe[C, O]) Parse(c C) (O, error) {
	var out O
	if !u.present {
		return out, nil
	}
	out, err := u.unit.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return out, nil
}

func (u maybe[C, O]) Print(o O, c C) error {
	if !u.present {
		return nil
	}
	return u.unit.Print(o, c)
}
