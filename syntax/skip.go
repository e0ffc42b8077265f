package syntax

// SkipFirst composes a Void-producing unit with a value-producing one
// and keeps only the value. The dropped side must produce exactly
// Void; the type system rejects anything else at construction. The
// void unit still runs on both paths: its parse must match (for
// example a literal separator) and its print still emits fixed bytes.
func SkipFirst[C Cursor, O any](void Unit[C, Void], kept Unit[C, O]) Unit[C, O] {
	return skipFirst[C, O]{void: void, kept: kept}
}

type skipFirst[C Cursor, O any] struct {
	void Unit[C, Void]
	kept Unit[C, O]
}

func (u skipFirst[C, O]) Parse(c C) (O, error) {
	var out O
	if _, err := u.void.Parse(c); err != nil {
		return out, wrapAt(err, c)
	}
	out, err := u.kept.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return out, nil
}

func (u skipFirst[C, O]) Print(o O, c C) error {
	if err := u.kept.Print(o, c); err != nil {
		return err
	}
	return u.void.Print(Void{}, c)
}

// SkipSecond is the mirror of SkipFirst: the value-producing unit
// comes first in parse order and the trailing Void producer is
// dropped.
func SkipSecond[C Cursor, O any](kept Unit[C, O], void Unit[C, Void]) Unit[C, O] {
	return skipSecond[C, O]{kept: kept, void: void}
}

type skipSecond[C Cursor, O any] struct {
	kept Unit[C, O]
	void Unit[C, Void]
}

func (u skipSecond[C, O]) Parse(c C) (O, error) {
	out, err := u.kept.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	if _, err := u.void.Parse(c); err != nil {
		return out, wrapAt(err, c)
	}
	return out, nil
}

func (u skipSecond[C, O]) Print(o O, c C) error {
	if err := u.void.Print(Void{}, c); err != nil {
		return err
	}
	return u.kept.Print(o, c)
}
