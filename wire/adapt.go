package wire

import (
	"github.com/dhamidi/janus/syntax"
	"github.com/dhamidi/janus/text"
)

// FromText adapts a text unit so it can run inside a byte-cursor
// composition: the remaining bytes are viewed as a string, the inner
// unit consumes a prefix of that view, and the byte cursor advances by
// exactly the bytes the view consumed. Printing renders through the
// inner unit into a fresh text cursor and inserts the fragment here.
func FromText[O any](inner syntax.Unit[*text.Cursor, O]) syntax.Unit[*Cursor, O] {
	return fromText[O]{inner: inner}
}

type fromText[O any] struct {
	inner syntax.Unit[*text.Cursor, O]
}

func (u fromText[O]) Parse(c *Cursor) (O, error) {
	view := text.New(string(c.Rest()))
	out, err := u.inner.Parse(view)
	if err != nil {
		return out, err
	}
	if _, err := c.Take(view.Pos().Offset); err != nil {
		return out, err
	}
	return out, nil
}

func (u fromText[O]) Print(o O, c *Cursor) error {
	view := text.New("")
	if err := u.inner.Print(o, view); err != nil {
		return err
	}
	c.InsertFragment([]byte(view.Rest()))
	return nil
}
