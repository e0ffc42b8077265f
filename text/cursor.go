// Package text provides the character-sequence cursor and elementary
// text units consumed by the syntax combinators.
package text

import (
	"fmt"
	"strings"

	"github.com/dhamidi/janus/syntax"
)

// Cursor is a mutable position in a string. Parsing consumes bytes
// from the front and advances the offset; printing inserts fragments
// at the front of a fresh cursor, so the most recently printed
// fragment is the first to be parsed back.
//
// A Cursor must not be shared between concurrent calls.
type Cursor struct {
	rest string
	off  int
}

// New returns a cursor positioned at the start of input. For printing,
// start from New("") and read the result with Rest.
func New(input string) *Cursor {
	return &Cursor{rest: input}
}

// Pos returns the number of bytes consumed so far. Positions on a
// print-side cursor stay at zero; there is no remaining input to point
// into.
func (c *Cursor) Pos() syntax.Pos {
	return syntax.Pos{Offset: c.off}
}

// Rest returns the unconsumed input, or the built fragment on the
// print side.
func (c *Cursor) Rest() string {
	return c.rest
}

// Take consumes and returns the next n bytes.
func (c *Cursor) Take(n int) (string, error) {
	if n > len(c.rest) {
		return "", fmt.Errorf("need %d bytes, have %d", n, len(c.rest))
	}
	s := c.rest[:n]
	c.rest = c.rest[n:]
	c.off += n
	return s, nil
}

// Skip consumes prefix and reports whether it was present. The cursor
// is unchanged when it was not.
func (c *Cursor) Skip(prefix string) bool {
	if !strings.HasPrefix(c.rest, prefix) {
		return false
	}
	c.rest = c.rest[len(prefix):]
	c.off += len(prefix)
	return true
}

// InsertFragment writes s at the leading edge of the cursor. Printing
// a composition therefore runs right to left: each unit prepends its
// fragment in front of everything printed after it, leaving the final
// bytes in parse order.
func (c *Cursor) InsertFragment(s string) {
	c.rest = s + c.rest
}
