// Package wire provides the byte-sequence cursor and elementary binary
// units consumed by the syntax combinators, including fixed-width
// big-endian integers and LEB128 varints.
package wire

import (
	"fmt"

	"github.com/dhamidi/janus/syntax"
)

// Cursor is a mutable position in a byte slice, with the same contract
// as text.Cursor: parsing consumes from the front, printing inserts at
// the front.
type Cursor struct {
	rest []byte
	off  int
}

// New returns a cursor positioned at the start of input. The cursor
// does not copy input; callers that go on mutating the slice get what
// they deserve. For printing, start from New(nil).
func New(input []byte) *Cursor {
	return &Cursor{rest: input}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() syntax.Pos {
	return syntax.Pos{Offset: c.off}
}

// Rest returns the unconsumed input, or the built fragment on the
// print side. The slice aliases cursor state; do not modify it.
func (c *Cursor) Rest() []byte {
	return c.rest
}

// Take consumes and returns the next n bytes.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n > len(c.rest) {
		return nil, fmt.Errorf("need %d bytes, have %d", n, len(c.rest))
	}
	b := c.rest[:n]
	c.rest = c.rest[n:]
	c.off += n
	return b, nil
}

// InsertFragment writes b at the leading edge of the cursor.
func (c *Cursor) InsertFragment(b []byte) {
	joined := make([]byte, 0, len(b)+len(c.rest))
	joined = append(joined, b...)
	joined = append(joined, c.rest...)
	c.rest = joined
}
