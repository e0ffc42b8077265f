package text

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dhamidi/janus/syntax"
)

// Literal returns a Void unit that consumes exactly s when parsing and
// emits s when printing. It is the usual separator and keyword leaf
// behind SkipFirst/SkipSecond.
func Literal(s string) syntax.Unit[*Cursor, syntax.Void] {
	return literal(s)
}

type literal string

func (l literal) Parse(c *Cursor) (syntax.Void, error) {
	if !c.Skip(string(l)) {
		return syntax.Void{}, fmt.Errorf("expected %q", string(l))
	}
	return syntax.Void{}, nil
}

func (l literal) Print(_ syntax.Void, c *Cursor) error {
	c.InsertFragment(string(l))
	return nil
}

// Uint returns a unit for canonical decimal numbers: "0" or a digit
// run with no leading zero. Leading zeros are rejected because "007"
// would parse to 7 and print back as "7", breaking the byte-exact
// round trip.
func Uint() syntax.Unit[*Cursor, uint64] {
	return uintLeaf{}
}

type uintLeaf struct{}

func (uintLeaf) Parse(c *Cursor) (uint64, error) {
	rest := c.Rest()
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, errors.New("expected digit")
	}
	if n > 1 && rest[0] == '0' {
		return 0, errors.New("leading zero in number")
	}
	v, err := strconv.ParseUint(rest[:n], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number out of range: %w", err)
	}
	if _, err := c.Take(n); err != nil {
		return 0, err
	}
	return v, nil
}

func (uintLeaf) Print(v uint64, c *Cursor) error {
	c.InsertFragment(strconv.FormatUint(v, 10))
	return nil
}

// Fixed returns a unit that consumes exactly n bytes as a string and
// prints them back verbatim. Printing a string of the wrong length
// fails: the printed fragment would not parse back to the same value.
func Fixed(n int) syntax.Unit[*Cursor, string] {
	if n < 0 {
		panic("text: Fixed length must not be negative")
	}
	return fixed(n)
}

type fixed int

func (f fixed) Parse(c *Cursor) (string, error) {
	return c.Take(int(f))
}

func (f fixed) Print(s string, c *Cursor) error {
	if len(s) != int(f) {
		return fmt.Errorf("need %d bytes, got %d", int(f), len(s))
	}
	c.InsertFragment(s)
	return nil
}
