package syntax

import "fmt"

// Pos identifies a cursor position. It is comparable and only used for
// diagnostics; the zero value is the start of the input.
type Pos struct {
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d", p.Offset)
}

// Cursor is the capability the combinators need from a cursor kind.
// Concrete cursors (text.Cursor, wire.Cursor) additionally provide
// consumption on the parse side and insert-at-leading-edge fragment
// writes on the print side; the combinators themselves only ever ask
// for the current position.
type Cursor interface {
	Pos() Pos
}

// Void is the output type of units whose grammatical role carries no
// value, such as a literal separator. SkipFirst and SkipSecond require
// the dropped side to produce exactly Void, so a value-producing unit
// can never be discarded by accident.
type Void struct{}

// Unit is a parser/printer pair over cursor kind C producing output O.
//
// Parse consumes a prefix of c and returns the output, or an error
// without any guarantee about how much of c was consumed before the
// failure. Print writes o into c such that parsing the written
// fragment reproduces o exactly.
//
// Implementations must not retain or mutate state across calls.
type Unit[C Cursor, O any] interface {
	Parse(c C) (O, error)
	Print(o O, c C) error
}
