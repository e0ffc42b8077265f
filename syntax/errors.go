package syntax

import "fmt"

// ParseError wraps a failure with the cursor position at which a
// composing unit observed it. Boundaries nest: the outermost error
// belongs to the outermost composition, the innermost Err is the
// original leaf failure.
type ParseError struct {
	At  Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: %v", e.At, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// wrapAt tags err with the position of c at the time of failure.
func wrapAt(err error, c Cursor) error {
	return &ParseError{At: c.Pos(), Err: err}
}

// Positions returns the chain of positions recorded on err, outermost
// composition first, innermost last. It returns nil if err carries no
// position.
func Positions(err error) []Pos {
	var chain []Pos
	for err != nil {
		pe, ok := err.(*ParseError)
		if !ok {
			break
		}
		chain = append(chain, pe.At)
		err = pe.Err
	}
	return chain
}

// Innermost strips every position wrapper from err and returns the
// underlying leaf failure.
func Innermost(err error) error {
	for {
		pe, ok := err.(*ParseError)
		if !ok {
			return err
		}
		err = pe.Err
	}
}
