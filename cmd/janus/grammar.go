package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/janus/syntax"
	"github.com/dhamidi/janus/text"
)

// separator returns the Void unit for the chosen separator style. The
// choice is a Branch fixed when the chain is built: with dot active,
// dashed input is a parse error even though the other side would have
// matched it.
func separator(style string) (syntax.Unit[*text.Cursor, syntax.Void], error) {
	var side syntax.Side
	switch style {
	case "dot":
		side = syntax.First
	case "dash":
		side = syntax.Second
	default:
		return nil, fmt.Errorf("unknown separator style %q (want dot or dash)", style)
	}
	return syntax.Branch(side, text.Literal("."), text.Literal("-")), nil
}

// chain builds a unit for arity separated decimal numbers. All
// elements share one output type, so each step folds the growing tuple
// into a slice via Map instead of climbing the TupleN ladder.
func chain(arity int, sep syntax.Unit[*text.Cursor, syntax.Void]) (syntax.Unit[*text.Cursor, []uint64], error) {
	if arity < 1 || arity > syntax.MaxArity {
		return nil, fmt.Errorf("arity must be between 1 and %d", syntax.MaxArity)
	}
	u := syntax.Map(text.Uint(),
		func(v uint64) ([]uint64, error) { return []uint64{v}, nil },
		func(vs []uint64) (uint64, error) {
			if len(vs) != 1 {
				return 0, fmt.Errorf("need 1 value, got %d", len(vs))
			}
			return vs[0], nil
		})
	for i := 1; i < arity; i++ {
		u = grow(u, syntax.SkipFirst(sep, text.Uint()))
	}
	return u, nil
}

// grow extends the chain by one more element, keeping the output flat.
func grow(head syntax.Unit[*text.Cursor, []uint64], next syntax.Unit[*text.Cursor, uint64]) syntax.Unit[*text.Cursor, []uint64] {
	return syntax.Map(syntax.Then(head, next),
		func(t syntax.Tuple2[[]uint64, uint64]) ([]uint64, error) {
			out := make([]uint64, 0, len(t.V1)+1)
			out = append(out, t.V1...)
			return append(out, t.V2), nil
		},
		func(vs []uint64) (syntax.Tuple2[[]uint64, uint64], error) {
			if len(vs) == 0 {
				return syntax.Tuple2[[]uint64, uint64]{}, errors.New("empty value list")
			}
			return syntax.Tuple2[[]uint64, uint64]{V1: vs[:len(vs)-1], V2: vs[len(vs)-1]}, nil
		})
}

// describeFailure turns a position-wrapped parse failure into a single
// line naming the innermost error and where it happened.
func describeFailure(err error) error {
	positions := syntax.Positions(err)
	if len(positions) == 0 {
		return err
	}
	return fmt.Errorf("%v at %s", syntax.Innermost(err), positions[len(positions)-1])
}
