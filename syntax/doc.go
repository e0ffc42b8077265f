// Package syntax provides combinators for building parsers that are
// exact inverses of their own printers.
//
// # Overview
//
// A Unit describes one increment of structure: Parse consumes a prefix
// of a cursor and produces a typed output, Print writes that output
// back so that re-parsing it reproduces the output byte for byte.
// Units are composed with Then, the AppendN flatteners, SkipFirst,
// SkipSecond, Branch, Maybe and Map; every composite is itself a Unit
// and obeys the same round-trip law as its parts.
//
// # Composition
//
// Then merges two outputs into a flat Tuple2. The AppendN family keeps
// tuples flat while growing them: appending a single-value unit to a
// k-tuple unit yields a (k+1)-tuple unit, never a tuple of tuples. The
// SeqN constructors fold an ordered list of units left to right and
// are the intended entry point for building chains:
//
//	version := syntax.Seq3(
//		text.Uint(),
//		syntax.SkipFirst(text.Literal("."), text.Uint()),
//		syntax.SkipFirst(text.Literal("."), text.Uint()),
//	)
//
// The maximum flat arity is MaxArity; there is no constructor beyond
// it, so the bound is enforced at compile time.
//
// # Printing order
//
// Cursors write with insert-at-leading-edge semantics (see
// text.Cursor.InsertFragment), so a composite prints its second half
// before its first: the fragments end up in parse order. The order is
// reversed recursively through nested compositions.
//
// # Failure
//
// Parsing fails fast. There is no backtracking, no alternation search
// and no recovery: the first failure aborts the whole Parse call. Each
// composition boundary wraps the failure in a *ParseError carrying the
// cursor position at the time of failure; Positions flattens the chain
// for reporting. Print failures propagate unwrapped, since there is no
// remaining-input position to report on the write path.
//
// # Reuse
//
// Units are immutable after construction and may be shared freely
// between goroutines as long as each call uses its own cursor.
package syntax
