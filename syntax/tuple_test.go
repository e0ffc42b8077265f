package syntax_test

import (
	"testing"

	"github.com/dhamidi/janus/syntax"
	"github.com/dhamidi/janus/text"
)

// num is a dot-prefixed decimal element for chains past the first.
func num() syntax.Unit[*text.Cursor, uint64] {
	return syntax.SkipFirst(text.Literal("."), text.Uint())
}

func TestTwelveElements(t *testing.T) {
	unit := syntax.Seq12(
		text.Uint(),
		num(), num(), num(), num(), num(),
		num(), num(), num(), num(), num(), num(),
	)

	input := "1.2.3.4.5.6.7.8.9.10.11.12"
	cur := text.New(input)
	got, err := unit.Parse(cur)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cur.Rest() != "" {
		t.Errorf("unconsumed input %q", cur.Rest())
	}

	want := [12]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	values := [12]uint64{
		got.V1, got.V2, got.V3, got.V4, got.V5, got.V6,
		got.V7, got.V8, got.V9, got.V10, got.V11, got.V12,
	}
	if values != want {
		t.Errorf("Parse = %v, want %v", values, want)
	}

	t.Run("round trip", func(t *testing.T) {
		out := text.New("")
		if err := unit.Print(got, out); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if out.Rest() != input {
			t.Errorf("printed %q, want %q", out.Rest(), input)
		}
	})
}

func TestPrintElevenElements(t *testing.T) {
	el := func() syntax.Unit[*text.Cursor, uint64] {
		return syntax.SkipSecond(text.Uint(), text.Literal("."))
	}
	unit := syntax.Seq11(
		el(), el(), el(), el(), el(), el(),
		el(), el(), el(), el(), el(),
	)

	twos := syntax.Tuple11[uint64, uint64, uint64, uint64, uint64, uint64, uint64, uint64, uint64, uint64, uint64]{
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	}
	out := text.New("")
	if err := unit.Print(twos, out); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	want := "2.2.2.2.2.2.2.2.2.2.2."
	if out.Rest() != want {
		t.Errorf("printed %q, want %q", out.Rest(), want)
	}
}

// Arity counts non-void leaves only, however many skip combinators
// were folded in along the way.
func TestFlatTupleStaysFlat(t *testing.T) {
	unit := syntax.Seq3(
		syntax.SkipSecond(text.Uint(), text.Literal(":")),
		syntax.SkipFirst(text.Literal(" "), text.Fixed(3)),
		syntax.SkipFirst(text.Literal(" "), text.Uint()),
	)

	cur := text.New("8: abc 9")
	got, err := unit.Parse(cur)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.V1 != 8 || got.V2 != "abc" || got.V3 != 9 {
		t.Errorf("Parse = (%d, %q, %d), want (8, \"abc\", 9)", got.V1, got.V2, got.V3)
	}

	out := text.New("")
	if err := unit.Print(got, out); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if out.Rest() != "8: abc 9" {
		t.Errorf("printed %q, want %q", out.Rest(), "8: abc 9")
	}
}

func TestMaxArity(t *testing.T) {
	if syntax.MaxArity != 12 {
		t.Errorf("MaxArity = %d, want 12", syntax.MaxArity)
	}
}
