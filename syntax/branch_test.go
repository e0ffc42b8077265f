package syntax_test

import (
	"testing"

	"github.com/dhamidi/janus/syntax"
	"github.com/dhamidi/janus/text"
)

// probe consumes one byte and records every call, so tests can see
// which side of a Branch actually ran.
type probe struct {
	id    string
	calls *[]string
}

func (p probe) Parse(c *text.Cursor) (string, error) {
	*p.calls = append(*p.calls, "parse "+p.id)
	return c.Take(1)
}

func (p probe) Print(s string, c *text.Cursor) error {
	*p.calls = append(*p.calls, "print "+p.id)
	c.InsertFragment(s)
	return nil
}

// The active side is fixed at construction; the other side never runs,
// even though it would have matched the same input.
func TestBranchFixedDispatch(t *testing.T) {
	var calls []string
	a := probe{id: "a", calls: &calls}
	b := probe{id: "b", calls: &calls}

	t.Run("first", func(t *testing.T) {
		calls = nil
		unit := syntax.Branch[*text.Cursor, string](syntax.First, a, b)

		got, err := unit.Parse(text.New("x"))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got != "x" {
			t.Errorf("Parse = %q, want %q", got, "x")
		}
		if err := unit.Print("x", text.New("")); err != nil {
			t.Fatalf("Print failed: %v", err)
		}

		want := []string{"parse a", "print a"}
		if len(calls) != 2 || calls[0] != want[0] || calls[1] != want[1] {
			t.Errorf("calls = %v, want %v", calls, want)
		}
	})

	t.Run("second", func(t *testing.T) {
		calls = nil
		unit := syntax.Branch[*text.Cursor, string](syntax.Second, a, b)

		if _, err := unit.Parse(text.New("x")); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(calls) != 1 || calls[0] != "parse b" {
			t.Errorf("calls = %v, want [parse b]", calls)
		}
	})

	t.Run("invalid side is rejected at construction", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for invalid side")
			}
		}()
		syntax.Branch[*text.Cursor, string](syntax.Side(7), a, b)
	})
}

func TestMaybe(t *testing.T) {
	t.Run("absent leaves the cursor alone", func(t *testing.T) {
		unit := syntax.Maybe(text.Uint(), false)

		cur := text.New("42")
		got, err := unit.Parse(cur)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got != 0 {
			t.Errorf("Parse = %d, want zero output", got)
		}
		if cur.Pos().Offset != 0 || cur.Rest() != "42" {
			t.Errorf("cursor moved: pos %v, rest %q", cur.Pos(), cur.Rest())
		}

		out := text.New("")
		if err := unit.Print(0, out); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if out.Rest() != "" {
			t.Errorf("absent print wrote %q", out.Rest())
		}
	})

	t.Run("present delegates", func(t *testing.T) {
		unit := syntax.Maybe(text.Uint(), true)

		got, err := unit.Parse(text.New("42"))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got != 42 {
			t.Errorf("Parse = %d, want 42", got)
		}

		out := text.New("")
		if err := unit.Print(42, out); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if out.Rest() != "42" {
			t.Errorf("printed %q, want %q", out.Rest(), "42")
		}
	})

	t.Run("present propagates failure", func(t *testing.T) {
		unit := syntax.Maybe(text.Uint(), true)
		if _, err := unit.Parse(text.New("x")); err == nil {
			t.Fatal("expected failure on non-digit input")
		}
	})

	t.Run("void optional separator", func(t *testing.T) {
		unit := syntax.SkipSecond(text.Uint(), syntax.Maybe(text.Literal(";"), false))

		got, err := unit.Parse(text.New("7"))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got != 7 {
			t.Errorf("Parse = %d, want 7", got)
		}

		out := text.New("")
		if err := unit.Print(7, out); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if out.Rest() != "7" {
			t.Errorf("printed %q, want %q", out.Rest(), "7")
		}
	})
}
