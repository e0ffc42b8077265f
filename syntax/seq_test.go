package syntax_test

import (
	"strings"
	"testing"

	"github.com/dhamidi/janus/syntax"
	"github.com/dhamidi/janus/text"
)

func TestThen(t *testing.T) {
	unit := syntax.Then(text.Uint(), text.Fixed(2))

	t.Run("parse merges both outputs", func(t *testing.T) {
		cur := text.New("42ab!")
		got, err := unit.Parse(cur)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got.V1 != 42 || got.V2 != "ab" {
			t.Errorf("Parse = (%d, %q), want (42, \"ab\")", got.V1, got.V2)
		}
		if cur.Rest() != "!" {
			t.Errorf("Rest = %q, want %q", cur.Rest(), "!")
		}
	})

	t.Run("print rebuilds the consumed fragment", func(t *testing.T) {
		out := text.New("")
		err := unit.Print(syntax.Tuple2[uint64, string]{V1: 42, V2: "ab"}, out)
		if err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if out.Rest() != "42ab" {
			t.Errorf("printed %q, want %q", out.Rest(), "42ab")
		}
	})

	t.Run("failure in first aborts before second", func(t *testing.T) {
		cur := text.New("xyab")
		if _, err := unit.Parse(cur); err == nil {
			t.Fatal("expected failure on non-digit input")
		}
	})
}

// Position accuracy: when the first unit consumes k bytes and the
// second fails, the reported position is after the first unit's
// consumption, not the chain's start.
func TestThenFailurePosition(t *testing.T) {
	unit := syntax.Then(text.Uint(), text.Literal("!"))

	cur := text.New("123?")
	_, err := unit.Parse(cur)
	if err == nil {
		t.Fatal("expected failure")
	}

	positions := syntax.Positions(err)
	if len(positions) == 0 {
		t.Fatal("failure carries no positions")
	}
	if positions[0].Offset != 3 {
		t.Errorf("failure at %v, want offset 3", positions[0])
	}
	if msg := syntax.Innermost(err).Error(); !strings.Contains(msg, `"!"`) {
		t.Errorf("innermost failure %q does not name the expected literal", msg)
	}
}

// Each composition boundary the failure crosses adds one position to
// the chain, all carrying the cursor position at failure time.
func TestNestedFailurePositions(t *testing.T) {
	dot := text.Literal(".")
	unit := syntax.Seq3(
		text.Uint(),
		syntax.SkipFirst(dot, text.Uint()),
		syntax.SkipFirst(dot, text.Uint()),
	)

	cur := text.New("1.2-3")
	_, err := unit.Parse(cur)
	if err == nil {
		t.Fatal("expected failure at the dash")
	}

	positions := syntax.Positions(err)
	if len(positions) < 2 {
		t.Fatalf("Positions = %v, want at least two boundaries", positions)
	}
	for i, p := range positions {
		if p.Offset != 3 {
			t.Errorf("Positions[%d] = %v, want offset 3", i, p)
		}
	}
}

func TestThenRoundTrip(t *testing.T) {
	unit := syntax.Then(
		syntax.SkipSecond(text.Uint(), text.Literal(",")),
		text.Uint(),
	)

	input := "17,4rest"
	cur := text.New(input)
	got, err := unit.Parse(cur)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	consumed := input[:cur.Pos().Offset]

	out := text.New("")
	if err := unit.Print(got, out); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if out.Rest() != consumed {
		t.Errorf("printed %q, want the consumed fragment %q", out.Rest(), consumed)
	}

	back, err := unit.Parse(text.New(out.Rest()))
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if back != got {
		t.Errorf("re-parse = %v, want %v", back, got)
	}
}
