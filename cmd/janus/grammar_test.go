package main

import (
	"testing"

	"github.com/dhamidi/janus/text"
)

func TestChain(t *testing.T) {
	t.Run("dotted", func(t *testing.T) {
		sep, err := separator("dot")
		if err != nil {
			t.Fatalf("separator failed: %v", err)
		}
		unit, err := chain(4, sep)
		if err != nil {
			t.Fatalf("chain failed: %v", err)
		}

		got, err := unit.Parse(text.New("10.0.3.7"))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		want := []uint64{10, 0, 3, 7}
		if len(got) != len(want) {
			t.Fatalf("Parse = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Parse[%d] = %d, want %d", i, got[i], want[i])
			}
		}

		out := text.New("")
		if err := unit.Print(got, out); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if out.Rest() != "10.0.3.7" {
			t.Errorf("printed %q, want %q", out.Rest(), "10.0.3.7")
		}
	})

	t.Run("dashed input fails under the dot branch", func(t *testing.T) {
		sep, _ := separator("dot")
		unit, _ := chain(2, sep)
		if _, err := unit.Parse(text.New("1-2")); err == nil {
			t.Fatal("expected failure: the dash side is not active")
		}
	})

	t.Run("dash", func(t *testing.T) {
		sep, _ := separator("dash")
		unit, _ := chain(3, sep)
		got, err := unit.Parse(text.New("2026-8-23"))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got[0] != 2026 || got[1] != 8 || got[2] != 23 {
			t.Errorf("Parse = %v", got)
		}
	})

	t.Run("arity bounds", func(t *testing.T) {
		sep, _ := separator("dot")
		if _, err := chain(0, sep); err == nil {
			t.Error("expected failure for arity 0")
		}
		if _, err := chain(13, sep); err == nil {
			t.Error("expected failure past the maximum arity")
		}
	})

	t.Run("unknown separator style", func(t *testing.T) {
		if _, err := separator("comma"); err == nil {
			t.Error("expected failure for unknown style")
		}
	})
}
