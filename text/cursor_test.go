package text

import "testing"

func TestCursor(t *testing.T) {
	t.Run("take advances", func(t *testing.T) {
		c := New("hello")
		got, err := c.Take(3)
		if err != nil {
			t.Fatalf("Take failed: %v", err)
		}
		if got != "hel" || c.Rest() != "lo" || c.Pos().Offset != 3 {
			t.Errorf("Take = %q, rest %q, pos %v", got, c.Rest(), c.Pos())
		}
	})

	t.Run("take past the end fails", func(t *testing.T) {
		c := New("ab")
		if _, err := c.Take(3); err == nil {
			t.Fatal("expected failure")
		}
	})

	t.Run("skip consumes only on match", func(t *testing.T) {
		c := New("a.b")
		if !c.Skip("a.") {
			t.Fatal("Skip should match")
		}
		if c.Skip("x") {
			t.Fatal("Skip should not match")
		}
		if c.Rest() != "b" || c.Pos().Offset != 2 {
			t.Errorf("rest %q, pos %v", c.Rest(), c.Pos())
		}
	})

	t.Run("fragments insert at the leading edge", func(t *testing.T) {
		c := New("")
		c.InsertFragment("world")
		c.InsertFragment("hello ")
		if c.Rest() != "hello world" {
			t.Errorf("Rest = %q, want %q", c.Rest(), "hello world")
		}
	})
}
