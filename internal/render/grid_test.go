package render

import (
	"testing"
)

func TestGridSetAndString(t *testing.T) {
	g := newGrid("abc\ndef")
	if g.height() != 2 {
		t.Fatalf("height = %d, want 2", g.height())
	}

	g.set(0, 0, 'X')
	g.setLast(1, 'Z')

	got := g.String()
	want := "Xbc\ndeZ"
	if got != want {
		t.Errorf("grid mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestGridIgnoresOutOfRange(t *testing.T) {
	g := newGrid("ab")
	g.set(-1, 0, 'X')
	g.set(5, 0, 'X')
	g.set(0, -1, 'X')
	g.set(0, 9, 'X')
	g.setLast(7, 'X')

	if got := g.String(); got != "ab" {
		t.Errorf("out-of-range writes should be ignored, got %q", got)
	}
}

func TestGridEmptyText(t *testing.T) {
	g := newGrid("")
	if g.height() != 1 {
		t.Fatalf("height = %d, want 1", g.height())
	}

	// Writes against the empty row must not panic.
	g.set(0, 0, 'X')
	g.setLast(0, 'X')

	if got := g.String(); got != "" {
		t.Errorf("empty grid should stay empty, got %q", got)
	}
}

func TestGridKeepsMultibyteRunesAddressable(t *testing.T) {
	g := newGrid("a🍂b")
	row := g.row(0)
	if len(row) != 3 {
		t.Fatalf("row length = %d, want 3 runes", len(row))
	}
	g.set(0, 1, '─')
	if got := g.String(); got != "a─b" {
		t.Errorf("rune replacement mismatch, got %q", got)
	}
}
