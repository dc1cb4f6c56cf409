package vdisplay

import (
	"testing"

	"github.com/pressline/flowbox"
)

func TestFixedFont(t *testing.T) {
	font := FixedFont{Advance: 2, Height: 3}

	if got := font.TextWidth([]byte("abcd")); got != 8 {
		t.Errorf("TextWidth = %d, want 8", got)
	}
	if got := font.TextWidth(nil); got != 0 {
		t.Errorf("TextWidth(nil) = %d, want 0", got)
	}
	if got := font.LineHeight(); got != 3 {
		t.Errorf("LineHeight = %d, want 3", got)
	}
}

func TestGridDrawText(t *testing.T) {
	grid := NewGrid(10, 2)
	font := FixedFont{Advance: 1, Height: 1}
	red := flowbox.Color{R: 255}

	grid.DrawText(flowbox.Point{X: 2, Y: 1}, []byte("hi"), font, red, flowbox.Color{})

	if ch, fg := grid.CellAt(2, 1); ch != 'h' || fg != red {
		t.Errorf("cell (2,1) = %q %+v, want 'h' in red", ch, fg)
	}
	if ch, fg := grid.CellAt(3, 1); ch != 'i' || fg != red {
		t.Errorf("cell (3,1) = %q %+v, want 'i' in red", ch, fg)
	}
	if ch, _ := grid.CellAt(4, 1); ch != ' ' {
		t.Errorf("cell (4,1) = %q, want blank", ch)
	}
}

func TestGridWideAdvance(t *testing.T) {
	grid := NewGrid(10, 1)
	font := FixedFont{Advance: 2, Height: 1}

	grid.DrawText(flowbox.Point{}, []byte("ab"), font, flowbox.Color{}, flowbox.Color{})

	if ch, _ := grid.CellAt(0, 0); ch != 'a' {
		t.Errorf("cell (0,0) = %q, want 'a'", ch)
	}
	if ch, _ := grid.CellAt(1, 0); ch != ' ' {
		t.Errorf("cell (1,0) = %q, want blank gap", ch)
	}
	if ch, _ := grid.CellAt(2, 0); ch != 'b' {
		t.Errorf("cell (2,0) = %q, want 'b'", ch)
	}
}

func TestGridClipsOutOfBounds(t *testing.T) {
	grid := NewGrid(4, 1)
	font := FixedFont{Advance: 1, Height: 1}

	// Runs off the right edge and off the grid entirely; must not panic.
	grid.DrawText(flowbox.Point{X: 2, Y: 0}, []byte("abcd"), font, flowbox.Color{}, flowbox.Color{})
	grid.DrawText(flowbox.Point{X: 0, Y: 5}, []byte("x"), font, flowbox.Color{}, flowbox.Color{})
	grid.DrawText(flowbox.Point{X: -2, Y: 0}, []byte("y"), font, flowbox.Color{}, flowbox.Color{})

	if got := grid.String(); got != "  ab" {
		t.Errorf("grid = %q, want %q", got, "  ab")
	}
}

func TestGridString(t *testing.T) {
	grid := NewGrid(5, 3)
	font := FixedFont{Advance: 1, Height: 1}

	grid.DrawText(flowbox.Point{}, []byte("ab"), font, flowbox.Color{}, flowbox.Color{})
	grid.DrawText(flowbox.Point{Y: 2}, []byte("c"), font, flowbox.Color{}, flowbox.Color{})

	if got, want := grid.String(), "ab\n\nc"; got != want {
		t.Errorf("grid = %q, want %q", got, want)
	}
}
