package tcelldraw

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pressline/flowbox"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func TestDisplayDrawText(t *testing.T) {
	screen := newSimScreen(t)
	display := New(screen)

	red := flowbox.Color{R: 255}
	display.DrawText(flowbox.Point{X: 3, Y: 1}, []byte("hi"), CellFont{}, red, flowbox.Color{})

	ch, _, style, _ := screen.GetContent(3, 1)
	if ch != 'h' {
		t.Errorf("cell (3,1) = %q, want 'h'", ch)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("cell (3,1) fg = %v, want red", fg)
	}

	if ch, _, _, _ := screen.GetContent(4, 1); ch != 'i' {
		t.Errorf("cell (4,1) = %q, want 'i'", ch)
	}
}

func TestRenderFormatOntoScreen(t *testing.T) {
	screen := newSimScreen(t)

	font := CellFont{}
	style := flowbox.NewStyle(flowbox.Rect{X1: 11, Y1: 5}, font,
		flowbox.Color{R: 255, G: 255, B: 255}, flowbox.Color{})

	result := flowbox.RenderFormat("hello world again", nil, style, New(screen))
	if result != flowbox.Fitting {
		t.Fatalf("result = %v, want Fitting", result)
	}

	for i, want := range "hello world" {
		if ch, _, _, _ := screen.GetContent(i, 0); ch != want {
			t.Errorf("cell (%d,0) = %q, want %q", i, ch, want)
		}
	}
	for i, want := range "again" {
		if ch, _, _, _ := screen.GetContent(i, 1); ch != want {
			t.Errorf("cell (%d,1) = %q, want %q", i, ch, want)
		}
	}
}

func TestCellFont(t *testing.T) {
	font := CellFont{}

	if got := font.TextWidth([]byte("abc")); got != 3 {
		t.Errorf("TextWidth = %d, want 3", got)
	}
	if got := font.LineHeight(); got != 1 {
		t.Errorf("LineHeight = %d, want 1", got)
	}
}
