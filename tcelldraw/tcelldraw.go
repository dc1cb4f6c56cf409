// Package tcelldraw binds the flowbox layout engine to a tcell screen, so
// the engine drives a real terminal as its constrained display. Layout
// coordinates map 1:1 onto terminal cells.
package tcelldraw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/pressline/flowbox"
)

// Display draws layout decisions onto a tcell.Screen. It implements
// flowbox.Display. The caller owns the screen lifecycle: Init, Show, Fini.
type Display struct {
	screen tcell.Screen
}

// New returns a Display drawing onto screen.
func New(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

// DrawText writes each byte of text at its pen position, advancing by the
// font's per-byte width.
func (d *Display) DrawText(at flowbox.Point, text []byte, font flowbox.Font, fg, bg flowbox.Color) {
	style := tcell.StyleDefault.
		Foreground(toTcell(fg)).
		Background(toTcell(bg))

	x := at.X
	for i := 0; i < len(text); i++ {
		d.screen.SetContent(x, at.Y, rune(text[i]), nil, style)
		x += font.TextWidth(text[i : i+1])
	}
}

func toTcell(c flowbox.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellFont measures text in terminal cells: every printable byte is one
// cell wide (wide runes are out of scope for the byte-oriented engine) and
// a line is one cell tall. It implements flowbox.Font.
type CellFont struct{}

func (CellFont) TextWidth(text []byte) int {
	w := 0
	for i := 0; i < len(text); i++ {
		w += runewidth.RuneWidth(rune(text[i]))
	}
	return w
}

func (CellFont) LineHeight() int {
	return 1
}
