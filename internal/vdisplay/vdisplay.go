// Package vdisplay provides an in-memory cell-grid display and a
// fixed-advance font, so the layout engine can be exercised and rendered
// without a real terminal. The CLI uses it for stdout output and the tests
// use it for golden comparisons.
package vdisplay

import (
	"strings"

	"github.com/pressline/flowbox"
)

// FixedFont measures every byte at the same advance. Advance 1 and Height 1
// give terminal-cell semantics.
type FixedFont struct {
	// Advance is the width of every byte.
	Advance int
	// Height is the vertical advance of a line break.
	Height int
}

func (f FixedFont) TextWidth(text []byte) int {
	return f.Advance * len(text)
}

func (f FixedFont) LineHeight() int {
	return f.Height
}

type cell struct {
	ch     byte
	fg, bg flowbox.Color
	set    bool
}

// Grid is a row-major byte grid implementing flowbox.Display. Cells outside
// the grid are silently clipped.
type Grid struct {
	w, h  int
	cells []cell
}

// NewGrid returns an empty w×h grid.
func NewGrid(w, h int) *Grid {
	return &Grid{w: w, h: h, cells: make([]cell, w*h)}
}

// DrawText writes each byte of text at its pen position, advancing by the
// font's per-byte width.
func (g *Grid) DrawText(at flowbox.Point, text []byte, font flowbox.Font, fg, bg flowbox.Color) {
	x := at.X
	for i := 0; i < len(text); i++ {
		g.setCell(x, at.Y, text[i], fg, bg)
		x += font.TextWidth(text[i : i+1])
	}
}

func (g *Grid) setCell(x, y int, ch byte, fg, bg flowbox.Color) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{ch: ch, fg: fg, bg: bg, set: true}
}

// CellAt returns the byte and foreground color at x,y. Unwritten cells
// report a space and a zero color.
func (g *Grid) CellAt(x, y int) (byte, flowbox.Color) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return ' ', flowbox.Color{}
	}
	c := g.cells[y*g.w+x]
	if !c.set {
		return ' ', flowbox.Color{}
	}
	return c.ch, c.fg
}

// String renders the grid as h lines of text. Trailing blanks on each line
// are trimmed so dumps diff cleanly.
func (g *Grid) String() string {
	var b strings.Builder
	row := make([]byte, g.w)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			ch, _ := g.CellAt(x, y)
			row[x] = ch
		}
		line := strings.TrimRight(string(row), " ")
		b.WriteString(line)
		if y < g.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
