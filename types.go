package flowbox

// Point is a position on the display.
type Point struct {
	X, Y int
}

// Offset is a relative movement of a Point.
type Offset struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. X0,Y0 is the top-left corner, X1,Y1
// the bottom-right corner (exclusive).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// NewRect returns a rectangle with the given top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// TopLeft returns the top-left corner of the rectangle.
func (r Rect) TopLeft() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Color is an RGB triple. The engine never interprets colors, it only
// carries them from SetColor operations to the sink.
type Color struct {
	R, G, B uint8
}

// Font provides the glyph metrics the layout engine needs. Implementations
// must be pure: the same input always yields the same width.
//
// Widths are measured per raw byte, not per Unicode codepoint. Multi-byte
// encoded characters are measured and potentially split byte-by-byte, so
// fonts backing non-ASCII text must account for that themselves.
type Font interface {
	// TextWidth returns the rendered width of text in display units.
	TextWidth(text []byte) int
	// LineHeight returns the vertical advance of a full line break.
	LineHeight() int
}

// Display is the drawing primitive the engine renders through. DrawText is
// assumed synchronous and always succeeding.
type Display interface {
	DrawText(at Point, text []byte, font Font, fg, bg Color)
}
