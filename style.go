package flowbox

// LineBreaking selects where lines may break.
type LineBreaking uint8

const (
	// BreakAtWhitespace breaks lines only at whitespace, if possible. Until
	// the first whitespace of a scan, mid-word hyphenation remains a valid
	// fallback so that a long leading word still breaks.
	BreakAtWhitespace LineBreaking = iota
	// BreakWordsAndInsertHyphen allows a break after any character, drawing
	// a hyphen before the line break. No smart algorithm, just byte-by-byte.
	BreakWordsAndInsertHyphen
)

// String returns a human-readable name for the policy.
func (b LineBreaking) String() string {
	switch b {
	case BreakAtWhitespace:
		return "BreakAtWhitespace"
	case BreakWordsAndInsertHyphen:
		return "BreakWordsAndInsertHyphen"
	}
	return "LineBreaking(?)"
}

// PageBreaking selects what happens when text overruns the bottom edge.
type PageBreaking uint8

const (
	// Cut stops after hitting the bottom-right edge of the bounds.
	Cut PageBreaking = iota
	// CutAndInsertEllipsis draws an ellipsis before stopping, to signal that
	// more content is available, but only if no hyphen was just drawn.
	CutAndInsertEllipsis
)

// String returns a human-readable name for the policy.
func (p PageBreaking) String() string {
	switch p {
	case Cut:
		return "Cut"
	case CutAndInsertEllipsis:
		return "CutAndInsertEllipsis"
	}
	return "PageBreaking(?)"
}

// Style holds the visual instructions for laying out a block of text.
//
// Bounds and the two breaking policies are fixed for the duration of one
// layout call. TextColor and TextFont are the current style and change as
// SetColor/SetFont operations are processed; because the layout driver
// works on its own copy of the Style, those changes never escape the call.
type Style struct {
	// Bounds restricts the layout dimensions.
	Bounds Rect

	// BackgroundColor is passed through to every draw call.
	BackgroundColor Color
	// TextColor is the current text color. Overridden by SetColor ops.
	TextColor Color
	// TextFont is the current text font. Overridden by SetFont ops.
	TextFont Font

	// LineBreaking selects the line-breaking strategy.
	LineBreaking LineBreaking
	// HyphenFont draws the word-breaking hyphen.
	HyphenFont Font
	// HyphenColor is the foreground color of the hyphen.
	HyphenColor Color

	// PageBreaking selects what to do at the end of the page.
	PageBreaking PageBreaking
	// EllipsisFont draws the continuation ellipsis.
	EllipsisFont Font
	// EllipsisColor is the foreground color of the ellipsis.
	EllipsisColor Color
}

// NewStyle returns a style rendering font in fg on bg inside bounds. The
// hyphen and ellipsis inherit the text font and color; adjust the fields
// directly for anything fancier.
func NewStyle(bounds Rect, font Font, fg, bg Color) Style {
	return Style{
		Bounds:          bounds,
		BackgroundColor: bg,
		TextColor:       fg,
		TextFont:        font,
		HyphenFont:      font,
		HyphenColor:     fg,
		EllipsisFont:    font,
		EllipsisColor:   fg,
	}
}
