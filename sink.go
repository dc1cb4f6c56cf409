package flowbox

// Sink receives layout decisions without deciding line breaks itself. It
// decouples where to break from what to do about it: the same driver feeds
// a drawing sink or a measurement-only sink.
//
// Embed NoopSink to override only the callbacks you need.
type Sink interface {
	// Text reports a fitted text span at the cursor position. The slice is
	// a view into the operation's text and must not be retained.
	Text(cursor Point, style *Style, text []byte)
	// Hyphen reports a word-break hyphen at the cursor position.
	Hyphen(cursor Point, style *Style)
	// Ellipsis reports a continuation ellipsis at the cursor position.
	Ellipsis(cursor Point, style *Style)
	// OutOfBounds reports that layout stopped at the bottom edge.
	OutOfBounds()
}

// NoopSink ignores every callback. Use it to compute layout without
// drawing, or embed it as a default implementation.
type NoopSink struct{}

func (NoopSink) Text(Point, *Style, []byte) {}
func (NoopSink) Hyphen(Point, *Style)       {}
func (NoopSink) Ellipsis(Point, *Style)     {}
func (NoopSink) OutOfBounds()               {}

// DrawSink renders every layout decision onto a Display, using the style's
// current colors and fonts for each role.
type DrawSink struct {
	Display Display
}

func (s DrawSink) Text(cursor Point, style *Style, text []byte) {
	s.Display.DrawText(cursor, text, style.TextFont, style.TextColor, style.BackgroundColor)
}

func (s DrawSink) Hyphen(cursor Point, style *Style) {
	s.Display.DrawText(cursor, []byte("-"), style.HyphenFont, style.HyphenColor, style.BackgroundColor)
}

func (s DrawSink) Ellipsis(cursor Point, style *Style) {
	s.Display.DrawText(cursor, []byte("..."), style.EllipsisFont, style.EllipsisColor, style.BackgroundColor)
}

func (DrawSink) OutOfBounds() {}
