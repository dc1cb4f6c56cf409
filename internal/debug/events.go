package debug

// LayoutStartData describes the start of a layout pass.
type LayoutStartData struct {
	Format       string `json:"format"`
	FormatLength int    `json:"format_length"`
	BoundsX0     int    `json:"bounds_x0"`
	BoundsY0     int    `json:"bounds_y0"`
	BoundsX1     int    `json:"bounds_x1"`
	BoundsY1     int    `json:"bounds_y1"`
	LineBreaking string `json:"line_breaking"`
	PageBreaking string `json:"page_breaking"`
	CursorX      int    `json:"cursor_x"`
	CursorY      int    `json:"cursor_y"`
}

// LayoutEndData describes the outcome of a layout pass.
type LayoutEndData struct {
	Result    string `json:"result"`
	CursorX   int    `json:"cursor_x"`
	CursorY   int    `json:"cursor_y"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// ArgumentData records one placeholder translation decision.
type ArgumentData struct {
	Arg      string `json:"arg"`
	Resolved bool   `json:"resolved"`
	Op       string `json:"op,omitempty"`
}

// TextSpanData records one fitted text span reported to the sink.
type TextSpanData struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

// MarkData records a hyphen or ellipsis at a cursor position.
type MarkData struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// previewLimit caps how much text is copied into trace events.
const previewLimit = 32

// Preview returns text as a string, truncated for event payloads.
func Preview(text []byte) string {
	if len(text) <= previewLimit {
		return string(text)
	}
	return string(text[:previewLimit]) + "..."
}
