package flowbox

// LayoutResult is the terminal outcome of one layout pass.
type LayoutResult uint8

const (
	// Fitting means the whole operation stream was laid out inside the
	// bounds.
	Fitting LayoutResult = iota
	// OutOfBounds means the vertical extent of the bounds was exceeded
	// before the operation stream was exhausted.
	OutOfBounds
)

// String returns a human-readable name for the result.
func (r LayoutResult) String() string {
	switch r {
	case Fitting:
		return "Fitting"
	case OutOfBounds:
		return "OutOfBounds"
	}
	return "LayoutResult(?)"
}

// LayoutOps folds the operation stream through the layout driver, reporting
// every decision to sink, and stops at the first OutOfBounds. Remaining
// operations are then left unconsumed on the stream.
//
// The style is taken by value: SetColor and SetFont operations mutate only
// this call's copy, so the caller's Style is untouched. The cursor is
// caller-owned and mutated in place; it persists across operations, which
// is what lets inline style changes continue mid-line.
func (st Style) LayoutOps(ops *OpStream, cursor *Point, sink Sink) LayoutResult {
	for {
		op, ok := ops.Next()
		if !ok {
			return Fitting
		}
		switch op.Kind {
		case OpSetColor:
			st.TextColor = op.Color
		case OpSetFont:
			st.TextFont = op.Font
		case OpText:
			if st.LayoutText(op.Text, cursor, sink) == OutOfBounds {
				return OutOfBounds
			}
		}
	}
}

// LayoutText lays a single text slice into the bounds, fitting line after
// line and reporting each to sink. The cursor is advanced in place.
func (st *Style) LayoutText(text []byte, cursor *Point, sink Sink) LayoutResult {
	remaining := text

	for len(remaining) > 0 {
		sp := fitSpan(remaining, st.Bounds.X1-cursor.X, st.TextFont, st.HyphenFont, st.LineBreaking)

		// Report the fitted slice at the cursor position.
		sink.Text(*cursor, st, remaining[:sp.length])

		// Continue with the rest of the text.
		remaining = remaining[sp.length+sp.skipNextChars:]

		// Advance the cursor horizontally.
		cursor.X += sp.advance.X

		if sp.advance.Y > 0 {
			// We're advancing to the next line.
			if sp.insertHyphenBeforeLineBreak {
				sink.Hyphen(*cursor, st)
			}

			// Check the amount of vertical space left.
			if cursor.Y+sp.advance.Y > st.Bounds.Y1 {
				if len(remaining) > 0 {
					// Signal that more content is available, unless a
					// hyphen was just drawn.
					if st.PageBreaking == CutAndInsertEllipsis && !sp.insertHyphenBeforeLineBreak {
						sink.Ellipsis(*cursor, st)
					}
					// Known gap: when the overflowing line exactly consumed
					// this text slice but further text operations follow,
					// remaining is empty here and no ellipsis is drawn even
					// though content continues.
				}

				sink.OutOfBounds()
				return OutOfBounds
			}

			// Move the cursor to the beginning of the next line.
			cursor.X = st.Bounds.X0
			cursor.Y += sp.advance.Y
		}
	}

	return Fitting
}
