package flowbox

// ASCII bytes with special meaning to the line fitter.
const (
	asciiLF     = 10
	asciiCR     = 13
	asciiSpace  = 32
	asciiHyphen = 45
)

func isLineSeparator(ch byte) bool {
	return ch == asciiSpace || ch == asciiLF || ch == asciiCR
}

// span describes how much of a text slice fits on the current line and how
// the cursor moves afterwards.
//
// Invariant: length+skipNextChars never exceeds the input length, and
// length == 0 only when not a single byte fits the width budget.
type span struct {
	// length is the number of bytes laid out on this line.
	length int
	// skipNextChars is the number of bytes to skip before fitting the next
	// span, e.g. the whitespace that caused the break.
	skipNextChars int
	// advance moves the cursor after this span. advance.Y > 0 means the
	// line breaks and the cursor continues at the start of the next line.
	advance Offset
	// insertHyphenBeforeLineBreak requests a hyphen right after this span
	// to indicate a word-break.
	insertHyphenBeforeLineBreak bool
}

// fitSpan finds the longest prefix of text that fits maxWidth, in a single
// forward scan. Whitespace breakpoints take priority; a hyphenation
// breakpoint recorded after the most recent whitespace remains the fallback
// if the budget runs out before more whitespace appears. LF breaks the line
// immediately; CR breaks immediately with half the regular line height, a
// soft paragraph continuation.
//
// Widths accumulate per raw byte, matching Font.TextWidth semantics.
func fitSpan(text []byte, maxWidth int, textFont, hyphenFont Font, breaking LineBreaking) span {
	hyphenWidth := hyphenFont.TextWidth([]byte{asciiHyphen})

	// The span returned in case the line has to break. It is mutated at
	// each possible breakpoint, and its initial value is returned when no
	// text fits at all: zero length, zero width, full line break.
	line := span{advance: Offset{Y: textFont.LineHeight()}}

	spanWidth := 0
	foundAnyWhitespace := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		charWidth := textFont.TextWidth([]byte{ch})

		if isLineSeparator(ch) {
			// Break before the whitespace, without a hyphen.
			line.length = i
			line.advance.X = spanWidth
			line.insertHyphenBeforeLineBreak = false
			line.skipNextChars = 1
			if ch == asciiCR {
				line.advance.Y = textFont.LineHeight() / 2
			}
			if ch == asciiLF || ch == asciiCR {
				// Hard end of line.
				return line
			}
			foundAnyWhitespace = true
		} else if spanWidth+charWidth > maxWidth {
			// Width budget exceeded, take the last breakpoint.
			return line
		} else {
			haveSpaceForBreak := spanWidth+charWidth+hyphenWidth <= maxWidth
			canBreakWord := breaking == BreakWordsAndInsertHyphen || !foundAnyWhitespace
			if haveSpaceForBreak && canBreakWord {
				// Break after this character, appending a hyphen.
				line.length = i + 1
				line.advance.X = spanWidth + charWidth
				line.insertHyphenBeforeLineBreak = true
				line.skipNextChars = 0
			}
		}

		spanWidth += charWidth
	}

	// The whole text fits.
	return span{
		length:  len(text),
		advance: Offset{X: spanWidth},
	}
}
