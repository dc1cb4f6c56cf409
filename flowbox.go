// Package flowbox lays out a formatted byte string inside a fixed
// rectangular region on a constrained display. It performs greedy
// word-wrapping, optional hyphenation, and page-overflow signaling, and
// supports inline color and font changes through {argument} placeholders
// in the format string.
//
// The pipeline is: format string → Tokenizer → operation stream → layout
// driver → Sink. Pixel drawing and font metrics stay outside the engine,
// supplied through the Display and Font interfaces; see the tcelldraw
// subpackage for a terminal-backed implementation.
//
// The engine is single-threaded and synchronous. One layout call processes
// one page: on OutOfBounds the operation stream stops where it stopped, and
// pagination is the caller's business.
package flowbox

import (
	"time"

	"github.com/pressline/flowbox/internal/debug"
)

// Option configures the top-level layout entry points.
type Option func(*options)

type options struct {
	debug *debug.Session
}

func defaultOptions() *options {
	return &options{}
}

// WithDebug attaches a debug session to a layout pass. The session must be
// a *debug.Session from this module's internal debug package; other values
// are ignored. Outside the module, tracing is enabled through the
// FLOWBOX_DEBUG environment variable and the cmd/flowbox flags.
func WithDebug(session any) Option {
	return func(o *options) {
		if s, ok := session.(*debug.Session); ok {
			o.debug = s
		}
	}
}

// RenderFormat tokenizes format, translates placeholders through resolve,
// and draws the laid-out text onto display, starting at the top-left
// corner of the style's bounds.
func RenderFormat(format string, resolve Resolver, style Style, display Display, opts ...Option) LayoutResult {
	cursor := style.Bounds.TopLeft()
	return LayoutFormat(format, resolve, style, &cursor, DrawSink{Display: display}, opts...)
}

// MeasureFormat computes the layout without drawing anything and reports
// the final cursor position together with the result. Use it to size text
// before committing pixels.
func MeasureFormat(format string, resolve Resolver, style Style, opts ...Option) (Point, LayoutResult) {
	cursor := style.Bounds.TopLeft()
	result := LayoutFormat(format, resolve, style, &cursor, NoopSink{}, opts...)
	return cursor, result
}

// LayoutFormat runs the full pipeline into an arbitrary sink. The cursor
// is mutated in place, so a caller can chain several formats through the
// same writing position.
func LayoutFormat(format string, resolve Resolver, style Style, cursor *Point, sink Sink, opts ...Option) LayoutResult {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	session := o.debug
	var start time.Time
	if session != nil {
		start = time.Now()
		session.Emit("layout", "Start", debug.LayoutStartData{
			FormatLength: len(format),
			Format:       debug.Preview([]byte(format)),
			BoundsX0:     style.Bounds.X0,
			BoundsY0:     style.Bounds.Y0,
			BoundsX1:     style.Bounds.X1,
			BoundsY1:     style.Bounds.Y1,
			LineBreaking: style.LineBreaking.String(),
			PageBreaking: style.PageBreaking.String(),
			CursorX:      cursor.X,
			CursorY:      cursor.Y,
		})
		sink = traceSink{next: sink, session: session}
		resolve = traceResolver(resolve, session)
	}

	ops := NewTokenizer([]byte(format)).Ops(resolve)
	result := style.LayoutOps(ops, cursor, sink)

	if session != nil {
		session.Emit("layout", "End", debug.LayoutEndData{
			Result:    result.String(),
			CursorX:   cursor.X,
			CursorY:   cursor.Y,
			ElapsedMs: time.Since(start).Milliseconds(),
		})
	}
	return result
}
