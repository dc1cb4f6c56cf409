package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	// Format: [timestamp] [phase/event]
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	switch d := event.Data.(type) {
	case LayoutStartData:
		s.writeLayoutStart(d)
	case LayoutEndData:
		s.writeLayoutEnd(d)
	case ArgumentData:
		s.writeArgument(d)
	case TextSpanData:
		s.writeTextSpan(d)
	case MarkData:
		s.writeMark(d)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	case nil:
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writeLayoutStart(d LayoutStartData) {
	fmt.Fprintf(s.w, "  format: %q (length: %d)\n", d.Format, d.FormatLength)
	fmt.Fprintf(s.w, "  bounds: (%d,%d)-(%d,%d)\n", d.BoundsX0, d.BoundsY0, d.BoundsX1, d.BoundsY1)
	fmt.Fprintf(s.w, "  policies: line=%s, page=%s\n", d.LineBreaking, d.PageBreaking)
	fmt.Fprintf(s.w, "  cursor: (%d,%d)\n", d.CursorX, d.CursorY)
}

func (s *PrettySink) writeLayoutEnd(d LayoutEndData) {
	fmt.Fprintf(s.w, "  result: %s, cursor: (%d,%d)\n", d.Result, d.CursorX, d.CursorY)
	fmt.Fprintf(s.w, "  elapsed_ms: %d\n", d.ElapsedMs)
}

func (s *PrettySink) writeArgument(d ArgumentData) {
	if d.Resolved {
		fmt.Fprintf(s.w, "  arg: %q → %s\n", d.Arg, d.Op)
	} else {
		fmt.Fprintf(s.w, "  arg: %q → dropped\n", d.Arg)
	}
}

func (s *PrettySink) writeTextSpan(d TextSpanData) {
	fmt.Fprintf(s.w, "  cursor: (%d,%d), length: %d\n", d.X, d.Y, d.Length)
	fmt.Fprintf(s.w, "  text: %q\n", d.Text)
}

func (s *PrettySink) writeMark(d MarkData) {
	fmt.Fprintf(s.w, "  cursor: (%d,%d)\n", d.X, d.Y)
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %v\n", k, v)
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %d\n", k, v)
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}
