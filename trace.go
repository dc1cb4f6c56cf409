package flowbox

import (
	"github.com/pressline/flowbox/internal/debug"
)

// traceSink mirrors every layout decision into a debug session before
// forwarding it to the real sink.
type traceSink struct {
	next    Sink
	session *debug.Session
}

func (s traceSink) Text(cursor Point, style *Style, text []byte) {
	s.session.Emit("sink", "Text", debug.TextSpanData{
		X:      cursor.X,
		Y:      cursor.Y,
		Length: len(text),
		Text:   debug.Preview(text),
	})
	s.next.Text(cursor, style, text)
}

func (s traceSink) Hyphen(cursor Point, style *Style) {
	s.session.Emit("sink", "Hyphen", debug.MarkData{X: cursor.X, Y: cursor.Y})
	s.next.Hyphen(cursor, style)
}

func (s traceSink) Ellipsis(cursor Point, style *Style) {
	s.session.Emit("sink", "Ellipsis", debug.MarkData{X: cursor.X, Y: cursor.Y})
	s.next.Ellipsis(cursor, style)
}

func (s traceSink) OutOfBounds() {
	s.session.Emit("sink", "OutOfBounds", nil)
	s.next.OutOfBounds()
}

// traceResolver records every placeholder translation decision.
func traceResolver(next Resolver, session *debug.Session) Resolver {
	return func(arg []byte) (Op, bool) {
		var (
			op Op
			ok bool
		)
		if next != nil {
			op, ok = next(arg)
		}
		data := debug.ArgumentData{Arg: string(arg), Resolved: ok}
		if ok {
			data.Op = opKindName(op.Kind)
		}
		session.Emit("translate", "Argument", data)
		return op, ok
	}
}

func opKindName(k OpKind) string {
	switch k {
	case OpText:
		return "Text"
	case OpSetColor:
		return "SetColor"
	case OpSetFont:
		return "SetFont"
	}
	return "Op(?)"
}
