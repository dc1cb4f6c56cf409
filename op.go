package flowbox

// OpKind discriminates the operation variants.
type OpKind uint8

const (
	// OpText renders text with the current color and font.
	OpText OpKind = iota
	// OpSetColor sets the current text color.
	OpSetColor
	// OpSetFont sets the current text font.
	OpSetFont
)

// Op is one unit of formatted content: render a text slice, or change the
// current color or font. Only the field matching Kind is meaningful.
type Op struct {
	Text  []byte
	Font  Font
	Color Color
	Kind  OpKind
}

// TextOp returns an operation rendering text with the current style.
func TextOp(text []byte) Op {
	return Op{Kind: OpText, Text: text}
}

// SetColorOp returns an operation switching the current text color.
func SetColorOp(c Color) Op {
	return Op{Kind: OpSetColor, Color: c}
}

// SetFontOp returns an operation switching the current text font.
func SetFontOp(f Font) Op {
	return Op{Kind: OpSetFont, Font: f}
}

// Resolver maps an argument payload to an operation. Returning false drops
// the placeholder: it contributes no output and no error.
type Resolver func(arg []byte) (Op, bool)

// OpStream is the lazy operation stream produced by translating tokens.
// Like the tokenizer it is single-pass and not restartable.
type OpStream struct {
	tok     *Tokenizer
	resolve Resolver
}

// Ops translates the token stream into an operation stream. Literal tokens
// become OpText unconditionally; argument tokens go through resolve. A nil
// resolver drops every placeholder.
func (t *Tokenizer) Ops(resolve Resolver) *OpStream {
	return &OpStream{tok: t, resolve: resolve}
}

// Next returns the next operation, or false when the stream is exhausted.
func (s *OpStream) Next() (Op, bool) {
	for {
		token, ok := s.tok.Next()
		if !ok {
			return Op{}, false
		}
		if token.Kind == TokenLiteral {
			return TextOp(token.Text), true
		}
		if s.resolve == nil {
			continue
		}
		if op, ok := s.resolve(token.Text); ok {
			return op, true
		}
		// Unresolved placeholders contribute nothing.
	}
}
