package flowbox

// ASCII bytes with special meaning to the tokenizer.
const (
	openBrace  = 123 // '{'
	closeBrace = 125 // '}'
)

// TokenKind discriminates the two token variants.
type TokenKind uint8

const (
	// TokenLiteral is a run of literal text.
	TokenLiteral TokenKind = iota
	// TokenArgument is the payload of a {argument} placeholder.
	TokenArgument
)

// Token is one element of a tokenized format string. Text is a view into
// the buffer passed to NewTokenizer and stays valid as long as that buffer
// is not mutated.
type Token struct {
	Text []byte
	Kind TokenKind
}

// Tokenizer splits a format string into literal runs and {argument}
// placeholders.
//
// The token stream is lazy, single-pass, and not restartable: each call to
// Next consumes input, and there is no way to rewind.
//
// Example:
//
//	tok := NewTokenizer([]byte("Nice to meet {you}, where you been?"))
//	tok.Next() // Token{Kind: TokenLiteral, Text: "Nice to meet "}
//	tok.Next() // Token{Kind: TokenArgument, Text: "you"}
//	tok.Next() // Token{Kind: TokenLiteral, Text: ", where you been?"}
type Tokenizer struct {
	input []byte
	pos   int
}

// NewTokenizer returns a tokenizer over format. The tokenizer borrows the
// slice; it never copies or mutates it.
func NewTokenizer(format []byte) *Tokenizer {
	return &Tokenizer{input: format}
}

// Next returns the next token, or false when the stream is exhausted.
//
// There is no escape mechanism for braces. If the input ends before an
// opened placeholder is closed, the unterminated argument is dropped and
// the stream ends.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.input) {
		return Token{}, false
	}

	if t.input[t.pos] == openBrace {
		// Argument token. Everything up to the closing brace is the payload.
		start := t.pos + 1
		for i := start; i < len(t.input); i++ {
			if t.input[i] == closeBrace {
				t.pos = i + 1
				return Token{Kind: TokenArgument, Text: t.input[start:i]}, true
			}
		}
		t.pos = len(t.input)
		return Token{}, false
	}

	// Literal token. The run is maximal: it extends to the next opening
	// brace or the end of input.
	start := t.pos
	i := start + 1
	for i < len(t.input) && t.input[i] != openBrace {
		i++
	}
	t.pos = i
	return Token{Kind: TokenLiteral, Text: t.input[start:i]}, true
}
