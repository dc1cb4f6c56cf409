package flowbox

import (
	"testing"
)

func collectTokens(t *Tokenizer) []Token {
	var tokens []Token
	for {
		token, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []Token
	}{
		{
			name:   "literal and arguments",
			format: "Nice to meet {you}, where you been?",
			want: []Token{
				{Kind: TokenLiteral, Text: []byte("Nice to meet ")},
				{Kind: TokenArgument, Text: []byte("you")},
				{Kind: TokenLiteral, Text: []byte(", where you been?")},
			},
		},
		{
			name:   "unterminated argument drops the tail",
			format: "abc{unterminated",
			want: []Token{
				{Kind: TokenLiteral, Text: []byte("abc")},
			},
		},
		{
			name:   "empty input",
			format: "",
			want:   nil,
		},
		{
			name:   "only literal",
			format: "hello",
			want: []Token{
				{Kind: TokenLiteral, Text: []byte("hello")},
			},
		},
		{
			name:   "only argument",
			format: "{x}",
			want: []Token{
				{Kind: TokenArgument, Text: []byte("x")},
			},
		},
		{
			name:   "empty argument",
			format: "a{}b",
			want: []Token{
				{Kind: TokenLiteral, Text: []byte("a")},
				{Kind: TokenArgument, Text: []byte("")},
				{Kind: TokenLiteral, Text: []byte("b")},
			},
		},
		{
			name:   "adjacent arguments",
			format: "{a}{b}",
			want: []Token{
				{Kind: TokenArgument, Text: []byte("a")},
				{Kind: TokenArgument, Text: []byte("b")},
			},
		},
		{
			name:   "argument at start",
			format: "{x} tail",
			want: []Token{
				{Kind: TokenArgument, Text: []byte("x")},
				{Kind: TokenLiteral, Text: []byte(" tail")},
			},
		},
		{
			name:   "lone open brace at end",
			format: "abc{",
			want: []Token{
				{Kind: TokenLiteral, Text: []byte("abc")},
			},
		},
		{
			name:   "closing brace is literal outside placeholder",
			format: "a}b",
			want: []Token{
				{Kind: TokenLiteral, Text: []byte("a}b")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectTokens(NewTokenizer([]byte(tt.format)))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Kind != tt.want[i].Kind {
					t.Errorf("token %d kind = %v, want %v", i, got[i].Kind, tt.want[i].Kind)
				}
				if string(got[i].Text) != string(tt.want[i].Text) {
					t.Errorf("token %d text = %q, want %q", i, got[i].Text, tt.want[i].Text)
				}
			}
		})
	}
}

func TestTokenizerSinglePass(t *testing.T) {
	tok := NewTokenizer([]byte("a{b}"))
	collectTokens(tok)

	// The stream is consumed: further calls keep reporting exhaustion.
	for i := 0; i < 3; i++ {
		if _, ok := tok.Next(); ok {
			t.Fatal("Next() = true after exhaustion, want false")
		}
	}
}

func TestTokenizerBorrowsInput(t *testing.T) {
	format := []byte("ab{cd}")
	tok := NewTokenizer(format)

	token, ok := tok.Next()
	if !ok {
		t.Fatal("Next() = false, want literal token")
	}

	// Tokens are views into the format buffer, not copies.
	if &token.Text[0] != &format[0] {
		t.Error("literal token does not alias the format buffer")
	}
}
