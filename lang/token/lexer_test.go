package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// makeToken creates a Token given a Type and a string denoting its value,
// ignoring position so tests can compare by value alone.
func makeToken(typ Type, value string) Token { return Token{Type: typ, Value: value} }

// scanAll drains a Tokeniser into a slice of Tokens with positions zeroed
// out, so that tokens compare by type and value alone.
func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	tk := New("test", input)
	var out []Token
	for {
		tok := tk.Peek()
		tok.Pos = 0
		out = append(out, tok)
		if tk.AtEnd() {
			break
		}
		tk.Advance()
	}
	return out
}

func TestTokeniserBasic(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  []Token{makeToken(EOF, "")},
		},
		{
			name:  "integer",
			input: "42",
			want:  []Token{makeToken(Integer, "42"), makeToken(EOF, "")},
		},
		{
			name:  "parens",
			input: "()",
			want:  []Token{makeToken(OpenParen, "("), makeToken(CloseParen, ")"), makeToken(EOF, "")},
		},
		{
			name:  "symbol",
			input: "foo-bar?",
			want:  []Token{makeToken(Symbol, "foo-bar?"), makeToken(EOF, "")},
		},
		{
			name:  "booleans",
			input: "#t #f",
			want:  []Token{makeToken(Boolean, "#t"), makeToken(Boolean, "#f"), makeToken(EOF, "")},
		},
		{
			name:  "quote and dot",
			input: "'(1 . 2)",
			want: []Token{
				makeToken(Quote, "'"),
				makeToken(OpenParen, "("),
				makeToken(Integer, "1"),
				makeToken(Dot, "."),
				makeToken(Integer, "2"),
				makeToken(CloseParen, ")"),
				makeToken(EOF, ""),
			},
		},
		{
			name:  "whitespace is a separator",
			input: "(+ 1\n\t2)",
			want: []Token{
				makeToken(OpenParen, "("),
				makeToken(Symbol, "+"),
				makeToken(Integer, "1"),
				makeToken(Integer, "2"),
				makeToken(CloseParen, ")"),
				makeToken(EOF, ""),
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, scanAll(t, c.input))
		})
	}
}

func TestTokeniserAtEndIsSticky(t *testing.T) {
	tk := New("test", "1")
	assert.False(t, tk.AtEnd())
	tk.Advance()
	assert.True(t, tk.AtEnd())
	assert.Equal(t, EOF, tk.Peek().Type)
}
