package token

import "strings"

// Most of the rune-scanning idiom here (next/backup/width tracking) is
// adapted from https://golang.org/src/text/template/parse/lex.go.

const eof = -1

// Tokeniser streams a character source into a lazy sequence of Tokens. It
// exposes Peek (current token), Advance (consume and fetch next), and AtEnd,
// per the tokenizer contract: only the current token is ever buffered.
type Tokeniser struct {
	name  string
	input string

	pos     int // current byte offset into input
	line    int
	col     int
	prevCol int

	width int // width in bytes of the last rune read, for backup()

	current Token
	primed  bool // whether current holds a valid lookahead token
}

// New creates a Tokeniser over input. name is used only for error reporting.
func New(name, input string) *Tokeniser {
	return &Tokeniser{name: name, input: input, line: 1, col: 1, prevCol: 1}
}

// Peek returns the current token without consuming it.
func (t *Tokeniser) Peek() Token {
	t.ensurePrimed()
	return t.current
}

// Advance consumes the current token and returns the next one.
func (t *Tokeniser) Advance() Token {
	t.ensurePrimed()
	t.primed = false
	t.ensurePrimed()
	return t.current
}

// AtEnd reports whether the tokenizer has produced its final EOF token.
func (t *Tokeniser) AtEnd() bool {
	t.ensurePrimed()
	return t.current.Type == EOF
}

func (t *Tokeniser) ensurePrimed() {
	if !t.primed {
		t.current = t.scan()
		t.primed = true
	}
}

// next returns the next byte-as-rune in the input; the language is ASCII
// only (spec 6), so bytes and runes coincide.
func (t *Tokeniser) next() rune {
	if t.pos >= len(t.input) {
		t.width = 0
		return eof
	}
	r := rune(t.input[t.pos])
	t.width = 1
	t.pos++
	if r == '\n' {
		t.line++
		t.prevCol = t.col
		t.col = 1
	} else {
		t.prevCol = t.col
		t.col++
	}
	return r
}

func (t *Tokeniser) backup() {
	t.pos -= t.width
	if t.width == 1 && t.input[t.pos] == '\n' {
		t.line--
	}
	t.col = t.prevCol
}

func (t *Tokeniser) peekRune() rune {
	r := t.next()
	t.backup()
	return r
}

func (t *Tokeniser) here() Pos { return NewPos(uint32(t.line), uint32(t.col)) }

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isSeparator(r rune) bool {
	switch r {
	case eof, '(', ')', '.', '\'':
		return true
	}
	return isSpace(r) || isDigit(r)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// scan produces the next Token from the input, skipping whitespace first.
func (t *Tokeniser) scan() Token {
	for {
		start := t.here()
		r := t.next()
		switch {
		case r == eof:
			return Token{Type: EOF, Pos: start}
		case isSpace(r):
			continue
		case r == '\'':
			return Token{Type: Quote, Value: "'", Pos: start}
		case r == '.':
			return Token{Type: Dot, Value: ".", Pos: start}
		case r == '(':
			return Token{Type: OpenParen, Value: "(", Pos: start}
		case r == ')':
			return Token{Type: CloseParen, Value: ")", Pos: start}
		case isDigit(r):
			return t.scanInteger(r, start)
		default:
			return t.scanSymbolOrBoolean(r, start)
		}
	}
}

func (t *Tokeniser) scanInteger(first rune, pos Pos) Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for isDigit(t.peekRune()) {
		sb.WriteRune(t.next())
	}
	return Token{Type: Integer, Value: sb.String(), Pos: pos}
}

func (t *Tokeniser) scanSymbolOrBoolean(first rune, pos Pos) Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for !isSeparator(t.peekRune()) {
		sb.WriteRune(t.next())
	}
	text := sb.String()
	switch text {
	case "#t", "#f":
		return Token{Type: Boolean, Value: text, Pos: pos}
	default:
		return Token{Type: Symbol, Value: text, Pos: pos}
	}
}
