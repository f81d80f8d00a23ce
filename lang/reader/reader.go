// Package reader implements the S-expression reader: recursive-descent
// parsing of a token stream into the cons-cell AST described by the core
// spec's grammar.
package reader

import (
	"fmt"
	"strconv"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/token"
	"github.com/lohvht/golithp/lang/value"
)

// Reader consumes tokens from a Tokeniser and builds Values.
type Reader struct {
	name string
	tk   *token.Tokeniser
}

// New creates a Reader over input. name is used only for error reporting.
func New(name, input string) *Reader {
	return &Reader{name: name, tk: token.New(name, input)}
}

// Read parses exactly one expression from the input, then requires that the
// tokenizer be at end; trailing tokens are a SyntaxError.
func Read(name, input string) (value.Value, error) {
	r := New(name, input)
	v, err := r.expr()
	if err != nil {
		return nil, err
	}
	if !r.tk.AtEnd() {
		return nil, r.errorf("trailing input after expression, found %s", r.tk.Peek())
	}
	return v, nil
}

// ReadAll parses every expression in input in sequence, requiring that the
// tokenizer reach end of input exactly after the last one. Used to run a
// multi-expression source file or script through one interpreter instance.
func ReadAll(name, input string) ([]value.Value, error) {
	r := New(name, input)
	var exprs []value.Value
	for !r.tk.AtEnd() {
		v, err := r.expr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, v)
	}
	return exprs, nil
}

func (r *Reader) errorf(format string, args ...interface{}) error {
	pos := r.tk.Peek().Pos
	return diag.NewSyntaxError(r.name, pos, fmt.Sprintf(format, args...))
}

// expr := atom | '(' list ')' | '\'' expr
func (r *Reader) expr() (value.Value, error) {
	tok := r.tk.Peek()
	switch tok.Type {
	case token.Integer:
		r.tk.Advance()
		return parseInteger(r.name, tok)
	case token.Boolean:
		r.tk.Advance()
		return value.Boolean(tok.Value == "#t"), nil
	case token.Symbol:
		r.tk.Advance()
		return value.Symbol(tok.Value), nil
	case token.Quote:
		r.tk.Advance()
		inner, err := r.expr()
		if err != nil {
			return nil, err
		}
		return &value.Cell{
			First:  value.Symbol("quote"),
			Second: &value.Cell{First: inner, Second: value.Empty},
		}, nil
	case token.OpenParen:
		r.tk.Advance()
		return r.list()
	default:
		return nil, r.errorf("unexpected token %s, expected an expression", tok)
	}
}

// list := ε | expr list | expr '.' expr
// the opening '(' has already been consumed; this reads up to and including
// the matching ')'.
func (r *Reader) list() (value.Value, error) {
	if r.tk.Peek().Type == token.CloseParen {
		r.tk.Advance()
		return value.Empty, nil
	}
	head, err := r.expr()
	if err != nil {
		return nil, err
	}
	cell := &value.Cell{First: head}
	tail := cell
	for {
		switch r.tk.Peek().Type {
		case token.CloseParen:
			r.tk.Advance()
			tail.Second = value.Empty
			return cell, nil
		case token.Dot:
			r.tk.Advance()
			rest, err := r.expr()
			if err != nil {
				return nil, err
			}
			tail.Second = rest
			closing := r.tk.Peek()
			if closing.Type != token.CloseParen {
				return nil, r.errorf("expected ')' after dotted tail, found %s", closing)
			}
			r.tk.Advance()
			return cell, nil
		default:
			elem, err := r.expr()
			if err != nil {
				return nil, err
			}
			next := &value.Cell{First: elem}
			tail.Second = next
			tail = next
		}
	}
}

func parseInteger(name string, tok token.Token) (value.Value, error) {
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, diag.NewSyntaxError(name, tok.Pos, "malformed integer literal: "+tok.Value)
	}
	return value.Number(n), nil
}
