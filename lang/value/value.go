// Package value defines the runtime values the evaluator manipulates: the
// reader produces these as AST nodes, and the evaluator returns them as
// results, per the conflated AST/value model described in the core spec.
package value

import (
	"strconv"
	"strings"
)

// Value is the single tagged variant shared by the reader's AST and the
// evaluator's results.
type Value interface {
	// String returns this value's external representation.
	String() string
}

// Number is a self-evaluating signed 64-bit integer.
type Number int64

func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

// Boolean is a self-evaluating #t/#f value. It is the only falsy value.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Symbol is an identifier; it is not self-evaluating, resolving through an
// Environment instead.
type Symbol string

func (s Symbol) String() string { return string(s) }

// emptyList is the canonical representation of the empty list / nil,
// printed as "()" and self-evaluating. It resolves spec §9's open question
// about the inconsistent nil representation: this is the one canonical
// empty value, used both by the reader and by every primitive that
// constructs an empty result.
type emptyList struct{}

func (emptyList) String() string { return "()" }

// Empty is the canonical empty-list value.
var Empty Value = emptyList{}

// IsEmpty reports whether v is the canonical empty list.
func IsEmpty(v Value) bool {
	_, ok := v.(emptyList)
	return ok
}

// Cell is the binary cons node used to build lists and the AST. A proper
// list (a b c) is Cell{a, Cell{b, Cell{c, Empty}}}; an improper list
// (a . b) is Cell{a, b} where b is not itself a Cell. Cell is not
// self-evaluating: the evaluator treats it as an application.
type Cell struct {
	First  Value
	Second Value
}

func (c *Cell) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(c.First.String())
	rest := c.Second
	for {
		switch r := rest.(type) {
		case *Cell:
			sb.WriteString(" ")
			sb.WriteString(r.First.String())
			rest = r.Second
		case emptyList:
			sb.WriteString(")")
			return sb.String()
		default:
			sb.WriteString(" . ")
			sb.WriteString(r.String())
			sb.WriteString(")")
			return sb.String()
		}
	}
}

// IsProperList reports whether v is Empty or a Cell chain terminated by
// Empty.
func IsProperList(v Value) bool {
	for {
		switch c := v.(type) {
		case emptyList:
			return true
		case *Cell:
			v = c.Second
		default:
			return false
		}
	}
}

// Pair is the first-class two-integer value constructed by cons. Unlike
// Cell (the AST/list constructor), Pair holds two Numbers and is
// self-evaluating.
type Pair struct {
	First  int64
	Second int64
}

func (p *Pair) String() string {
	return "(" + strconv.FormatInt(p.First, 10) + " . " + strconv.FormatInt(p.Second, 10) + ")"
}

// ListValue is an ordered sequence constructed by the list primitive. It is
// self-evaluating. Printing is generalized (spec §9 open question) to any
// printable element, not just numbers.
type ListValue struct {
	Elements []Value
}

func (l *ListValue) String() string {
	if len(l.Elements) == 0 {
		return "()"
	}
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Equal compares two values: atoms compare by value, Pairs compare by field,
// everything else (Cells, ListValues, Callables) compares by identity.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case emptyList:
		return IsEmpty(b)
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av.First == bv.First && av.Second == bv.Second
	default:
		return a == b
	}
}
