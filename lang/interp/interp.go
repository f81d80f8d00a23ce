// Package interp implements the tree-walking evaluator: dispatch on value
// kind, application of callables (special forms, primitives, closures), and
// the global environment that wires in every built-in.
package interp

import (
	"fmt"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/env"
	"github.com/lohvht/golithp/lang/value"
)

// Evaluator walks a Value tree, producing the Value it evaluates to. It
// implements value.Evaluator so callables can recurse back into it.
type Evaluator struct {
	inputName string
}

// New creates an Evaluator. inputName is used only for error reporting.
func New(inputName string) *Evaluator {
	return &Evaluator{inputName: inputName}
}

// NewGlobalEnv builds the top-level environment with every special form and
// primitive bound, per the core spec's built-ins table.
func NewGlobalEnv() *env.Environment {
	g := env.New(nil)
	installSpecialForms(g)
	installPrimitives(g)
	return g
}

// Eval dispatches on v's kind:
//   - Number, Boolean, Pair, ListValue, Callable, and the empty list all
//     self-evaluate.
//   - Symbol resolves through env.
//   - Cell is treated as an application: its head decides between
//     special-form handling (lambda is special-cased directly, matching
//     spec 4.4) and ordinary function application.
func (ev *Evaluator) Eval(v value.Value, environment value.Environment) (value.Value, error) {
	if value.IsEmpty(v) {
		return v, nil
	}
	switch n := v.(type) {
	case value.Number, value.Boolean, *value.Pair, *value.ListValue:
		return v, nil
	case value.Callable:
		return v, nil
	case value.Symbol:
		return environment.Lookup(string(n))
	case *value.Cell:
		return ev.evalCell(n, environment)
	default:
		return v, nil
	}
}

func (ev *Evaluator) evalCell(cell *value.Cell, environment value.Environment) (value.Value, error) {
	if sym, ok := cell.First.(value.Symbol); ok && sym == "lambda" {
		return ev.makeLambda(cell.Second, environment)
	}
	head, err := ev.Eval(cell.First, environment)
	if err != nil {
		return nil, err
	}
	callable, ok := head.(value.Callable)
	if !ok {
		return nil, ev.runtimeErrorf("cannot apply non-callable value: %s", head.String())
	}
	return callable.Apply(cell.Second, environment, ev)
}

func (ev *Evaluator) runtimeErrorf(format string, args ...interface{}) error {
	return diag.NewRuntimeError(ev.inputName, 0, fmt.Sprintf(format, args...))
}

func (ev *Evaluator) syntaxErrorf(format string, args ...interface{}) error {
	return diag.NewSyntaxError(ev.inputName, 0, fmt.Sprintf(format, args...))
}

// toSlice walks a proper Cell chain (or Empty) into a slice, erroring on any
// improper (dotted) tail.
func toSlice(v value.Value) ([]value.Value, error) {
	var out []value.Value
	for {
		if value.IsEmpty(v) {
			return out, nil
		}
		cell, ok := v.(*value.Cell)
		if !ok {
			return nil, fmt.Errorf("expected a proper list, found %s", v.String())
		}
		out = append(out, cell.First)
		v = cell.Second
	}
}

// cellsFromSlice rebuilds a proper-list Cell chain from elems.
func cellsFromSlice(elems []value.Value) value.Value {
	var tail value.Value = value.Empty
	for i := len(elems) - 1; i >= 0; i-- {
		tail = &value.Cell{First: elems[i], Second: tail}
	}
	return tail
}

// elementsOf extracts the ordered elements of any list representation this
// language produces: a proper Cell chain, the canonical empty list, or a
// ListValue built by the list primitive. ok is false when v is not a list
// at all.
func elementsOf(v value.Value) (elems []value.Value, ok bool) {
	if lv, isList := v.(*value.ListValue); isList {
		return lv.Elements, true
	}
	if !value.IsProperList(v) {
		return nil, false
	}
	elems, err := toSlice(v)
	if err != nil {
		return nil, false
	}
	return elems, true
}

func parseParamList(v value.Value) ([]string, error) {
	elems, err := toSlice(v)
	if err != nil {
		return nil, fmt.Errorf("malformed parameter list")
	}
	seen := make(map[string]bool, len(elems))
	params := make([]string, len(elems))
	for i, e := range elems {
		sym, ok := e.(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("parameter must be a symbol, found %s", e.String())
		}
		if seen[string(sym)] {
			return nil, fmt.Errorf("duplicate parameter name: %s", sym)
		}
		seen[string(sym)] = true
		params[i] = string(sym)
	}
	return params, nil
}

func (ev *Evaluator) makeLambda(tail value.Value, environment value.Environment) (value.Value, error) {
	cell, ok := tail.(*value.Cell)
	if !ok {
		return nil, ev.syntaxErrorf("lambda requires a parameter list and at least one body expression")
	}
	params, err := parseParamList(cell.First)
	if err != nil {
		return nil, ev.syntaxErrorf("lambda: %s", err)
	}
	body, err := toSlice(cell.Second)
	if err != nil {
		return nil, ev.syntaxErrorf("lambda: %s", err)
	}
	if len(body) == 0 {
		return nil, ev.syntaxErrorf("lambda requires at least one body expression")
	}
	return &Closure{Params: params, Body: body, Env: environment}, nil
}
