package interp

import (
	"fmt"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/env"
	"github.com/lohvht/golithp/lang/value"
)

// specialFormFunc is the shape every special form handler implements. args
// is the raw, unevaluated operand list; the handler decides what, if
// anything, gets evaluated and in which environment.
type specialFormFunc func(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error)

// specialForm is a Callable wrapper around a specialFormFunc, bound into the
// global environment under its name like any other value (lambda is the
// sole exception, special-cased directly by Evaluator.evalCell).
type specialForm struct {
	name string
	fn   specialFormFunc
}

func (s *specialForm) String() string { return "#<special-form:" + s.name + ">" }

func (s *specialForm) Apply(args value.Value, environment value.Environment, ev value.Evaluator) (value.Value, error) {
	return s.fn(ev, args, environment)
}

func installSpecialForms(g *env.Environment) {
	forms := []*specialForm{
		{"quote", quoteForm},
		{"if", ifForm},
		{"define", defineForm},
		{"set!", setForm},
		{"and", andForm},
		{"or", orForm},
	}
	for _, f := range forms {
		g.Define(f.name, f)
	}
}

func syntaxf(ev value.Evaluator, format string, args ...interface{}) error {
	name := ""
	if e, ok := ev.(*Evaluator); ok {
		name = e.inputName
	}
	return diag.NewSyntaxError(name, 0, fmt.Sprintf(format, args...))
}

// quoteForm returns its single argument unevaluated.
func quoteForm(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error) {
	cell, ok := args.(*value.Cell)
	if !ok || !value.IsEmpty(cell.Second) {
		return nil, syntaxf(ev, "quote requires exactly one argument")
	}
	return cell.First, nil
}

// ifForm evaluates its condition; anything other than #f is truthy. The
// else branch is optional, defaulting to the empty list.
func ifForm(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error) {
	elems, err := toSlice(args)
	if err != nil || len(elems) < 2 || len(elems) > 3 {
		return nil, syntaxf(ev, "if requires a condition, a consequent, and an optional alternative")
	}
	cond, err := ev.Eval(elems[0], environment)
	if err != nil {
		return nil, err
	}
	if b, ok := cond.(value.Boolean); ok && !bool(b) {
		if len(elems) == 3 {
			return ev.Eval(elems[2], environment)
		}
		return value.Empty, nil
	}
	return ev.Eval(elems[1], environment)
}

// defineForm handles both (define name value) and the procedure-definition
// sugar (define (name params...) body...).
func defineForm(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error) {
	cell, ok := args.(*value.Cell)
	if !ok {
		return nil, syntaxf(ev, "define requires a name and a value, or a procedure header and a body")
	}
	switch target := cell.First.(type) {
	case value.Symbol:
		rest, ok := cell.Second.(*value.Cell)
		if !ok || !value.IsEmpty(rest.Second) {
			return nil, syntaxf(ev, "define requires exactly one value expression")
		}
		v, err := ev.Eval(rest.First, environment)
		if err != nil {
			return nil, err
		}
		environment.Define(string(target), v)
		return value.Boolean(true), nil
	case *value.Cell:
		name, ok := target.First.(value.Symbol)
		if !ok {
			return nil, syntaxf(ev, "define: procedure header must start with a name")
		}
		params, err := parseParamList(target.Second)
		if err != nil {
			return nil, syntaxf(ev, "define: %s", err)
		}
		body, err := toSlice(cell.Second)
		if err != nil || len(body) == 0 {
			return nil, syntaxf(ev, "define requires at least one body expression")
		}
		environment.Define(string(name), &Closure{Params: params, Body: body, Env: environment})
		return value.Boolean(true), nil
	default:
		return nil, syntaxf(ev, "define: malformed target")
	}
}

// setForm rebinds an already-defined name; unbound names are a NameError,
// raised by Environment.Assign itself.
func setForm(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error) {
	elems, err := toSlice(args)
	if err != nil || len(elems) != 2 {
		return nil, syntaxf(ev, "set! requires exactly a name and a value expression")
	}
	sym, ok := elems[0].(value.Symbol)
	if !ok {
		return nil, syntaxf(ev, "set! requires a symbol as its first argument")
	}
	v, err := ev.Eval(elems[1], environment)
	if err != nil {
		return nil, err
	}
	if err := environment.Assign(string(sym), v); err != nil {
		return nil, err
	}
	return value.Boolean(true), nil
}

// andForm short-circuits on the first #f, evaluating nothing after it.
func andForm(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error) {
	elems, err := toSlice(args)
	if err != nil {
		return nil, syntaxf(ev, "and requires a proper list of expressions")
	}
	var result value.Value = value.Boolean(true)
	for _, e := range elems {
		result, err = ev.Eval(e, environment)
		if err != nil {
			return nil, err
		}
		if b, ok := result.(value.Boolean); ok && !bool(b) {
			return value.Boolean(false), nil
		}
	}
	return result, nil
}

// orForm short-circuits on the first truthy value, evaluating nothing after
// it.
func orForm(ev value.Evaluator, args value.Value, environment value.Environment) (value.Value, error) {
	elems, err := toSlice(args)
	if err != nil {
		return nil, syntaxf(ev, "or requires a proper list of expressions")
	}
	for _, e := range elems {
		v, err := ev.Eval(e, environment)
		if err != nil {
			return nil, err
		}
		if b, ok := v.(value.Boolean); !ok || bool(b) {
			return v, nil
		}
	}
	return value.Boolean(false), nil
}
