// Package golithp is the public entry point described by the core spec's
// external interface: evaluate(expression) -> string, backed by one
// interpreter instance that owns the top-level environment across calls.
package golithp

import (
	"github.com/lohvht/golithp/lang/env"
	"github.com/lohvht/golithp/lang/interp"
	"github.com/lohvht/golithp/lang/reader"
)

// Interpreter owns a single top-level environment. Successive calls to
// Evaluate on the same Interpreter share that environment, so a define in
// one call is visible to the next, per the core spec's concurrency model:
// no shared state across interpreter instances, but full statefulness
// within one.
type Interpreter struct {
	name string
	env  *env.Environment
	eval *interp.Evaluator
}

// New creates an Interpreter with a fresh global environment, every special
// form and primitive already bound. name identifies this session's input in
// error messages (e.g. a file name, or "repl").
func New(name string) *Interpreter {
	return &Interpreter{
		name: name,
		env:  interp.NewGlobalEnv(),
		eval: interp.New(name),
	}
}

// Evaluate reads one complete expression from expression, evaluates it
// against this Interpreter's environment, and returns its printed
// representation. Empty input or a parse failure raises a SyntaxError; see
// lang/diag for the full error taxonomy.
func (in *Interpreter) Evaluate(expression string) (string, error) {
	v, err := reader.Read(in.name, expression)
	if err != nil {
		return "", err
	}
	result, err := in.eval.Eval(v, in.env)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// EvalAll reads every expression present in input, then evaluates them in
// order against this Interpreter's environment, and returns each one's
// printed representation in order. A syntax error anywhere in input is
// reported before any expression is evaluated. Useful for running a
// script or a pasted multi-expression block through one interpreter.
func (in *Interpreter) EvalAll(input string) ([]string, error) {
	exprs, err := reader.ReadAll(in.name, input)
	if err != nil {
		return nil, err
	}
	results := make([]string, len(exprs))
	for i, expr := range exprs {
		v, err := in.eval.Eval(expr, in.env)
		if err != nil {
			return nil, err
		}
		results[i] = v.String()
	}
	return results, nil
}

// Evaluate is the stateless convenience form: it builds a throwaway
// Interpreter, evaluates one expression, and discards the environment.
// Sessions that need defines to persist across calls (REPLs, multi-line
// scripts) should build an Interpreter with New instead.
func Evaluate(expression string) (string, error) {
	return New("input").Evaluate(expression)
}
