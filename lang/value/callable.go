package value

import "github.com/lohvht/golithp/lang/diag"

// Environment is the lexical-scope contract the evaluator and callables rely
// on. The concrete implementation lives in package env; it is expressed here
// as an interface so this package never needs to import env (which itself
// depends on Value).
type Environment interface {
	// Lookup resolves name, searching this frame then recursively the
	// parent chain.
	Lookup(name string) (Value, error)
	// Define binds name unconditionally in this frame.
	Define(name string, v Value)
	// Assign rebinds name in whichever frame it is already bound in.
	Assign(name string, v Value) error
	// NewChild creates a child environment whose parent is this one.
	NewChild() Environment
}

// Evaluator is the contract a Callable uses to evaluate its arguments (for
// primitives) or to recurse into sub-expressions (for special forms and
// closures).
type Evaluator interface {
	Eval(expr Value, env Environment) (Value, error)
}

// Callable is one of: a built-in primitive, a special form, or a
// user-defined closure. It is self-evaluating; applying it receives the
// raw, unevaluated argument list (a Cell chain or Empty) and decides for
// itself whether and how to evaluate it.
type Callable interface {
	Value
	// Apply invokes the callable against the raw argument list args in env.
	Apply(args Value, env Environment, ev Evaluator) (Value, error)
}

// EvalList walks a Cell chain, evaluating each element against env, and
// returns the resulting sequence. It tolerates an improper-list terminator
// only when the trailing Second is a raw Number, matching the pre-consed
// internal representation used when forwarding cons results as arguments.
func EvalList(args Value, env Environment, ev Evaluator) ([]Value, error) {
	var out []Value
	for {
		switch a := args.(type) {
		case emptyList:
			return out, nil
		case *Cell:
			v, err := ev.Eval(a.First, env)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			args = a.Second
		case Number:
			// Tolerated dotted terminator from an internal pre-consed pair.
			return out, nil
		default:
			return nil, diag.NewSyntaxError("", 0, "malformed argument list: improper tail "+args.String())
		}
	}
}
