package interp

import (
	"fmt"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/env"
	"github.com/lohvht/golithp/lang/value"
)

// primitiveFunc receives its arguments already evaluated, left to right.
type primitiveFunc func(args []value.Value) (value.Value, error)

// primitive is a Callable wrapper that evaluates its operand list before
// invoking fn, matching every built-in except the mutators and the
// short-circuiting logical forms (which need raw, unevaluated operands).
type primitive struct {
	name string
	fn   primitiveFunc
}

func (p *primitive) String() string { return "#<primitive:" + p.name + ">" }

func (p *primitive) Apply(args value.Value, environment value.Environment, ev value.Evaluator) (value.Value, error) {
	argVals, err := value.EvalList(args, environment, ev)
	if err != nil {
		return nil, err
	}
	return p.fn(argVals)
}

func runtimeErr(format string, args ...interface{}) error {
	return diag.NewRuntimeError("", 0, fmt.Sprintf(format, args...))
}

func numbers(name string, args []value.Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(value.Number)
		if !ok {
			return nil, runtimeErr("%s requires number arguments, found %s", name, a.String())
		}
		out[i] = int64(n)
	}
	return out, nil
}

func installPrimitives(g *env.Environment) {
	for _, p := range []*primitive{
		{"+", primAdd},
		{"-", primSub},
		{"*", primMul},
		{"/", primDiv},
		{"=", cmp("=", func(a, b int64) bool { return a == b })},
		{"<", cmp("<", func(a, b int64) bool { return a < b })},
		{"<=", cmp("<=", func(a, b int64) bool { return a <= b })},
		{">", cmp(">", func(a, b int64) bool { return a > b })},
		{">=", cmp(">=", func(a, b int64) bool { return a >= b })},
		{"max", extremum("max", func(a, b int64) bool { return a > b })},
		{"min", extremum("min", func(a, b int64) bool { return a < b })},
		{"abs", primAbs},
		{"not", primNot},
		{"number?", predicate(func(v value.Value) bool { _, ok := v.(value.Number); return ok })},
		{"boolean?", predicate(func(v value.Value) bool { _, ok := v.(value.Boolean); return ok })},
		{"symbol?", predicate(func(v value.Value) bool { _, ok := v.(value.Symbol); return ok })},
		{"pair?", predicate(func(v value.Value) bool { _, ok := v.(*value.Pair); return ok })},
		{"null?", predicate(value.IsEmpty)},
		{"list?", predicate(func(v value.Value) bool { _, ok := elementsOf(v); return ok })},
		{"cons", primCons},
		{"car", primCar},
		{"cdr", primCdr},
		{"list", primList},
		{"list-ref", primListRef},
		{"list-tail", primListTail},
	} {
		g.Define(p.name, p)
	}
	g.Define("set-car!", &mutator{name: "set-car!", field: func(p *value.Pair, v int64) { p.First = v }})
	g.Define("set-cdr!", &mutator{name: "set-cdr!", field: func(p *value.Pair, v int64) { p.Second = v }})
}

func primAdd(args []value.Value) (value.Value, error) {
	ns, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range ns {
		sum += n
	}
	return value.Number(sum), nil
}

func primMul(args []value.Value) (value.Value, error) {
	ns, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	var prod int64 = 1
	for _, n := range ns {
		prod *= n
	}
	return value.Number(prod), nil
}

func primSub(args []value.Value) (value.Value, error) {
	ns, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, runtimeErr("- requires at least one argument")
	}
	if len(ns) == 1 {
		return value.Number(-ns[0]), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result -= n
	}
	return value.Number(result), nil
}

func primDiv(args []value.Value) (value.Value, error) {
	ns, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, runtimeErr("/ requires at least one argument")
	}
	divide := func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, runtimeErr("division by zero")
		}
		return a / b, nil
	}
	if len(ns) == 1 {
		r, err := divide(1, ns[0])
		if err != nil {
			return nil, err
		}
		return value.Number(r), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result, err = divide(result, n)
		if err != nil {
			return nil, err
		}
	}
	return value.Number(result), nil
}

func cmp(name string, ok func(a, b int64) bool) primitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		ns, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !ok(ns[i-1], ns[i]) {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	}
}

func extremum(name string, better func(a, b int64) bool) primitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		ns, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		if len(ns) == 0 {
			return nil, runtimeErr("%s requires at least one argument", name)
		}
		best := ns[0]
		for _, n := range ns[1:] {
			if better(n, best) {
				best = n
			}
		}
		return value.Number(best), nil
	}
}

func primAbs(args []value.Value) (value.Value, error) {
	ns, err := numbers("abs", args)
	if err != nil {
		return nil, err
	}
	if len(ns) != 1 {
		return nil, runtimeErr("abs requires exactly one argument")
	}
	n := ns[0]
	if n < 0 {
		n = -n
	}
	return value.Number(n), nil
}

func primNot(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, runtimeErr("not requires exactly one argument")
	}
	if b, ok := args[0].(value.Boolean); ok {
		return value.Boolean(!bool(b)), nil
	}
	return value.Boolean(false), nil
}

func predicate(test func(value.Value) bool) primitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, runtimeErr("predicate requires exactly one argument")
		}
		return value.Boolean(test(args[0])), nil
	}
}

func primCons(args []value.Value) (value.Value, error) {
	ns, err := numbers("cons", args)
	if err != nil {
		return nil, err
	}
	if len(ns) != 2 {
		return nil, runtimeErr("cons requires exactly two arguments")
	}
	return &value.Pair{First: ns[0], Second: ns[1]}, nil
}

func asPair(name string, args []value.Value) (*value.Pair, error) {
	if len(args) != 1 {
		return nil, runtimeErr("%s requires exactly one argument", name)
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, runtimeErr("%s requires a pair argument", name)
	}
	return p, nil
}

func primCar(args []value.Value) (value.Value, error) {
	p, err := asPair("car", args)
	if err != nil {
		return nil, err
	}
	return value.Number(p.First), nil
}

func primCdr(args []value.Value) (value.Value, error) {
	p, err := asPair("cdr", args)
	if err != nil {
		return nil, err
	}
	return value.Number(p.Second), nil
}

// primList constructs a ListValue from its (already evaluated) arguments;
// zero arguments collapse to the canonical empty list rather than an empty
// ListValue, keeping null? a single-case check.
func primList(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Empty, nil
	}
	return &value.ListValue{Elements: args}, nil
}

func primListRef(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, runtimeErr("list-ref requires a list and an index")
	}
	elems, ok := elementsOf(args[0])
	if !ok {
		return nil, runtimeErr("list-ref requires a list as its first argument")
	}
	idx, ok := args[1].(value.Number)
	if !ok || int64(idx) < 0 || int(idx) >= len(elems) {
		return nil, runtimeErr("list-ref index out of range")
	}
	return elems[idx], nil
}

func primListTail(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, runtimeErr("list-tail requires a list and an index")
	}
	elems, ok := elementsOf(args[0])
	if !ok {
		return nil, runtimeErr("list-tail requires a list as its first argument")
	}
	idx, ok := args[1].(value.Number)
	if !ok || int64(idx) < 0 || int(idx) > len(elems) {
		return nil, runtimeErr("list-tail index out of range")
	}
	return cellsFromSlice(elems[idx:]), nil
}

// mutator implements set-car!/set-cdr!: the target variable name is passed
// unevaluated (it names a binding to mutate in place, not an expression to
// evaluate), while the new value is evaluated normally.
type mutator struct {
	name  string
	field func(p *value.Pair, v int64)
}

func (m *mutator) String() string { return "#<primitive:" + m.name + ">" }

func (m *mutator) Apply(args value.Value, environment value.Environment, ev value.Evaluator) (value.Value, error) {
	cell, ok := args.(*value.Cell)
	if !ok {
		return nil, syntaxf(ev, "%s requires exactly two arguments", m.name)
	}
	sym, ok := cell.First.(value.Symbol)
	if !ok {
		return nil, runtimeErr("%s requires a variable name as its first argument", m.name)
	}
	rest, ok := cell.Second.(*value.Cell)
	if !ok || !value.IsEmpty(rest.Second) {
		return nil, syntaxf(ev, "%s requires exactly two arguments", m.name)
	}
	v, err := ev.Eval(rest.First, environment)
	if err != nil {
		return nil, err
	}
	n, ok := v.(value.Number)
	if !ok {
		return nil, runtimeErr("%s requires a number value", m.name)
	}
	bound, err := environment.Lookup(string(sym))
	if err != nil {
		return nil, err
	}
	pair, ok := bound.(*value.Pair)
	if !ok {
		return nil, runtimeErr("%s requires %s to be bound to a pair", m.name, sym)
	}
	m.field(pair, int64(n))
	return value.Boolean(true), nil
}
