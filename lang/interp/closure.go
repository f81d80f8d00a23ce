package interp

import (
	"fmt"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/value"
)

// Closure is a user-defined procedure: a parameter list, a non-empty body
// sequence, and the environment captured at definition time.
type Closure struct {
	Params []string
	Body   []value.Value
	Env    value.Environment
}

func (c *Closure) String() string { return fmt.Sprintf("#<closure/%d>", len(c.Params)) }

// Apply evaluates args in the caller's environment, binds them to Params in
// a fresh child of the captured environment, then evaluates Body in order,
// returning the last result.
func (c *Closure) Apply(args value.Value, env value.Environment, ev value.Evaluator) (value.Value, error) {
	argVals, err := value.EvalList(args, env, ev)
	if err != nil {
		return nil, err
	}
	if len(argVals) != len(c.Params) {
		return nil, diag.NewRuntimeError("", 0,
			fmt.Sprintf("closure expects %d argument(s), got %d", len(c.Params), len(argVals)))
	}
	child := c.Env.NewChild()
	for i, p := range c.Params {
		child.Define(p, argVals[i])
	}
	var result value.Value = value.Empty
	for _, expr := range c.Body {
		result, err = ev.Eval(expr, child)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
