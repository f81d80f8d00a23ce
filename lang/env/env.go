// Package env implements the lexical environment chain the evaluator
// threads through every Eval call: a {name -> value} mapping with a parent
// link, per the core spec's Environment component.
package env

import (
	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/value"
)

// Environment holds a name-to-value mapping and an optional parent
// reference. Parent lineage is immutable once a child is created.
type Environment struct {
	vars   map[string]value.Value
	parent *Environment
}

// New creates an Environment whose parent is parent (nil for the top-level
// global environment).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), parent: parent}
}

// Lookup searches this frame then recurses into the parent, raising a
// NameError if the name is unbound anywhere in the chain.
func (e *Environment) Lookup(name string) (value.Value, error) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, nil
		}
	}
	return nil, diag.NewNameError("", 0, "undefined name: "+name)
}

// Define assigns unconditionally in the current frame, overwriting any
// existing binding.
func (e *Environment) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Assign requires that a lookup for name succeed first, then rebinds it in
// whichever frame it was found, per set!'s semantics.
func (e *Environment) Assign(name string, v value.Value) error {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = v
			return nil
		}
	}
	return diag.NewNameError("", 0, "cannot set! undefined name: "+name)
}

// NewChild creates a child Environment whose parent is e, satisfying
// value.Environment.
func (e *Environment) NewChild() value.Environment {
	return New(e)
}
