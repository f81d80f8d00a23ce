// Package diag defines the three error kinds the interpreter can raise:
// SyntaxError, NameError, and RuntimeError, per the core spec's error
// handling design. All are built on the same GenericError/ErrorList
// machinery used for position reporting.
package diag

import "github.com/lohvht/golithp/lang/token"

// SyntaxError refers to malformed token sequences or ill-formed list
// structure: missing ')', orphan '.', trailing tokens, or the wrong shape
// for a special form.
type SyntaxError struct {
	token.GenericError
}

// NewSyntaxError returns an interpreter syntax error.
func NewSyntaxError(inputName string, pos token.Pos, msg string) *SyntaxError {
	return &SyntaxError{token.GenericError{Input: inputName, Pos: pos, Msg: msg}}
}

func (e *SyntaxError) Error() string { return e.StandardErrorMessageFormat("SyntaxError") }

// NameError refers to a symbol lookup failing anywhere in the environment
// chain, or a set! on an unbound name.
type NameError struct {
	token.GenericError
}

// NewNameError returns an interpreter name error.
func NewNameError(inputName string, pos token.Pos, msg string) *NameError {
	return &NameError{token.GenericError{Input: inputName, Pos: pos, Msg: msg}}
}

func (e *NameError) Error() string { return e.StandardErrorMessageFormat("NameError") }

// RuntimeError refers to type violations, arity mismatches caught during
// evaluation, division by zero, and out-of-range list indices.
type RuntimeError struct {
	token.GenericError
}

// NewRuntimeError returns an interpreter runtime error.
func NewRuntimeError(inputName string, pos token.Pos, msg string) *RuntimeError {
	return &RuntimeError{token.GenericError{Input: inputName, Pos: pos, Msg: msg}}
}

func (e *RuntimeError) Error() string { return e.StandardErrorMessageFormat("RuntimeError") }
