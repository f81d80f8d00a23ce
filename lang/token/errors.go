package token

import (
	"fmt"
	"io"
	"sort"
)

// Error is the interface implemented by all reported interpreter errors,
// distinguishing the three kinds from spec: SyntaxError, NameError and
// RuntimeError all satisfy it.
type Error interface {
	error
	InputName() string    // name of the input string, e.g. a file name, "repl", or "input" for a one-shot Evaluate call
	Position() (int, int) // the position within the input string, line then column
	Message() string
}

// GenericError is the base error type of all interpreter errors; it should be
// embedded when implementing a new error kind. Pos, if valid, points to the
// beginning of the offending token.
type GenericError struct {
	Input string
	Pos   Pos
	Msg   string
}

// InputName for the Error interface
func (e GenericError) InputName() string { return e.Input }

// Position for the Error interface
func (e GenericError) Position() (l int, c int) {
	l, c = e.Pos.Decompose()
	return
}

// Message for the Error interface
func (e GenericError) Message() string { return e.Msg }

// InputNamePos returns a string representation of <InputName>:<line#>:<col#>.
// It can take the following forms:
// <InputName>:<line#>:<col#>
// <line#>:<col#>
// <InputName> => when Pos is not valid
// "" => only happens when InputName is empty and Pos is not valid
func (e GenericError) InputNamePos() string {
	s := e.InputName()
	if e.Pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += e.Pos.String()
	}
	return s
}

// StandardErrorMessageFormat returns a string that adheres to the standard
// error format:
// if inputNamePos and errorType are both "", return only the message
// if only inputNamePos is empty, return "[errorType]: message"
// if only errorType is empty, return "inputNamePos: message"
// else, return "[errorType]:inputNamePos: message"
func (e GenericError) StandardErrorMessageFormat(errorType string) string {
	s := e.InputNamePos()
	switch {
	case s == "" && errorType == "":
		return e.Msg
	case s == "" && errorType != "":
		return "[" + errorType + "]: " + e.Msg
	case s != "" && errorType == "":
		return s + ": " + e.Msg
	default:
		return "[" + errorType + "]:" + s + ": " + e.Msg
	}
}

func (e GenericError) Error() string {
	return e.StandardErrorMessageFormat("")
}

// NewGenericError returns a generic interpreter error.
func NewGenericError(inputName string, pos Pos, msg string) *GenericError {
	return &GenericError{inputName, pos, msg}
}

// ErrorList is a list of Errors.
type ErrorList []Error

// Add adds an Error to an ErrorList.
func (p *ErrorList) Add(e Error) { *p = append(*p, e) }

// Reset resets an ErrorList to no errors.
func (p *ErrorList) Reset() { *p = (*p)[0:0] }

// ErrorList implements the sort Interface.

// Len for sort interface
func (p ErrorList) Len() int { return len(p) }

// Swap for sort interface
func (p ErrorList) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p ErrorList) Less(i, j int) bool {
	if p[i].InputName() != p[j].InputName() {
		return p[i].InputName() < p[j].InputName()
	}
	el, ec := p[i].Position()
	fl, fc := p[j].Position()
	if el != fl {
		return el < fl
	}
	if ec != fc {
		return ec < fc
	}
	return p[i].Message() < p[j].Message()
}

// Sort sorts an ErrorList by position, breaking ties by message.
func (p ErrorList) Sort() { sort.Sort(p) }

// Error implements the error interface for an ErrorList.
func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// PrintError is a utility function that prints a list of errors to w, one
// error per line, if err is an ErrorList. Otherwise it prints the err string.
func PrintError(w io.Writer, err error) {
	if list, ok := err.(ErrorList); ok {
		for _, e := range list {
			fmt.Fprintf(w, "%s\n", e)
		}
	} else if err != nil {
		fmt.Fprintf(w, "%s\n", err)
	}
}
