package exprparse

import (
	"errors"
	"strconv"
)

// Status classifies the outcome of registering names, parsing, and
// evaluating. Every error returned by this package maps to exactly one Status
// through StatusOf.
type Status int8

const (
	// Success is the status of a nil error.
	Success Status = iota
	// VariableAlreadyRegistered means a variable with the name exists.
	VariableAlreadyRegistered
	// FunctionAlreadyRegistered means a function with the name exists.
	FunctionAlreadyRegistered
	// VariableFunctionNameClash means the name is taken in the other
	// namespace.
	VariableFunctionNameClash
	// NotCompiled means Eval was called with no successfully parsed tree.
	NotCompiled
	// DivisionByZero means a divisor evaluated to zero.
	DivisionByZero
	// UnregisteredSymbol means a call names a function that is not
	// registered.
	UnregisteredSymbol
	// SyntaxError means the text is not a valid expression.
	SyntaxError
	// Unknown is the status of any error not produced by this package.
	Unknown
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case VariableAlreadyRegistered:
		return "variable already registered"
	case FunctionAlreadyRegistered:
		return "function already registered"
	case VariableFunctionNameClash:
		return "variable/function name clash"
	case NotCompiled:
		return "not compiled"
	case DivisionByZero:
		return "division by zero"
	case UnregisteredSymbol:
		return "unregistered symbol"
	case SyntaxError:
		return "syntax error"
	case Unknown:
		return "unknown error"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// StatusOf returns the status of an error returned by this package. The
// result is Success for a nil error and Unknown for errors that carry no
// status. Aggregated errors report the status of the first error they wrap.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var s interface{ Status() Status }
	if errors.As(err, &s) {
		return s.Status()
	}
	return Unknown
}
