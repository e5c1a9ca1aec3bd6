package exprparse

import "strconv"

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is "(" if an open bracket is never closed.
	Left string
	// Right is ")" if a close bracket has no open bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// Status returns SyntaxError.
func (err *BracketError) Status() Status {
	return SyntaxError
}

// TermError is an error indicating a subexpression that is not a number,
// a variable, a call, or a bracketed expression. It implements InputError.
type TermError struct {
	// Col is the position of the start of the subexpression, or of the
	// operator missing an operand.
	Col int
	// Text is the offending subexpression with whitespace removed.
	Text string
	// Msg describes the problem.
	Msg string
}

func (err *TermError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Msg)
	}
	return errpos(err.Col, err.Msg+" "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int {
	return err.Col
}

// Status returns SyntaxError.
func (err *TermError) Status() Status {
	return SyntaxError
}

// SymbolError is an error indicating a call to a function that is not
// registered. It implements InputError.
type SymbolError struct {
	// Col is the position of the function name.
	Col int
	// Name is the unregistered name.
	Name string
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "unregistered function "+strconv.Quote(err.Name))
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// Status returns UnregisteredSymbol.
func (err *SymbolError) Status() Status {
	return UnregisteredSymbol
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error, counting
	// whitespace in the original input.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*SymbolError)(nil)
)
