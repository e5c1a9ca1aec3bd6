// Package exprparse compiles infix arithmetic expressions into trees that can
// be evaluated many times against variables owned by the caller.
//
// An Expression holds a table of registered variables and unary functions.
// Parse compiles text against the names registered at that moment, and Eval
// walks the compiled tree reading the current value of each Variable, so
// changing a variable between evaluations needs no reparse:
//
//	x := exprparse.NewVariable(3.0)
//	e := exprparse.New[float64]()
//	e.RegisterVariable("x", x)
//	e.Parse("x * 2")
//	x.Set(7)
//	v, err := e.Eval() // 14, nil
//
// The grammar has the four binary operators + - * /, unary minus, brackets,
// numbers, variable names, and calls of registered functions like "sqrt(x)".
// Whitespace is ignored everywhere.
//
// Binary operators split at the leftmost operator of the lowest precedence
// outside brackets. As a consequence, chains of subtractions or divisions
// group to the right: "10-3-2" is 10-(3-2) = 9 and "8/4/2" is 8/(4/2) = 4.
// Use brackets to get the other grouping. For the same reason, a minus
// directly after * or / is not accepted, so "2*-3" must be written "2*(-3)",
// and a number cannot have a negative exponent: write 0.00001, not 1e-5.
//
// Errors from Parse implement InputError, giving the column of the problem in
// the original text. StatusOf classifies any error from this package.
package exprparse
