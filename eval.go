package exprparse

import (
	"strconv"
)

// DivisionError is an error indicating that a divisor evaluated to zero.
type DivisionError struct {
	// Dividend is the value that was to be divided.
	Dividend float64
	// Divisor is the subexpression that evaluated to zero.
	Divisor string
}

func (err *DivisionError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + " / " + err.Divisor
}

// Status returns DivisionByZero.
func (err *DivisionError) Status() Status {
	return DivisionByZero
}

// ErrNotCompiled is returned by Eval on an Expression that has no
// successfully parsed tree.
var ErrNotCompiled error = notCompiled{}

type notCompiled struct{}

func (notCompiled) Error() string  { return "expression is not compiled" }
func (notCompiled) Status() Status { return NotCompiled }

// eval computes the node's value. The left operand of a binary operator is
// evaluated first, and the right is not evaluated if the left fails.
func (n *node[T]) eval() (T, error) {
	switch n.kind {
	case nodeConst:
		return n.val, nil
	case nodeVar:
		return n.v.Value(), nil
	case nodeCall:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return n.fn(x), nil
	case nodeAdd:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DivisionError{Dividend: float64(l), Divisor: n.right.String()}
		}
		return l / r, nil
	default:
		panic("exprparse: invalid AST node " + n.kind.String())
	}
}

// operands evaluates both children of a binary operator.
func (n *node[T]) operands() (l, r T, err error) {
	if l, err = n.left.eval(); err != nil {
		return 0, 0, err
	}
	if r, err = n.right.eval(); err != nil {
		return 0, 0, err
	}
	return l, r, nil
}
