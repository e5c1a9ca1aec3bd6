package exprparse

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// node is a node in the abstract syntax tree of an expression.
type node[T constraints.Float] struct {
	kind nodeKind

	// val is the value of a nodeConst.
	val T
	// v is the variable read by a nodeVar.
	v *Variable[T]
	// fn is the function applied by a nodeCall.
	fn Func[T]
	// name is the variable or function name for nodeVar and nodeCall.
	name string

	left  *node[T]
	right *node[T]
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // val
	nodeVar   // current value of v
	nodeCall  // fn applied to left

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeConst:
		return "Const"
	case nodeVar:
		return "Var"
	case nodeCall:
		return "Call"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// binop gets the node kind for a binary operator character. If c is not an
// operator, the result is nodeNone.
func binop(c byte) nodeKind {
	switch c {
	case '+':
		return nodeAdd
	case '-':
		return nodeSub
	case '*':
		return nodeMul
	case '/':
		return nodeDiv
	default:
		return nodeNone
	}
}

// bitsize returns the size of T in bits, for strconv.
func bitsize[T constraints.Float]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

func (n *node[T]) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n with brackets grouping each term. The result parses to the
// same tree.
func (n *node[T]) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeConst:
		b.WriteString(fmtnum(float64(n.val), bitsize[T]()))
	case nodeVar:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b)
	case nodeAdd:
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
	case nodeSub:
		n.left.fmt(b)
		b.WriteString(" - ")
		n.right.fmt(b)
	case nodeMul:
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
	case nodeDiv:
		n.left.fmt(b)
		b.WriteString(" / ")
		n.right.fmt(b)
	default:
		panic("exprparse: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// fmtnum formats a constant without signed exponents, which would otherwise
// parse as operators.
func fmtnum(x float64, bits int) string {
	switch {
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(x, 'g', -1, bits)
	k := strings.IndexByte(s, 'e')
	switch {
	case k < 0:
		return s
	case s[k+1] == '-':
		return strconv.FormatFloat(x, 'f', -1, bits)
	default:
		return s[:k+1] + s[k+2:]
	}
}

// vars adds the names of all variables in the tree to names.
func (n *node[T]) vars(names map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		names[n.name] = true
	}
	n.left.vars(names)
	n.right.vars(names)
}
