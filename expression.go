package exprparse

import (
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Expression is a formula compiled against its own table of variables and
// functions. The zero value is an empty Expression with default options. An
// Expression is not safe for concurrent use.
type Expression[T constraints.Float] struct {
	syms symtab[T]
	// root is the compiled tree, or nil if uncompiled.
	root *node[T]
	// src is the text root was parsed from.
	src  string
	opts options
}

// New creates an empty Expression with the given options applied in order.
func New[T constraints.Float](opts ...Option) *Expression[T] {
	e := Expression[T]{opts: options{log: logrus.StandardLogger()}}
	for _, opt := range opts {
		opt.option(&e.opts)
	}
	return &e
}

// RegisterVariable makes a variable available to future calls to Parse. The
// error has status VariableAlreadyRegistered if name is already a variable or
// VariableFunctionNameClash if it is already a function. Registrations cannot
// be removed and do not affect an already compiled tree.
func (e *Expression[T]) RegisterVariable(name string, v *Variable[T]) error {
	return e.registered(e.syms.addvar(name, v), name)
}

// RegisterFunction makes a unary function available to future calls to Parse.
// The error has status FunctionAlreadyRegistered if name is already a function
// or VariableFunctionNameClash if it is already a variable.
func (e *Expression[T]) RegisterFunction(name string, fn Func[T]) error {
	return e.registered(e.syms.addfunc(name, fn), name)
}

// RegisterVariables registers each variable in vars in name order. Names that
// fail do not stop the others; the returned error collects every failure.
func (e *Expression[T]) RegisterVariables(vars map[string]*Variable[T]) error {
	return addall(vars, e.RegisterVariable)
}

// RegisterFunctions registers each function in fns in name order, collecting
// failures like RegisterVariables.
func (e *Expression[T]) RegisterFunctions(fns map[string]Func[T]) error {
	return addall(fns, e.RegisterFunction)
}

func (e *Expression[T]) registered(err error, name string) error {
	if err != nil {
		e.log().WithFields(logrus.Fields{"name": name, "status": StatusOf(err)}).Debug("registration failed")
	}
	return err
}

// log returns the logger for e. A zero Expression logs to the standard
// logger.
func (e *Expression[T]) log() logrus.FieldLogger {
	if e.opts.log == nil {
		return logrus.StandardLogger()
	}
	return e.opts.log
}

// Parse compiles text using the variables and functions registered so far.
// On success, the new tree replaces any previous one. On failure, the
// Expression becomes uncompiled unless it was created with KeepOnFailure.
func (e *Expression[T]) Parse(text string) error {
	n, err := parse(&e.syms, text)
	if err != nil {
		e.log().WithFields(logrus.Fields{"expr": text, "status": StatusOf(err)}).Debugf("parse failed: %v", err)
		if !e.opts.keep {
			e.root, e.src = nil, ""
		}
		return err
	}
	e.root, e.src = n, text
	return nil
}

// Eval evaluates the compiled tree using the current values of its variables.
// If the Expression is uncompiled, the result is 0 with ErrNotCompiled. If a
// divisor is zero, the result is 0 with a *DivisionError; the tree stays
// compiled, so a later Eval may succeed.
func (e *Expression[T]) Eval() (T, error) {
	if e.root == nil {
		return 0, ErrNotCompiled
	}
	r, err := e.root.eval()
	if err != nil {
		e.log().WithFields(logrus.Fields{"expr": e.src, "status": StatusOf(err)}).Debugf("eval failed: %v", err)
	}
	return r, err
}

// Compiled returns whether the Expression has a tree to evaluate.
func (e *Expression[T]) Compiled() bool {
	return e.root != nil
}

// Vars returns the sorted names of the variables the compiled tree reads.
func (e *Expression[T]) Vars() []string {
	if e.root == nil {
		return nil
	}
	m := make(map[string]bool)
	e.root.vars(m)
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String creates a string representation of the compiled tree, with brackets
// grouping each term. Parsing the result with the same symbols gives the same
// tree. An uncompiled Expression formats as "<nil>".
func (e *Expression[T]) String() string {
	if e.root == nil {
		return "<nil>"
	}
	return e.root.String()
}
