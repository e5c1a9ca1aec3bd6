package exprparse

import (
	"sort"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/constraints"
)

// Variable is a numeric cell shared between the caller and any expressions it
// is registered with. Compiled expressions read the value current at the time
// of each evaluation. A Variable is not safe for concurrent use; the caller
// must not Set it during an Eval of an expression that reads it.
type Variable[T constraints.Float] struct {
	v T
}

// NewVariable creates a variable holding x.
func NewVariable[T constraints.Float](x T) *Variable[T] {
	return &Variable[T]{v: x}
}

// Set changes the value of the variable. Every expression bound to it sees the
// new value on its next evaluation.
func (v *Variable[T]) Set(x T) {
	v.v = x
}

// Value returns the current value of the variable.
func (v *Variable[T]) Value() T {
	return v.v
}

// RegisterError is an error registering a variable or function name.
type RegisterError struct {
	// Name is the name being registered.
	Name string
	// Func is whether the registration was of a function.
	Func bool
	// S is the reason for the failure.
	S Status
}

func (err *RegisterError) Error() string {
	what := "variable "
	if err.Func {
		what = "function "
	}
	if err.S == Unknown {
		return "cannot register nil " + what + strconv.Quote(err.Name)
	}
	return "registering " + what + strconv.Quote(err.Name) + ": " + err.S.String()
}

// Status returns the reason for the failure.
func (err *RegisterError) Status() Status {
	return err.S
}

// symtab maps names to variables and functions. A name is never in both maps.
type symtab[T constraints.Float] struct {
	vars  map[string]*Variable[T]
	funcs map[string]Func[T]
}

func (s *symtab[T]) addvar(name string, v *Variable[T]) error {
	if v == nil {
		return &RegisterError{Name: name, S: Unknown}
	}
	if _, ok := s.funcs[name]; ok {
		return &RegisterError{Name: name, S: VariableFunctionNameClash}
	}
	if _, ok := s.vars[name]; ok {
		return &RegisterError{Name: name, S: VariableAlreadyRegistered}
	}
	if s.vars == nil {
		s.vars = make(map[string]*Variable[T])
	}
	s.vars[name] = v
	return nil
}

func (s *symtab[T]) addfunc(name string, fn Func[T]) error {
	if fn == nil {
		return &RegisterError{Name: name, Func: true, S: Unknown}
	}
	if _, ok := s.vars[name]; ok {
		return &RegisterError{Name: name, Func: true, S: VariableFunctionNameClash}
	}
	if _, ok := s.funcs[name]; ok {
		return &RegisterError{Name: name, Func: true, S: FunctionAlreadyRegistered}
	}
	if s.funcs == nil {
		s.funcs = make(map[string]Func[T])
	}
	s.funcs[name] = fn
	return nil
}

// resolve looks up a name, preferring variables. At most one result is
// non-nil.
func (s *symtab[T]) resolve(name string) (*Variable[T], Func[T]) {
	if v := s.vars[name]; v != nil {
		return v, nil
	}
	return nil, s.funcs[name]
}

// addall registers each element of a map in name order and collects every
// failure.
func addall[V any](m map[string]V, add func(string, V) error) error {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	var errs *multierror.Error
	for _, k := range names {
		if err := add(k, m[k]); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
