package exprparse

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
	"golang.org/x/exp/constraints"
)

// Func is a function from reals to reals. Functions are assumed to be total:
// inputs outside the mathematical domain should produce NaN rather than
// panic.
type Func[T constraints.Float] func(T) T

// prec is the precision in bits of arbitrary-precision builtins. It is enough
// that rounding to float64 is correct in nearly all cases.
const prec = 96

// Monadic wraps an arbitrary-precision function of one variable into a Func.
// f must set out to its result, to the precision of out; its return value is
// always ignored. If f is called on an argument outside its domain, it should
// panic with an error of type big.ErrNaN, which Monadic turns into NaN.
func Monadic[T constraints.Float](f func(out, in *big.Float) *big.Float) Func[T] {
	return func(x T) (r T) {
		if math.IsNaN(float64(x)) {
			return x
		}
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			err, _ := p.(error)
			if !errors.As(err, new(big.ErrNaN)) {
				panic(p)
			}
			r = T(math.NaN())
		}()
		in := new(big.Float).SetPrec(prec).SetFloat64(float64(x))
		out := new(big.Float).SetPrec(prec)
		f(out, in)
		v, _ := out.Float64()
		return T(v)
	}
}

// constant computes an arbitrary-precision constant rounded to T.
func constant[T constraints.Float](f func(out *big.Float) *big.Float) T {
	out := new(big.Float).SetPrec(prec)
	f(out)
	v, _ := out.Float64()
	return T(v)
}

func log10(out, in *big.Float) *big.Float {
	bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(out.Prec()).SetInt64(10)
	bigfloat.Log(ten, ten)
	return out.Quo(out, ten)
}

func euler(out *big.Float) *big.Float {
	one := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
	return bigfloat.Exp(out, one)
}

// Builtins returns a new map of common functions suitable for
// RegisterFunctions: exp, ln, log (base 10), sqrt, and abs.
func Builtins[T constraints.Float]() map[string]Func[T] {
	return map[string]Func[T]{
		"exp":  Monadic[T](bigfloat.Exp),
		"ln":   Monadic[T](bigfloat.Log),
		"log":  Monadic[T](log10),
		"sqrt": Monadic[T]((*big.Float).Sqrt),
		"abs":  Monadic[T]((*big.Float).Abs),
	}
}

// Constants returns new variables holding pi and e, suitable for
// RegisterVariables. Each call creates distinct variables.
func Constants[T constraints.Float]() map[string]*Variable[T] {
	return map[string]*Variable[T]{
		"pi": NewVariable(constant[T](bigfloat.Pi)),
		"e":  NewVariable(constant[T](euler)),
	}
}
