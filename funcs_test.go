package exprparse_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/exprparse"
)

func TestBuiltins(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
		tol  float64
	}{
		{"sqrt", "sqrt(16)", 4, 0},
		{"sqrt-expr", "sqrt(9*x)", 6, 0},
		{"abs-neg", "abs(-3)", 3, 0},
		{"abs-pos", "abs(2.5)", 2.5, 0},
		{"exp-zero", "exp(0)", 1, 1e-15},
		{"exp-one", "exp(1)", math.E, 1e-15},
		{"ln-e", "ln(e)", 1, 1e-15},
		{"ln-one", "ln(1)", 0, 1e-15},
		{"log", "log(1000)", 3, 1e-15},
		{"pi", "pi*2", 2 * math.Pi, 1e-15},
		{"nested", "sqrt(abs(0-x*16))", 8, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := exprparse.New[float64]()
			if err := e.RegisterFunctions(exprparse.Builtins[float64]()); err != nil {
				t.Fatal(err)
			}
			if err := e.RegisterVariables(exprparse.Constants[float64]()); err != nil {
				t.Fatal(err)
			}
			if err := e.RegisterVariable("x", exprparse.NewVariable(4.0)); err != nil {
				t.Fatal(err)
			}
			if err := e.Parse(c.src); err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := e.Eval()
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if math.Abs(r-c.r) > c.tol {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestBuiltinsDomain(t *testing.T) {
	cases := []struct {
		name string
		arg  float64
	}{
		{"sqrt", -1},
		{"sqrt", math.NaN()},
		{"abs", math.NaN()},
		{"exp", math.NaN()},
	}
	fns := exprparse.Builtins[float64]()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if r := fns[c.name](c.arg); !math.IsNaN(r) {
				t.Errorf("%s(%g) gave %g, not NaN", c.name, c.arg, r)
			}
		})
	}
}

func TestMonadicPanics(t *testing.T) {
	// Panics other than big.ErrNaN pass through.
	f := exprparse.Monadic[float64](func(out, in *big.Float) *big.Float {
		panic("boom")
	})
	defer func() {
		if p := recover(); p != "boom" {
			t.Errorf("wrong panic %v", p)
		}
	}()
	f(1)
	t.Error("no panic")
}

func TestConstants(t *testing.T) {
	a, b := exprparse.Constants[float64](), exprparse.Constants[float64]()
	if got := a["pi"].Value(); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("pi: want %g, got %g", math.Pi, got)
	}
	if got := a["e"].Value(); math.Abs(got-math.E) > 1e-15 {
		t.Errorf("e: want %g, got %g", math.E, got)
	}
	if a["pi"] == b["pi"] {
		t.Error("constants share variables between calls")
	}
	pi := b["pi"].Value()
	a["pi"].Set(3)
	if got := b["pi"].Value(); got != pi {
		t.Errorf("setting one pi changed another to %g", got)
	}
}

func TestBuiltinsFloat32(t *testing.T) {
	e := exprparse.New[float32]()
	if err := e.RegisterFunctions(exprparse.Builtins[float32]()); err != nil {
		t.Fatal(err)
	}
	if err := e.RegisterVariables(exprparse.Constants[float32]()); err != nil {
		t.Fatal(err)
	}
	if err := e.Parse("sqrt(2)*sqrt(2)+pi-pi"); err != nil {
		t.Fatal(err)
	}
	r, err := e.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if d := r - 2; d > 1e-6 || d < -1e-6 {
		t.Errorf("want 2, got %g", r)
	}
	if got := exprparse.Constants[float32]()["pi"].Value(); math.Abs(float64(got)-math.Pi) > 1e-6 {
		t.Errorf("pi: want %g, got %g", math.Pi, got)
	}
}
