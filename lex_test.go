package exprparse

import (
	"reflect"
	"testing"
)

func TestStrip(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
		cols []int
	}{
		{"empty", "", "", nil},
		{"blank", " \t\n", "", nil},
		{"none", "1+2", "1+2", []int{1, 2, 3}},
		{"spaces", " 1 + 2 ", "1+2", []int{2, 4, 6}},
		{"tabs", "x\t*\ty", "x*y", []int{1, 3, 5}},
		{"multibyte", "é + π", "é+π", []int{1, 1, 3, 5, 5}},
		{"unicode-space", "1\u00a0+\u20032", "1+2", []int{1, 3, 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			text, cols := strip(c.src)
			if text != c.text {
				t.Errorf("%q stripped to %q, want %q", c.src, text, c.text)
			}
			if len(cols) != len(text) {
				t.Errorf("%q gave %d columns for %d bytes", c.src, len(cols), len(text))
			}
			if len(cols) != 0 && !reflect.DeepEqual(cols, c.cols) {
				t.Errorf("%q gave columns %v, want %v", c.src, cols, c.cols)
			}
		})
	}
}

func TestScanSpan(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		sc    scan
		split int
	}{
		{"empty", "", scan{addsub: -1, muldiv: -1, open: -1, close: -1}, -1},
		{"atom", "x", scan{addsub: -1, muldiv: -1, open: -1, close: -1}, -1},
		{"add", "1+2", scan{addsub: 1, muldiv: -1, open: -1, close: -1}, 1},
		{"leftmost", "1-2-3", scan{addsub: 1, muldiv: -1, open: -1, close: -1}, 1},
		{"prec", "2*3+4", scan{addsub: 3, muldiv: 1, open: -1, close: -1}, 3},
		{"mul", "8/4/2", scan{addsub: -1, muldiv: 1, open: -1, close: -1}, 1},
		{"unary", "-x", scan{addsub: 0, muldiv: -1, open: -1, close: -1}, 0},
		{"brackets", "(1+2)*3", scan{addsub: -1, muldiv: 5, open: -1, close: -1}, 5},
		{"call", "f(1+2)", scan{addsub: -1, muldiv: -1, open: -1, close: -1}, -1},
		{"open", "((1)", scan{addsub: -1, muldiv: -1, depth: 1, open: 0, close: -1}, -1},
		{"open-later", "(1)*(2", scan{addsub: -1, muldiv: 3, depth: 1, open: 4, close: -1}, 3},
		{"close", "1)", scan{addsub: -1, muldiv: -1, depth: -1, open: -1, close: 1}, -1},
		{"close-first", "1)+(2", scan{addsub: -1, muldiv: -1, open: -1, close: 1}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := scanspan(c.text)
			if sc != c.sc {
				t.Errorf("%q scanned to %+v, want %+v", c.text, sc, c.sc)
			}
			if k := sc.split(); k != c.split {
				t.Errorf("%q split at %d, want %d", c.text, k, c.split)
			}
		})
	}
}

func TestFmtNum(t *testing.T) {
	cases := []struct {
		x    float64
		bits int
		s    string
	}{
		{0, 64, "0"},
		{1.5, 64, "1.5"},
		{1e21, 64, "1e21"},
		{1.5e-9, 64, "0.0000000015"},
		{0.1, 32, "0.1"},
	}
	for _, c := range cases {
		if s := fmtnum(c.x, c.bits); s != c.s {
			t.Errorf("fmtnum(%g, %d) gave %q, want %q", c.x, c.bits, s, c.s)
		}
	}
}
