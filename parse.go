package exprparse

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// Expr = Add | Sub | Mul | Div | Neg | '(' Expr ')' | '(' ')' | num | varname | funcname '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Neg = '-' Expr
//
// Binary operators split at the leftmost + or - outside brackets, or failing
// that the leftmost * or /. So a-b-c is a-(b-c) and a/b/c is a/(b/c).

// parser compiles one stripped input against a symbol table.
type parser[T constraints.Float] struct {
	syms *symtab[T]
	// cols maps byte indices of the stripped input to columns in the
	// original input.
	cols []int
	// end is the column just past the last rune of the original input.
	end int
}

// parse compiles src using the symbols currently in syms.
func parse[T constraints.Float](syms *symtab[T], src string) (*node[T], error) {
	text, cols := strip(src)
	p := parser[T]{
		syms: syms,
		cols: cols,
		end:  utf8.RuneCountInString(src) + 1,
	}
	return p.parsespan(span{text: text})
}

// col returns the original column of byte i of s.
func (p *parser[T]) col(s span, i int) int {
	if k := s.off + i; k < len(p.cols) {
		return p.cols[k]
	}
	return p.end
}

// parsespan parses a whole span. Both operands of a binary operator are
// always parsed. If both fail, the error from the right operand is returned.
func (p *parser[T]) parsespan(s span) (*node[T], error) {
	sc := scanspan(s.text)
	switch {
	case sc.close >= 0:
		return nil, &BracketError{Col: p.col(s, sc.close), Right: ")"}
	case sc.depth > 0:
		return nil, &BracketError{Col: p.col(s, sc.open), Left: "("}
	}
	op := sc.split()
	if op < 0 {
		return p.parseatom(s)
	}
	kind := binop(s.text[op])
	lhs, rhs := s.sub(0, op), s.sub(op+1, len(s.text))
	var (
		left *node[T]
		lerr error
	)
	switch {
	case lhs.text != "":
		left, lerr = p.parsespan(lhs)
	case kind == nodeSub:
		// -x -> 0 - x
		left = &node[T]{kind: nodeConst}
	default:
		return nil, &TermError{Col: p.col(s, op), Text: s.text[op : op+1], Msg: "missing left operand of"}
	}
	right, rerr := p.parsespan(rhs)
	if rerr != nil {
		return nil, rerr
	}
	if lerr != nil {
		return nil, lerr
	}
	return &node[T]{kind: kind, left: left, right: right}, nil
}

// parseatom parses a span with no operators outside brackets: a bracketed
// expression, a number, a variable, or a function call.
func (p *parser[T]) parseatom(s span) (*node[T], error) {
	t := s.text
	if t == "" {
		if v, _ := p.syms.resolve(t); v != nil {
			return &node[T]{kind: nodeVar, v: v}, nil
		}
		return nil, &TermError{Col: p.col(s, 0), Msg: "no expression"}
	}
	if t[0] == '(' && enclosed(t[1:]) {
		if len(t) == 2 {
			// () is zero.
			return &node[T]{kind: nodeConst}, nil
		}
		return p.parsespan(s.sub(1, len(t)-1))
	}
	if x, err := strconv.ParseFloat(t, bitsize[T]()); err == nil || errors.Is(err, strconv.ErrRange) {
		// Out of range literals are infinity or zero.
		return &node[T]{kind: nodeConst, val: T(x)}, nil
	}
	v, _ := p.syms.resolve(t)
	if v != nil {
		return &node[T]{kind: nodeVar, v: v, name: t}, nil
	}
	if k := strings.IndexByte(t, '('); k > 0 && t[len(t)-1] == ')' {
		name := t[:k]
		_, fn := p.syms.resolve(name)
		if fn == nil {
			return nil, &SymbolError{Col: p.col(s, 0), Name: name}
		}
		arg, err := p.parsespan(s.sub(k+1, len(t)-1))
		if err != nil {
			return nil, err
		}
		return &node[T]{kind: nodeCall, fn: fn, name: name, left: arg}, nil
	}
	return nil, &TermError{Col: p.col(s, 0), Text: t, Msg: "unknown term"}
}

// enclosed returns whether the last byte of t closes an open bracket that
// immediately precedes t.
func enclosed(t string) bool {
	return t != "" && t[len(t)-1] == ')' && scanspan(t[:len(t)-1]).close < 0
}
