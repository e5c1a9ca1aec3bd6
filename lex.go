package exprparse

import (
	"strings"
	"unicode"
)

// Operators contains the characters which are considered to be binary
// operators. + and - bind less tightly than * and /.
const Operators = "+-*/"

// span is a piece of the whitespace-stripped input.
type span struct {
	text string
	// off is the byte offset of text in the stripped input.
	off int
}

// sub returns the part of s between byte indices i and j.
func (s span) sub(i, j int) span {
	return span{text: s.text[i:j], off: s.off + i}
}

// strip removes all whitespace from src. The second result maps each byte
// index of the stripped string to the 1-based rune column in src of the rune
// that byte belongs to.
func strip(src string) (string, []int) {
	var b strings.Builder
	b.Grow(len(src))
	cols := make([]int, 0, len(src))
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		n := b.Len()
		b.WriteRune(r)
		for i := n; i < b.Len(); i++ {
			cols = append(cols, col)
		}
	}
	return b.String(), cols
}

// scan is the result of scanning a span for operators outside brackets.
type scan struct {
	// addsub and muldiv are the byte indices of the leftmost + or - and the
	// leftmost * or /, respectively, at bracket depth zero. Each is -1 if
	// there is no such operator.
	addsub, muldiv int
	// depth is the bracket depth at the end of the span.
	depth int
	// open is the index of the outermost open bracket still unclosed at the
	// end of the span, or -1.
	open int
	// close is the index of the first close bracket that had no open bracket,
	// or -1.
	close int
}

// scanspan scans text left to right, tracking bracket depth.
func scanspan(text string) scan {
	sc := scan{addsub: -1, muldiv: -1, open: -1, close: -1}
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '(':
			if sc.depth == 0 {
				sc.open = i
			}
			sc.depth++
		case ')':
			sc.depth--
			if sc.depth == 0 {
				sc.open = -1
			}
			if sc.depth < 0 && sc.close < 0 {
				sc.close = i
			}
		case '+', '-':
			if sc.depth == 0 && sc.addsub < 0 {
				sc.addsub = i
			}
		case '*', '/':
			if sc.depth == 0 && sc.muldiv < 0 {
				sc.muldiv = i
			}
		}
	}
	return sc
}

// split returns the index of the operator at which a span divides, or -1 if
// the span contains no operator outside brackets.
func (sc scan) split() int {
	if sc.addsub >= 0 {
		return sc.addsub
	}
	return sc.muldiv
}
