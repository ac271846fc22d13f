package layout

import "strings"

// GridHint places a relative child along one axis of its parent's grid.
type GridHint struct {
	// Position identifies the row or column. Only the order in which
	// positions are first seen matters, not their numeric value.
	Position int
	// Span is the number of consecutive rows or columns covered.
	Span int
	// Weight is the relative share of the parent's extent.
	Weight int
}

// DefaultGridHint returns the hint of a freshly created widget.
func DefaultGridHint() GridHint {
	return GridHint{Position: 0, Span: 1, Weight: 1}
}

// Normalize clamps Span and Weight to at least one.
func (g GridHint) Normalize() GridHint {
	g.Span = max(g.Span, 1)
	g.Weight = max(g.Weight, 1)
	return g
}

// Proportion sizes a fixed child as a fraction of its parent.
// A zero component leaves the explicit size on that axis untouched.
type Proportion struct {
	Height float64
	Width  float64
}

// Margin keeps a fixed child away from its parent's edges.
type Margin struct {
	Left, Top, Right, Bottom int
}

// Alignment splits a two-character alignment code into its vertical and
// horizontal components. A single character applies to both axes and an
// empty code means top-left.
func Alignment(code string) (vertical, horizontal byte) {
	code = strings.ToUpper(code)
	switch len(code) {
	case 0:
		return 'L', 'L'
	case 1:
		return code[0], code[0]
	default:
		return code[0], code[1]
	}
}

// offset positions an extent of size fill inside size along one axis.
func offset(code byte, size, fill int) int {
	switch code {
	case 'C':
		return max(size-fill, 0) / 2
	case 'R':
		return max(size-fill, 0)
	default:
		return 0
	}
}
