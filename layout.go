// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package widark

import "github.com/widark/widark/internal/layout"

// Rect represents a rectangle in screen order: rows (Y) before columns (X).
type Rect = layout.Rect

// GridHint places a relative widget along one axis of its parent's grid.
type GridHint = layout.GridHint

// Proportion sizes a fixed widget as a fraction of its parent.
type Proportion = layout.Proportion

// Margin keeps a fixed widget away from its parent's edges.
type Margin = layout.Margin

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(y, x, height, width int) Rect {
	return layout.NewRect(y, x, height, width)
}

// DefaultGridHint returns position 0, span 1, weight 1.
func DefaultGridHint() GridHint {
	return layout.DefaultGridHint()
}

// Place returns where content of display width fill starts inside a box
// of the given size. See the layout package for the alignment rules.
func Place(height, width int, bordered bool, align string, fill int) (y, x int) {
	return layout.Place(height, width, bordered, align, fill)
}

// Alignment splits an alignment code into its vertical and horizontal
// parts, each one of 'L', 'C' or 'R'.
func Alignment(code string) (vertical, horizontal byte) {
	return layout.Alignment(code)
}
