package layout

import "math"

// Item is one relatively positioned child as seen by the grid.
type Item struct {
	Row GridHint
	Col GridHint
}

// axis accumulates the distinct positions of one grid axis in first-seen
// order together with the largest weight requested for each.
type axis struct {
	index   map[int]int
	weights []int
}

func newAxis() *axis {
	return &axis{index: make(map[int]int)}
}

func (a *axis) add(h GridHint) {
	i, ok := a.index[h.Position]
	if !ok {
		i = len(a.weights)
		a.index[h.Position] = i
		a.weights = append(a.weights, 1)
	}
	a.weights[i] = max(a.weights[i], h.Weight)
}

func (a *axis) total() int {
	sum := 0
	for _, w := range a.weights {
		sum += w
	}
	return sum
}

// origin is the ceiling-rounded cumulative extent of every track before index.
func (a *axis) origin(index int, split float64) int {
	o := 0
	for j := 0; j < index; j++ {
		o += int(math.Ceil(float64(a.weights[j]) * split))
	}
	return o
}

// extent covers span tracks starting at index; tracks past the end count as zero.
func (a *axis) extent(index, span int, split float64) int {
	weight := 0
	for j := index; j < index+span && j < len(a.weights); j++ {
		weight += a.weights[j]
	}
	return int(math.Ceil(float64(weight) * split))
}

// Grid computes the rectangle of every item inside a parent of the given
// size. Rectangles are relative to the parent's top-left corner and are
// returned in item order.
//
// A bordered parent loses one cell on every side. The last cell of a row
// or column absorbs rounding: extents are clamped so no child ever
// reaches past the content box.
func Grid(height, width int, bordered bool, items []Item) []Rect {
	if len(items) == 0 {
		return nil
	}

	origin := 0
	if bordered {
		origin = 1
		height, width = height-2, width-2
	}

	items = append([]Item(nil), items...)
	rows, cols := newAxis(), newAxis()
	for i := range items {
		items[i].Row = items[i].Row.Normalize()
		items[i].Col = items[i].Col.Normalize()
		rows.add(items[i].Row)
		cols.add(items[i].Col)
	}

	heightSplit := float64(height) / float64(rows.total())
	widthSplit := float64(width) / float64(cols.total())

	rects := make([]Rect, len(items))
	for i, item := range items {
		row := rows.index[item.Row.Position]
		col := cols.index[item.Col.Position]

		y := rows.origin(row, heightSplit) + origin
		x := cols.origin(col, widthSplit) + origin

		h := rows.extent(row, item.Row.Span, heightSplit)
		h -= max(0, h+y-height-origin)

		w := cols.extent(col, item.Col.Span, widthSplit)
		w -= max(0, w+x-width-origin)

		rects[i] = Rect{Y: y, X: x, Height: h, Width: w}
	}
	return rects
}
