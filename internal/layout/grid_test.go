package layout

import "testing"

func cell(row, col int) Item {
	return Item{
		Row: GridHint{Position: row, Span: 1, Weight: 1},
		Col: GridHint{Position: col, Span: 1, Weight: 1},
	}
}

func TestGrid(t *testing.T) {
	type tc struct {
		height   int
		width    int
		bordered bool
		items    []Item
		want     []Rect
	}

	tests := map[string]tc{
		"no children": {
			height: 10,
			width:  10,
			want:   nil,
		},
		"bordered three columns absorb rounding in last cell": {
			height:   10,
			width:    90,
			bordered: true,
			items:    []Item{cell(0, 0), cell(0, 1), cell(0, 2)},
			want: []Rect{
				NewRect(1, 1, 8, 30),
				NewRect(1, 31, 8, 30),
				NewRect(1, 61, 8, 28),
			},
		},
		"two by two": {
			height: 10,
			width:  20,
			items:  []Item{cell(0, 0), cell(0, 1), cell(1, 0), cell(1, 1)},
			want: []Rect{
				NewRect(0, 0, 5, 10),
				NewRect(0, 10, 5, 10),
				NewRect(5, 0, 5, 10),
				NewRect(5, 10, 5, 10),
			},
		},
		"column weights": {
			height: 10,
			width:  40,
			items: []Item{
				{Row: DefaultGridHint(), Col: GridHint{Position: 0, Span: 1, Weight: 3}},
				cell(0, 1),
			},
			want: []Rect{
				NewRect(0, 0, 10, 30),
				NewRect(0, 30, 10, 10),
			},
		},
		"row weight is the maximum of the row": {
			height: 8,
			width:  10,
			items: []Item{
				{Row: GridHint{Position: 0, Span: 1, Weight: 2}, Col: DefaultGridHint()},
				{Row: GridHint{Position: 0, Span: 1, Weight: 3}, Col: GridHint{Position: 1, Span: 1, Weight: 1}},
				cell(1, 0),
			},
			want: []Rect{
				NewRect(0, 0, 6, 5),
				NewRect(0, 5, 6, 5),
				NewRect(6, 0, 2, 5),
			},
		},
		"column span": {
			height: 10,
			width:  20,
			items: []Item{
				{Row: DefaultGridHint(), Col: GridHint{Position: 0, Span: 2, Weight: 1}},
				cell(1, 0),
				cell(1, 1),
			},
			want: []Rect{
				NewRect(0, 0, 5, 20),
				NewRect(5, 0, 5, 10),
				NewRect(5, 10, 5, 10),
			},
		},
		"positions map by first appearance": {
			height: 4,
			width:  20,
			items:  []Item{cell(0, 5), cell(0, 2)},
			want: []Rect{
				NewRect(0, 0, 4, 10),
				NewRect(0, 10, 4, 10),
			},
		},
		"span past the last track": {
			height: 4,
			width:  12,
			items: []Item{
				{Row: DefaultGridHint(), Col: GridHint{Position: 0, Span: 3, Weight: 1}},
			},
			want: []Rect{NewRect(0, 0, 4, 12)},
		},
		"rows clamp to the content box": {
			height: 10,
			width:  4,
			items:  []Item{cell(0, 0), cell(1, 0), cell(2, 0)},
			want: []Rect{
				NewRect(0, 0, 4, 4),
				NewRect(4, 0, 4, 4),
				NewRect(8, 0, 2, 4),
			},
		},
		"zero weight defaults to one": {
			height: 2,
			width:  10,
			items: []Item{
				{Row: DefaultGridHint(), Col: GridHint{Position: 0, Span: 0, Weight: 0}},
				cell(0, 1),
			},
			want: []Rect{
				NewRect(0, 0, 2, 5),
				NewRect(0, 5, 2, 5),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Grid(tt.height, tt.width, tt.bordered, tt.items)
			if len(got) != len(tt.want) {
				t.Fatalf("Grid() returned %d rects, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rect[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGrid_DoesNotMutateItems(t *testing.T) {
	items := []Item{{Row: GridHint{Span: 0, Weight: 0}, Col: GridHint{Span: 0, Weight: 0}}}
	Grid(5, 5, false, items)
	if items[0].Row.Span != 0 || items[0].Col.Weight != 0 {
		t.Errorf("Grid() mutated its input: %+v", items[0])
	}
}

// A single row of equally weighted columns must tile the content box:
// no gaps, no overlap and never past the edge.
func TestGrid_RowTilesContentBox(t *testing.T) {
	for width := 3; width <= 120; width++ {
		for n := 1; n <= 7; n++ {
			for _, bordered := range []bool{false, true} {
				items := make([]Item, n)
				for i := range items {
					items[i] = cell(0, i)
				}
				rects := Grid(5, width, bordered, items)

				content, origin := width, 0
				if bordered {
					content, origin = width-2, 1
				}

				sum, next, complete := 0, origin, true
				for _, r := range rects {
					if r.Width <= 0 {
						complete = false
						continue
					}
					if r.X != next {
						t.Fatalf("width=%d n=%d bordered=%v: gap or overlap at x=%d, want %d", width, n, bordered, r.X, next)
					}
					if r.Right() > content+origin {
						t.Fatalf("width=%d n=%d bordered=%v: rect %+v past the content box", width, n, bordered, r)
					}
					next = r.Right()
					sum += r.Width
				}
				if sum > content {
					t.Fatalf("width=%d n=%d bordered=%v: widths sum to %d, content is %d", width, n, bordered, sum, content)
				}
				if complete && sum != content {
					t.Fatalf("width=%d n=%d bordered=%v: widths sum to %d, want %d", width, n, bordered, sum, content)
				}
			}
		}
	}
}
