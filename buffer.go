package widark

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Buffer is a double-buffered 2D grid of cells.
// Writes go to the back buffer; Diff reports what changed since the last
// Swap.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built
	height int
	width  int
}

// CellChange represents a single cell that differs between front and back buffers.
type CellChange struct {
	Y, X int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the given size.
func NewBuffer(height, width int) *Buffer {
	height, width = max(height, 0), max(width, 0)
	b := &Buffer{
		front:  make([]Cell, height*width),
		back:   make([]Cell, height*width),
		height: height,
		width:  width,
	}
	for i := range b.front {
		b.front[i] = blank()
		b.back[i] = blank()
	}
	return b
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.height, b.width)
}

// idx converts (y, x) coordinates to a flat index, -1 when out of bounds.
func (b *Buffer) idx(y, x int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back-buffer cell at (y, x), or the zero Cell when out
// of bounds.
func (b *Buffer) Cell(y, x int) Cell {
	i := b.idx(y, x)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

// SetCell sets the back-buffer cell at (y, x). Out of bounds is a no-op.
func (b *Buffer) SetCell(y, x int, c Cell) {
	i := b.idx(y, x)
	if i < 0 {
		return
	}
	b.back[i] = c
}

// SetRune sets a rune at (y, x), handling wide characters and clearing any
// wide character it overlaps.
func (b *Buffer) SetRune(y, x int, r rune, style tcell.Style) {
	if b.idx(y, x) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(y, x)
	if current.IsContinuation() {
		b.clearWideAt(y, x)
	}
	if current.Width == 2 && x+1 < b.width {
		b.SetCell(y, x+1, blank())
	}
	if width == 2 && x+1 < b.width {
		if next := b.Cell(y, x+1); next.Width == 2 || next.IsContinuation() {
			b.clearWideAt(y, x+1)
		}
	}

	// A wide rune cannot start in the last column.
	if width == 2 && x+1 >= b.width {
		b.SetCell(y, x, NewCell(' ', style))
		return
	}

	b.SetCell(y, x, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(y, x+1, Cell{Style: style})
	}
}

func (b *Buffer) clearWideAt(y, x int) {
	cell := b.Cell(y, x)
	switch {
	case cell.IsContinuation():
		if x > 0 {
			b.SetCell(y, x-1, blank())
		}
		b.SetCell(y, x, blank())
	case cell.Width == 2:
		b.SetCell(y, x, blank())
		b.SetCell(y, x+1, blank())
	}
}

// SetString writes s starting at (y, x) clipped to clip, without wrapping.
// It returns the display width consumed.
func (b *Buffer) SetString(y, x int, s string, style tcell.Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if !clip.Contains(y, clip.X) {
		return 0
	}

	total := 0
	for _, r := range s {
		width := RuneWidth(r)
		if x >= clip.Right() {
			break
		}
		if x >= clip.X && x+width <= clip.Right() {
			b.SetRune(y, x, r, style)
			total += width
		}
		x += width
	}
	return total
}

// Fill fills a rectangle with the given rune and style.
func (b *Buffer) Fill(rect Rect, r rune, style tcell.Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(y, x, ' ', style)
				x++
				continue
			}
			b.SetRune(y, x, r, style)
			x += width
		}
	}
}

// Clear clears the entire back buffer.
func (b *Buffer) Clear() {
	b.ClearRect(b.Rect())
}

// ClearRect resets a rectangle to blank cells.
func (b *Buffer) ClearRect(rect Rect) {
	b.Fill(rect, ' ', tcell.StyleDefault)
}

// Diff returns all cells that changed between front and back buffers in
// row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for i := range b.back {
		if !b.back[i].Equal(b.front[i]) {
			changes = append(changes, CellChange{Y: i / b.width, X: i % b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Invalidate marks every front cell as unknown so the next Diff reports
// the whole buffer.
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = Cell{Rune: -1}
	}
}

// Resize changes the buffer dimensions, preserving the overlapping region.
func (b *Buffer) Resize(height, width int) {
	height, width = max(height, 0), max(width, 0)
	if height == b.height && width == b.width {
		return
	}

	next := NewBuffer(height, width)
	for y := range min(height, b.height) {
		for x := range min(width, b.width) {
			next.front[y*width+x] = b.front[y*b.width+x]
			next.back[y*width+x] = b.back[y*b.width+x]
		}
	}
	*b = *next
}

// String renders the back buffer for debugging, one line per row.
func (b *Buffer) String() string {
	return b.render(false)
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	return b.render(true)
}

func (b *Buffer) render(trim bool) string {
	lines := make([]string, b.height)
	for y := range b.height {
		var line strings.Builder
		for x := range b.width {
			cell := b.back[y*b.width+x]
			switch {
			case cell.IsContinuation():
			case cell.Rune == 0:
				line.WriteRune(' ')
			default:
				line.WriteRune(cell.Rune)
			}
		}
		lines[y] = line.String()
		if trim {
			lines[y] = strings.TrimRight(lines[y], " ")
		}
	}
	return strings.Join(lines, "\n")
}
