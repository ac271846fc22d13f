package widark

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell represents a single character cell in the screen buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune        // The character (0 for continuation cells)
	Style tcell.Style // Resolved palette style
	Width uint8       // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style tcell.Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether this cell continues a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style == other.Style && c.Width == other.Width
}

// blank is the cell every buffer position starts from.
func blank() Cell {
	return NewCell(' ', tcell.StyleDefault)
}

// RuneWidth returns the display width of a rune in terminal cells,
// never less than one.
func RuneWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
