package widark

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Surface is a rectangular window onto the screen buffer. Surfaces nest:
// a derived surface shares its parent's cells, so drawing into it draws
// into the parent.
type Surface struct {
	screen *Screen
	rect   Rect // absolute screen coordinates
}

// Derive returns a sub-surface at (y, x) relative to s. The rectangle must
// have a positive size and lie entirely inside s; otherwise the error
// wraps ErrGeometry.
func (s *Surface) Derive(y, x, height, width int) (*Surface, error) {
	r := NewRect(s.rect.Y+y, s.rect.X+x, height, width)
	if height <= 0 || width <= 0 || y < 0 || x < 0 || !s.rect.ContainsRect(r) {
		return nil, fmt.Errorf("deriving %dx%d at (%d, %d) from %dx%d: %w",
			height, width, y, x, s.rect.Height, s.rect.Width, ErrGeometry)
	}
	return &Surface{screen: s.screen, rect: r}, nil
}

// Size returns the surface dimensions.
func (s *Surface) Size() (height, width int) {
	return s.rect.Height, s.rect.Width
}

// Origin returns the absolute screen position of the top-left cell.
func (s *Surface) Origin() (y, x int) {
	return s.rect.Y, s.rect.X
}

// Bounds returns the absolute screen rectangle of the surface.
func (s *Surface) Bounds() Rect {
	return s.rect
}

// Screen returns the screen the surface draws onto.
func (s *Surface) Screen() *Screen {
	return s.screen
}

// Erase blanks every cell of the surface.
func (s *Surface) Erase() {
	s.screen.buf.ClearRect(s.rect)
}

// Background paints every cell of the surface with the given color.
func (s *Surface) Background(c Color) {
	s.screen.buf.Fill(s.rect, ' ', s.screen.Style(c))
}

// Border draws a box along the edges of the surface. See Style.Border for
// the glyph order.
func (s *Surface) Border(glyphs []rune, c Color) {
	g := BorderGlyphs(glyphs)
	style := s.screen.Style(c)
	bottom, right := s.rect.Height-1, s.rect.Width-1

	for x := 1; x < right; x++ {
		s.setRune(0, x, g[BorderTop], style)
		s.setRune(bottom, x, g[BorderBottom], style)
	}
	for y := 1; y < bottom; y++ {
		s.setRune(y, 0, g[BorderLeft], style)
		s.setRune(y, right, g[BorderRight], style)
	}
	s.setRune(0, 0, g[BorderTopLeft], style)
	s.setRune(0, right, g[BorderTopRight], style)
	s.setRune(bottom, 0, g[BorderBottomLeft], style)
	s.setRune(bottom, right, g[BorderBottomRight], style)
}

// Print writes text at (y, x) relative to the surface, wrapping at the
// right edge onto the next line's first column. Text that runs past the
// bottom-right cell is drawn as far as it fits and an error wrapping
// ErrGeometry is returned.
func (s *Surface) Print(y, x int, text string, c Color) error {
	if !s.inside(y, x) {
		return fmt.Errorf("printing at (%d, %d) in %dx%d: %w", y, x, s.rect.Height, s.rect.Width, ErrGeometry)
	}

	style := s.screen.Style(c)
	for _, r := range text {
		if r == '\n' {
			y, x = y+1, 0
			continue
		}
		width := RuneWidth(r)
		if x+width > s.rect.Width {
			y, x = y+1, 0
		}
		if y >= s.rect.Height {
			return fmt.Errorf("printing %q: %w", text, ErrGeometry)
		}
		if !s.setRune(y, x, r, style) {
			return fmt.Errorf("printing %q: %c wider than %d columns: %w", text, r, s.rect.Width, ErrGeometry)
		}
		x += width
	}
	return nil
}

// PrintAt writes a single line at (y, x) relative to the surface, clipped
// to the surface. It returns the display width written.
func (s *Surface) PrintAt(y, x int, text string, c Color) int {
	return s.screen.buf.SetString(s.rect.Y+y, s.rect.X+x, text, s.screen.Style(c), s.rect)
}

// Refresh marks the surface for output on the next Screen.Show.
func (s *Surface) Refresh() {
	s.screen.pending = true
}

// setRune draws r at (y, x) relative to the surface. A rune that would
// spill past the right edge is replaced by a blank and false is returned.
func (s *Surface) setRune(y, x int, r rune, style tcell.Style) bool {
	if x+RuneWidth(r) > s.rect.Width {
		s.screen.buf.SetRune(s.rect.Y+y, s.rect.X+x, ' ', style)
		return false
	}
	s.screen.buf.SetRune(s.rect.Y+y, s.rect.X+x, r, style)
	return true
}

func (s *Surface) inside(y, x int) bool {
	return y >= 0 && x >= 0 && y < s.rect.Height && x < s.rect.Width
}
