package widark

import (
	"github.com/gdamore/tcell/v2"
	"github.com/widark/widark/internal/debug"
)

// Screen owns the terminal, the cell buffer every surface draws into, the
// palette resolving logical colors and the input cursor.
type Screen struct {
	term    Terminal
	buf     *Buffer
	palette Palette
	root    *Surface

	cursorY, cursorX int
	pending          bool // a surface was refreshed since the last Show
	full             bool // the next Show repaints everything
}

// NewScreen creates a Screen sized to the terminal. A nil palette selects
// DefaultPalette.
func NewScreen(term Terminal, palette Palette) *Screen {
	if palette == nil {
		palette = DefaultPalette()
	}
	s := &Screen{term: term, palette: palette, buf: NewBuffer(0, 0)}
	s.Resize()
	return s
}

// Resize re-reads the terminal size and replaces the primary surface.
// Surfaces derived before the resize keep their old geometry; widgets pick
// up the new one on their next Render.
func (s *Screen) Resize() (height, width int) {
	height, width = s.term.Size()
	s.buf.Resize(height, width)
	s.root = &Surface{screen: s, rect: NewRect(0, 0, height, width)}
	s.full = true
	debug.Log("screen resized", "height", height, "width", width)
	return height, width
}

// Root returns the primary surface covering the whole terminal.
func (s *Screen) Root() *Surface {
	return s.root
}

// Size returns the screen dimensions.
func (s *Screen) Size() (height, width int) {
	return s.buf.Height(), s.buf.Width()
}

// Buffer returns the back buffer surfaces draw into.
func (s *Screen) Buffer() *Buffer {
	return s.buf
}

// Palette returns the palette resolving logical colors.
func (s *Screen) Palette() Palette {
	return s.palette
}

// SetPalette replaces the palette; the whole screen is repainted on the
// next Show.
func (s *Screen) SetPalette(p Palette) {
	s.palette = p
	s.full = true
}

// Style resolves a logical color through the palette.
func (s *Screen) Style(c Color) tcell.Style {
	return s.palette.Style(c)
}

// SetCursor moves the input cursor, clamped to the screen.
func (s *Screen) SetCursor(y, x int) {
	s.cursorY = max(min(y, s.buf.Height()-1), 0)
	s.cursorX = max(min(x, s.buf.Width()-1), 0)
	s.term.SetCursor(s.cursorY, s.cursorX)
}

// Cursor returns the input cursor position.
func (s *Screen) Cursor() (y, x int) {
	return s.cursorY, s.cursorX
}

// Show writes refreshed surfaces to the terminal. It repaints everything
// after a resize or palette change.
func (s *Screen) Show() {
	switch {
	case s.full:
		RenderFull(s.term, s.buf)
	case s.pending:
		Render(s.term, s.buf)
	default:
		return
	}
	s.full, s.pending = false, false
	s.term.SetCursor(s.cursorY, s.cursorX)
}
