package widark

// Border glyph indexes, in curses box order.
const (
	BorderLeft = iota
	BorderRight
	BorderTop
	BorderBottom
	BorderTopLeft
	BorderTopRight
	BorderBottomLeft
	BorderBottomRight
)

// Preset border glyph sets for Style.Border.
var (
	// BorderSingle uses the default single-line box glyphs.
	BorderSingle = []rune{0}
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble = []rune{'║', '║', '═', '═', '╔', '╗', '╚', '╝'}
	// BorderRounded uses single lines with rounded corners.
	BorderRounded = []rune{'│', '│', '─', '─', '╭', '╮', '╰', '╯'}
	// BorderThick uses heavy box-drawing characters.
	BorderThick = []rune{'┃', '┃', '━', '━', '┏', '┓', '┗', '┛'}
)

var defaultBorder = [8]rune{'│', '│', '─', '─', '┌', '┐', '└', '┘'}

// BorderGlyphs expands a possibly partial glyph list into the full set of
// eight, substituting defaults for zero or missing glyphs.
func BorderGlyphs(glyphs []rune) [8]rune {
	out := defaultBorder
	for i, g := range glyphs {
		if i >= len(out) {
			break
		}
		if g != 0 {
			out[i] = g
		}
	}
	return out
}
