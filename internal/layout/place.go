package layout

// Place returns the offset of the first content cell inside a widget of
// the given size, for content whose formatted display width is fill.
//
// The first character of align positions the content vertically and the
// second horizontally: L is flush with the start, C is centred and R is
// flush with the far edge. Wrapped content is estimated to need
// ceil(fill/width) lines. A border shifts both offsets by one.
func Place(height, width int, bordered bool, align string, fill int) (y, x int) {
	origin, loss := 0, 0
	if bordered {
		origin, loss = 1, 2
	}
	height = max(height-loss, 1)
	width = max(width-loss, 1)

	vertical, horizontal := Alignment(align)
	lines := (fill + width - 1) / width

	y = offset(vertical, height, lines)
	x = offset(horizontal, width, fill)
	return y + origin, x + origin
}
