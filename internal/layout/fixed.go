package layout

// Fixed holds the placement hints of an absolutely positioned child.
type Fixed struct {
	// Pin is the explicit rectangle, relative to the parent.
	Pin Rect
	// Proportion overrides Pin's size as a fraction of the parent's size.
	Proportion Proportion
	// Align recomputes Pin's origin when set (see [Alignment]).
	Align string
	// Margin bounds the final origin.
	Margin Margin
}

// Arrange resolves a fixed child inside a parent of the given raw size.
// The explicit pin is taken first, proportion then overrides its size,
// alignment recomputes its origin and the margins clamp the result.
// It returns false when the resolved rectangle has no area; such
// children are never rendered.
func Arrange(parentHeight, parentWidth int, f Fixed) (Rect, bool) {
	r := f.Pin

	if f.Proportion.Height > 0 {
		r.Height = int(f.Proportion.Height * float64(parentHeight))
	}
	if f.Proportion.Width > 0 {
		r.Width = int(f.Proportion.Width * float64(parentWidth))
	}
	if r.Height <= 0 || r.Width <= 0 {
		return Rect{}, false
	}

	if f.Align != "" {
		vertical, horizontal := Alignment(f.Align)
		r.Y = offset(vertical, parentHeight, r.Height)
		r.X = offset(horizontal, parentWidth, r.Width)
	}

	m := f.Margin
	r.Y = max(min(r.Y, parentHeight-m.Bottom-r.Height), m.Top)
	r.X = max(min(r.X, parentWidth-m.Right-r.Width), m.Left)

	return r, true
}
