package widark

import (
	"github.com/widark/widark/internal/debug"
	"github.com/widark/widark/internal/layout"
)

// Render allocates the widget's surface and redraws it and its subtree.
//
// A root draws onto its screen's primary surface. Any other widget derives
// its surface from the parent's at the rectangle the parent's layout
// resolved. When that fails (no parent surface, or a rectangle that does
// not fit) the widget is left unattached and nothing is drawn; the next
// Render usually succeeds.
func (w *Widget) Render() *Widget {
	if !w.allocate() {
		return w
	}

	w.behavior.Settle(w)

	s, st := w.surface, w.style
	s.Erase()
	s.Background(st.BackgroundColor)
	if st.Bordered() {
		s.Border(st.Border, st.BorderColor)
	}

	height, width := s.Size()
	text := st.Format(w.content)
	if text != "" {
		y, x := layout.Place(height, width, st.Bordered(), st.Align, StringWidth(text))
		if err := s.Print(y, x, text, st.Color); err != nil {
			debug.Log("content clipped", "widget", w.name, "err", err)
		}
	}

	w.layoutChildren(height, width)

	w.behavior.Amend(w)
	s.Refresh()
	return w
}

// allocate (re)acquires the widget's surface and syncs the hit box to it.
func (w *Widget) allocate() bool {
	switch {
	case w.parent == nil && w.screen != nil:
		w.surface = w.screen.Root()
	case w.parent == nil:
		w.surface = nil
	case w.parent.surface == nil:
		w.surface = nil
	default:
		f := w.frame
		s, err := w.parent.surface.Derive(f.Y, f.X, f.Height, f.Width)
		if err != nil {
			debug.Log("allocation failed", "widget", w.name, "err", err)
			w.surface = nil
			return false
		}
		w.surface = s
	}
	if w.surface == nil {
		return false
	}

	b := w.surface.Bounds()
	w.YMin, w.XMin, w.YMax, w.XMax = b.Y, b.X, b.Bottom(), b.Right()
	return true
}

// layoutChildren renders relative children through the grid, then fixed
// children that arrange to a non-empty rectangle.
func (w *Widget) layoutChildren(height, width int) {
	var relative, fixed []*Widget
	for _, child := range w.children {
		if child.position == Fixed {
			fixed = append(fixed, child)
		} else {
			relative = append(relative, child)
		}
	}

	if len(relative) > 0 {
		items := make([]layout.Item, len(relative))
		for i, child := range relative {
			items[i] = layout.Item{Row: child.row, Col: child.col}
		}
		rects := layout.Grid(height, width, w.style.Bordered(), items)
		for i, child := range relative {
			child.frame = rects[i]
			child.Render()
		}
	}

	for _, child := range fixed {
		r, ok := layout.Arrange(height, width, layout.Fixed{
			Pin:        child.pin,
			Proportion: child.proportion,
			Align:      child.align,
			Margin:     child.margin,
		})
		if !ok {
			child.surface = nil
			continue
		}
		child.frame = r
		child.Render()
	}
}
