package components

import "github.com/widark/widark"

// Frame is a bordered container with a title drawn over its top border.
type Frame struct {
	*widark.Widget

	title      string
	titleStyle widark.Style
}

type frameKind struct {
	widark.BaseBehavior
	frame *Frame
}

func (frameKind) Setup(w *widark.Widget) {
	w.Setup(widark.WithStyle(widark.Style{Border: widark.BorderSingle}))
}

// Amend draws the title once the border is in place.
func (k frameKind) Amend(w *widark.Widget) {
	f := k.frame
	s := w.Surface()
	if f.title == "" || s == nil {
		return
	}

	_, width := s.Size()
	origin := 0
	if w.Styling().Bordered() {
		origin, width = 1, max(width-2, 1)
	}

	// The offset centres the bare title; the template decorates around it.
	_, horizontal := widark.Alignment(f.titleStyle.Align)
	fill := widark.StringWidth(f.title)
	x := 0
	switch horizontal {
	case 'C':
		x = max(width-fill, 0) / 2
	case 'R':
		x = max(width-fill, 0)
	}
	s.PrintAt(0, x+origin, f.titleStyle.Format(f.title), f.titleStyle.Color)
}

// NewFrame creates a frame titled title under parent.
func NewFrame(parent *widark.Widget, title string, opts ...widark.Option) *Frame {
	f := &Frame{
		title:      title,
		titleStyle: widark.NewStyle(widark.Style{Align: "C", Template: " {} "}),
	}
	f.Widget = widark.NewWithBehavior(parent, frameKind{frame: f}, opts...)
	return f
}

// Title returns the frame title.
func (f *Frame) Title() string {
	return f.title
}

// SetTitle replaces the title. It shows on the next render.
func (f *Frame) SetTitle(title string) *Frame {
	f.title = title
	return f
}

// TitleStyle merges patch into the style of the title.
func (f *Frame) TitleStyle(patch widark.Style) *Frame {
	f.titleStyle.Configure(patch)
	return f
}

// TitleStyling returns the style of the title.
func (f *Frame) TitleStyling() widark.Style {
	return f.titleStyle
}
