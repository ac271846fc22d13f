package components

import "github.com/widark/widark"

// Button is a clickable, centred "< label >".
type Button struct {
	*widark.Widget
}

type buttonKind struct{ widark.BaseBehavior }

func (buttonKind) Setup(w *widark.Widget) {
	w.Setup(widark.WithStyle(widark.Style{
		Color:    widark.PRIMARY,
		Align:    "C",
		Template: "< {} >",
	}))
}

// NewButton creates a button under parent. A non-nil command is called on
// every click that reaches the button.
func NewButton(parent *widark.Widget, content string, command widark.Handler, opts ...widark.Option) *Button {
	opts = append([]widark.Option{widark.WithContent(content)}, opts...)
	b := &Button{Widget: widark.NewWithBehavior(parent, buttonKind{}, opts...)}
	if command != nil {
		b.On("click", command)
	}
	return b
}
