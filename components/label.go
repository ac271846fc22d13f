package components

import "github.com/widark/widark"

// Label is centred informational text.
type Label struct {
	*widark.Widget
}

type labelKind struct{ widark.BaseBehavior }

func (labelKind) Setup(w *widark.Widget) {
	w.Setup(widark.WithStyle(widark.Style{Color: widark.INFO, Align: "C"}))
}

// NewLabel creates a label showing content under parent.
func NewLabel(parent *widark.Widget, content string, opts ...widark.Option) *Label {
	opts = append([]widark.Option{widark.WithContent(content)}, opts...)
	return &Label{Widget: widark.NewWithBehavior(parent, labelKind{}, opts...)}
}
