package components

import "github.com/widark/widark"

// Spacer is an empty widget that takes up a grid cell.
type Spacer struct {
	*widark.Widget
}

// NewSpacer creates a spacer under parent.
func NewSpacer(parent *widark.Widget, opts ...widark.Option) *Spacer {
	return &Spacer{Widget: widark.New(parent, opts...)}
}
