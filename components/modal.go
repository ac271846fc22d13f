package components

import "github.com/widark/widark"

// Modal is a backdrop covering its parent with a bordered body on top.
// Clicking the backdrop outside the body dispatches a Custom "close" event
// on the modal.
type Modal struct {
	*widark.Widget

	host *widark.Widget
	body *widark.Widget
}

// NewModal creates a modal under parent. It stays hidden until Launch.
// A non-nil onClose handles the modal's "close" events.
func NewModal(parent *widark.Widget, onClose widark.Handler, opts ...widark.Option) *Modal {
	opts = append([]widark.Option{
		widark.WithPosition(widark.Fixed),
		widark.WithProportion(1, 1),
	}, opts...)

	m := &Modal{host: parent}
	// Built detached so an unlaunched modal never renders.
	m.Widget = widark.New(nil, opts...)
	m.body = widark.New(m.Widget,
		widark.WithPosition(widark.Fixed),
		widark.WithStyle(widark.Style{Border: widark.BorderSingle}),
	)

	m.On("click", m.onBackdrop)
	if onClose != nil {
		m.On("close", onClose)
	}
	return m
}

// Body returns the bordered body widget; build the dialog under it.
func (m *Modal) Body() *widark.Widget {
	return m.body
}

// Launch shows the modal with its body at (y, x) and the given size,
// relative to the parent. The modal becomes the parent's first child so
// pointer events reach it before its siblings.
func (m *Modal) Launch(y, x, height, width int) *Modal {
	m.body.Pin(y, x, height, width)
	if m.host == nil {
		return m
	}
	m.host.Add(m.Widget, 0)
	m.host.Render()
	return m
}

// Close removes the modal from its parent and redraws the parent.
func (m *Modal) Close() *Modal {
	parent := m.Parent()
	if parent == nil {
		return m
	}
	parent.Remove(m.Widget)
	parent.Render()
	return m
}

// Launched reports whether the modal is currently in its parent.
func (m *Modal) Launched() bool {
	return m.Parent() != nil
}

func (m *Modal) onBackdrop(ev *widark.Event) error {
	if m.body.Attached() && m.body.Hit(ev) {
		return nil
	}
	return m.Dispatch(widark.NewEvent(widark.Custom, "close"))
}
