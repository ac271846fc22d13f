package widark

import "slices"

// Node is anything that can sit on a dispatch path. Widget and Target
// implement it.
type Node interface {
	target() *Target
}

// Handler reacts to an event. A non-nil error aborts the dispatch and is
// returned to whoever dispatched the event.
type Handler func(*Event) error

// Listener is a registered handler. Listeners are compared by identity, so
// keep the pointer to remove it later.
type Listener struct {
	Handle Handler
}

// NewListener wraps fn in a Listener.
func NewListener(fn Handler) *Listener {
	return &Listener{Handle: fn}
}

// Target is an event node: a half-open bounding box in screen coordinates
// plus capturing and bubbling listener registries keyed by event type.
type Target struct {
	// Bounding box; the max edges are exclusive.
	YMin, XMin, YMax, XMax int

	parent Node
	self   Node // the embedding node, reported on event paths

	capture map[string][]*Listener
	bubble  map[string][]*Listener
}

// NewTarget returns a standalone node with the default 1x1 box at the
// origin.
func NewTarget() *Target {
	t := &Target{YMax: 1, XMax: 1}
	t.self = t
	return t
}

func (t *Target) target() *Target {
	return t
}

func (t *Target) node() Node {
	if t.self != nil {
		return t.self
	}
	return t
}

// SetParent links the node to its parent. Widgets manage this themselves.
func (t *Target) SetParent(parent Node) {
	t.parent = parent
}

// ParentNode returns the parent node, or nil at the root.
func (t *Target) ParentNode() Node {
	return t.parent
}

// Hit reports whether the event coordinates fall inside the box.
func (t *Target) Hit(ev *Event) bool {
	return t.YMin <= ev.Y && ev.Y < t.YMax && t.XMin <= ev.X && ev.X < t.XMax
}

func (t *Target) registry(capture bool) map[string][]*Listener {
	if capture {
		if t.capture == nil {
			t.capture = map[string][]*Listener{}
		}
		return t.capture
	}
	if t.bubble == nil {
		t.bubble = map[string][]*Listener{}
	}
	return t.bubble
}

// Listen registers l for events of type typ. Capturing listeners run on the
// way down to the target, the others on the way back up. Registering the
// same listener twice is a no-op.
func (t *Target) Listen(typ string, l *Listener, capture bool) {
	reg := t.registry(capture)
	if slices.Contains(reg[typ], l) {
		return
	}
	reg[typ] = append(reg[typ], l)
}

// Ignore removes the given listeners. With none given it removes every
// listener for the type and phase. Unknown listeners are ignored.
func (t *Target) Ignore(typ string, capture bool, ls ...*Listener) {
	reg := t.registry(capture)
	if len(ls) == 0 {
		delete(reg, typ)
		return
	}
	reg[typ] = slices.DeleteFunc(reg[typ], func(l *Listener) bool {
		return slices.Contains(ls, l)
	})
}

// On registers a bubbling handler and returns its listener.
func (t *Target) On(typ string, fn Handler) *Listener {
	l := NewListener(fn)
	t.Listen(typ, l, false)
	return l
}

// OnCapture registers a capturing handler and returns its listener.
func (t *Target) OnCapture(typ string, fn Handler) *Listener {
	l := NewListener(fn)
	t.Listen(typ, l, true)
	return l
}

// Listeners returns the listeners registered for a type and phase.
func (t *Target) Listeners(typ string, capture bool) []*Listener {
	return slices.Clone(t.registry(capture)[typ])
}

// PathTo returns the chain from this node up to the root, this node first.
func (t *Target) PathTo() []Node {
	var path []Node
	for n := t.node(); n != nil; n = n.target().parent {
		path = append(path, n)
	}
	return path
}
