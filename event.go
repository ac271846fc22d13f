package widark

import (
	"fmt"
	"strings"
)

// Category is the broad kind of an Event.
type Category int

const (
	Mouse Category = iota + 1
	Keyboard
	Custom
)

var categoryNames = map[Category]string{
	Mouse:    "Mouse",
	Keyboard: "Keyboard",
	Custom:   "Custom",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory resolves a category name, ignoring case.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown event category %q", name)
}

// Phase is the stage of a dispatch traversal.
type Phase int

const (
	// PhaseNone marks an event that has not been dispatched yet.
	PhaseNone Phase = iota
	// Capture visits capturing listeners from the root down to the target.
	Capture
	// AtTarget is the point where the event reaches the addressed node.
	AtTarget
	// Bubble visits bubbling listeners from the target up to the root.
	Bubble
)

func (p Phase) String() string {
	switch p {
	case Capture:
		return "capture"
	case AtTarget:
		return "target"
	case Bubble:
		return "bubble"
	default:
		return ""
	}
}

// Event describes an interaction travelling through the widget tree.
type Event struct {
	Category Category
	Type     string
	Y, X     int // absolute screen coordinates
	Key      string
	Button   int
	// Bubbles is false for events felt only by capturing ancestors and
	// the exact target.
	Bubbles bool
	// Stop ends the current traversal once set.
	Stop    bool
	Details map[string]any

	Phase   Phase
	Path    []Node // target first, root last
	Current Node
	Target  Node
}

// EventOption configures an Event at construction.
type EventOption func(*Event)

// NewEvent creates an event. It panics when category is not one of Mouse,
// Keyboard or Custom.
func NewEvent(category Category, typ string, opts ...EventOption) *Event {
	if _, ok := categoryNames[category]; !ok {
		panic(fmt.Sprintf("widark: invalid event category %d", int(category)))
	}
	ev := &Event{
		Category: category,
		Type:     typ,
		Bubbles:  true,
		Details:  map[string]any{},
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// At sets the absolute screen coordinates of the event.
func At(y, x int) EventOption {
	return func(ev *Event) {
		ev.Y, ev.X = y, x
	}
}

// WithKey sets the key name of a keyboard event.
func WithKey(key string) EventOption {
	return func(ev *Event) {
		ev.Key = key
	}
}

// WithButton sets the mouse button of a mouse event.
func WithButton(button int) EventOption {
	return func(ev *Event) {
		ev.Button = button
	}
}

// WithDetails merges free-form details into the event.
func WithDetails(details map[string]any) EventOption {
	return func(ev *Event) {
		for k, v := range details {
			ev.Details[k] = v
		}
	}
}

// NonBubbling disables the bubble phase.
func NonBubbling() EventOption {
	return func(ev *Event) {
		ev.Bubbles = false
	}
}

// WithPath supplies the dispatch path explicitly, target first. An event
// with a path skips capture resolution.
func WithPath(path ...Node) EventOption {
	return func(ev *Event) {
		ev.Path = path
	}
}

// StopPropagation ends the current traversal after the running listener.
func (ev *Event) StopPropagation() {
	ev.Stop = true
}
