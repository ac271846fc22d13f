package widark

import (
	"context"
	"sync/atomic"
)

var _ Node = (*Widget)(nil)

// Position selects how a widget is laid out inside its parent.
type Position int

const (
	// Relative widgets take part in the parent's grid.
	Relative Position = iota
	// Fixed widgets are placed by pin, proportion, alignment and margin,
	// independently of the grid.
	Fixed
)

// Behavior is the set of hooks a widget kind customizes. Embed
// BaseBehavior to get no-op defaults and override what you need.
type Behavior interface {
	// Setup establishes the kind's defaults before caller options apply.
	Setup(w *Widget)
	// Build creates child widgets.
	Build(w *Widget)
	// Load runs once after the widget is gathered, off the main loop.
	// It must not touch the tree directly; use Widget.Post.
	Load(ctx context.Context, w *Widget) error
	// Settle shapes content right before drawing.
	Settle(w *Widget)
	// Amend decorates the surface right after drawing.
	Amend(w *Widget)
}

// BaseBehavior implements every Behavior hook as a no-op.
type BaseBehavior struct{}

func (BaseBehavior) Setup(*Widget) {}
func (BaseBehavior) Build(*Widget) {}
func (BaseBehavior) Load(context.Context, *Widget) error { return nil }
func (BaseBehavior) Settle(*Widget) {}
func (BaseBehavior) Amend(*Widget) {}

// Widget is a rectangular node of the interface tree. It owns its children,
// its style and placement hints, and, while attached, a surface it draws
// into. A nil surface means the widget is currently not rendered.
type Widget struct {
	Target

	behavior Behavior
	parent   *Widget
	children []*Widget

	content  string
	style    Style
	position Position
	name     string
	group    string

	// Placement hints.
	pin        Rect // fixed widgets only
	row, col   GridHint
	proportion Proportion
	align      string
	margin     Margin

	autoload  bool
	autobuild bool

	surface *Surface
	frame   Rect // resolved by the parent's layout, relative to the parent

	// Set on the root by Mount.
	screen    *Screen
	scheduler *Scheduler

	// Set by Scheduler.Schedule; read by Post from load goroutines.
	loader atomic.Pointer[Scheduler]
}

// New creates a widget appended to parent (nil for a root), applies the
// options and, when autobuild is set, builds it.
func New(parent *Widget, opts ...Option) *Widget {
	w := &Widget{
		Target:    Target{YMax: 1, XMax: 1},
		behavior:  BaseBehavior{},
		style:     DefaultStyle(),
		row:       DefaultGridHint(),
		col:       DefaultGridHint(),
		autoload:  true,
		autobuild: true,
	}
	w.self = w
	if parent != nil {
		parent.Add(w, -1)
	}
	w.Setup(opts...)
	if w.autobuild {
		w.Build()
	}
	return w
}

// NewWithBehavior creates a widget of the kind implemented by b. The kind's
// Setup runs before opts, so caller options override the kind's defaults.
func NewWithBehavior(parent *Widget, b Behavior, opts ...Option) *Widget {
	return New(parent, append([]Option{WithBehavior(b)}, opts...)...)
}

// Setup applies options as a partial update: anything an option does not
// mention keeps its previous value.
func (w *Widget) Setup(opts ...Option) *Widget {
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Build runs the kind's Build hook.
func (w *Widget) Build() *Widget {
	w.behavior.Build(w)
	return w
}

// Behavior returns the kind implementation.
func (w *Widget) Behavior() Behavior {
	return w.behavior
}

// Content returns the unformatted content.
func (w *Widget) Content() string {
	return w.content
}

// Styling returns a copy of the current style.
func (w *Widget) Styling() Style {
	return w.style
}

// Position returns how the widget is laid out.
func (w *Widget) Position() Position {
	return w.position
}

// Name returns the name tag.
func (w *Widget) Name() string {
	return w.name
}

// GroupName returns the group tag.
func (w *Widget) GroupName() string {
	return w.group
}

// Row returns the row grid hint.
func (w *Widget) Row() GridHint {
	return w.row
}

// Col returns the column grid hint.
func (w *Widget) Col() GridHint {
	return w.col
}

// Pinned returns the explicit rectangle of a fixed widget.
func (w *Widget) Pinned() Rect {
	return w.pin
}

// Frame returns the rectangle the parent's layout last resolved for the
// widget, relative to the parent.
func (w *Widget) Frame() Rect {
	return w.frame
}

// Surface returns the backing surface, or nil while unattached.
func (w *Widget) Surface() *Surface {
	return w.surface
}

// Attached reports whether the widget currently has a surface.
func (w *Widget) Attached() bool {
	return w.surface != nil
}

// Autoload reports whether Gather schedules the widget's Load.
func (w *Widget) Autoload() bool {
	return w.autoload
}

// Mount binds a root widget to the screen it renders onto and the
// scheduler its subtree loads on.
func (w *Widget) Mount(screen *Screen, scheduler *Scheduler) *Widget {
	w.screen = screen
	w.scheduler = scheduler
	return w
}

// Screen returns the screen of the tree's root, or nil when unmounted.
func (w *Widget) Screen() *Screen {
	return w.Root().screen
}

// Scheduler returns the scheduler of the tree's root, or nil when unmounted.
func (w *Widget) Scheduler() *Scheduler {
	return w.Root().scheduler
}
