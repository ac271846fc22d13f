package components

import "github.com/widark/widark"

// Orientation is the direction in which a Listbox lays out its items.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// ItemTemplate creates the widget showing one datum of a Listbox.
type ItemTemplate func(parent *widark.Widget, item string, style widark.Style) *widark.Widget

// Listitem is the default item of a Listbox: the datum as its content.
type Listitem struct {
	*widark.Widget
}

// NewListitem creates a list item showing item under parent.
func NewListitem(parent *widark.Widget, item string, style widark.Style) *Listitem {
	return &Listitem{Widget: widark.New(parent, widark.WithContent(item), widark.WithStyle(style))}
}

func defaultItem(parent *widark.Widget, item string, style widark.Style) *widark.Widget {
	return NewListitem(parent, item, style).Widget
}

// Listbox is a data-driven list. Build creates one item per datum, placed
// in the grid by its index. Replace the data with SetData and call Connect
// to regenerate the items.
type Listbox struct {
	*widark.Widget

	data        []string
	template    ItemTemplate
	itemStyle   widark.Style
	limit       int // 0 = no limit
	offset      int
	orientation Orientation
	command     *widark.Listener
}

// ListboxOption configures a Listbox.
type ListboxOption func(*Listbox)

// --- Data Options ---

// WithData sets the data shown by the list.
func WithData(data ...string) ListboxOption {
	return func(l *Listbox) {
		l.data = data
	}
}

// WithLimit caps how many items are built (0 = unlimited).
func WithLimit(n int) ListboxOption {
	return func(l *Listbox) {
		l.limit = max(n, 0)
	}
}

// WithOffset skips the first n data.
func WithOffset(n int) ListboxOption {
	return func(l *Listbox) {
		l.offset = max(n, 0)
	}
}

// --- Visual Options ---

// WithItemTemplate replaces the default Listitem constructor.
func WithItemTemplate(fn ItemTemplate) ListboxOption {
	return func(l *Listbox) {
		l.template = fn
	}
}

// WithItemStyle sets the style handed to every item.
func WithItemStyle(s widark.Style) ListboxOption {
	return func(l *Listbox) {
		l.itemStyle = widark.NewStyle(s)
	}
}

// WithOrientation lays items out in rows (Vertical) or columns
// (Horizontal).
func WithOrientation(o Orientation) ListboxOption {
	return func(l *Listbox) {
		l.orientation = o
	}
}

// --- Behavior Options ---

// WithCommand sets the handler for clicks on the list. The clicked item
// is the event target.
func WithCommand(fn widark.Handler) ListboxOption {
	return func(l *Listbox) {
		l.SetCommand(fn)
	}
}

// WithWidgetOptions applies widget options to the list itself.
func WithWidgetOptions(opts ...widark.Option) ListboxOption {
	return func(l *Listbox) {
		l.Setup(opts...)
	}
}

type listboxKind struct {
	widark.BaseBehavior
	list *Listbox
}

func (k listboxKind) Build(w *widark.Widget) {
	l := k.list
	template := l.template
	if template == nil {
		template = defaultItem
	}
	for i, item := range l.window() {
		child := template(w, item, l.itemStyle)
		if l.orientation == Horizontal {
			child.Grid(0, i)
		} else {
			child.Grid(i, 0)
		}
	}
}

// NewListbox creates a list under parent. The items are built right away.
func NewListbox(parent *widark.Widget, opts ...ListboxOption) *Listbox {
	l := &Listbox{itemStyle: widark.NewStyle(widark.Style{Align: "C"})}
	l.Widget = widark.New(parent, widark.WithAutobuild(false))
	l.Setup(widark.WithBehavior(listboxKind{list: l}))
	for _, opt := range opts {
		opt(l)
	}
	l.Build()
	return l
}

// window returns the data selected by offset and limit.
func (l *Listbox) window() []string {
	if l.offset >= len(l.data) {
		return nil
	}
	data := l.data[l.offset:]
	if l.limit > 0 && l.limit < len(data) {
		data = data[:l.limit]
	}
	return data
}

// Data returns the data shown by the list.
func (l *Listbox) Data() []string {
	return l.data
}

// SetData replaces the data. Call Connect to rebuild the items.
func (l *Listbox) SetData(data ...string) *Listbox {
	l.data = data
	return l
}

// SetCommand replaces the click handler. A nil fn removes it.
func (l *Listbox) SetCommand(fn widark.Handler) *Listbox {
	if l.command != nil {
		l.Ignore("click", false, l.command)
		l.command = nil
	}
	if fn != nil {
		l.command = l.On("click", fn)
	}
	return l
}

// Items returns the item widgets.
func (l *Listbox) Items() []*widark.Widget {
	return l.Children()
}
