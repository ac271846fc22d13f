package widark

import "strings"

// Option configures a Widget. Options only touch the fields they name.
type Option func(*Widget)

// --- Content and Style Options ---

// WithContent sets the text drawn inside the widget.
func WithContent(content string) Option {
	return func(w *Widget) {
		w.content = content
	}
}

// WithStyle merges patch into the widget's style.
func WithStyle(patch Style) Option {
	return func(w *Widget) {
		w.style.Configure(patch)
	}
}

// --- Tag Options ---

// WithName sets the name tag used by Find.
func WithName(name string) Option {
	return func(w *Widget) {
		w.name = name
	}
}

// WithGroup sets the group tag used by Group.
func WithGroup(group string) Option {
	return func(w *Widget) {
		w.group = group
	}
}

// --- Placement Options ---

// WithPosition selects relative (grid) or fixed placement.
func WithPosition(p Position) Option {
	return func(w *Widget) {
		w.position = p
	}
}

// WithPin sets the explicit rectangle of a fixed widget, relative to its
// parent.
func WithPin(y, x, height, width int) Option {
	return func(w *Widget) {
		w.pin = NewRect(y, x, height, width)
	}
}

// WithGrid sets the row and column positions in the parent's grid.
func WithGrid(row, col int) Option {
	return func(w *Widget) {
		w.row.Position, w.col.Position = row, col
	}
}

// WithSpan sets how many rows and columns the widget spans.
func WithSpan(row, col int) Option {
	return func(w *Widget) {
		w.row.Span, w.col.Span = max(row, 1), max(col, 1)
	}
}

// WithWeight sets the share of the row and column the widget claims.
func WithWeight(row, col int) Option {
	return func(w *Widget) {
		w.row.Weight, w.col.Weight = max(row, 1), max(col, 1)
	}
}

// WithProportion sizes a fixed widget as a fraction of its parent.
func WithProportion(height, width float64) Option {
	return func(w *Widget) {
		w.proportion = Proportion{Height: height, Width: width}
	}
}

// WithAlign places a fixed widget by alignment code inside its parent.
func WithAlign(align string) Option {
	return func(w *Widget) {
		w.align = strings.ToUpper(align)
	}
}

// WithMargin keeps a fixed widget away from its parent's edges.
func WithMargin(m Margin) Option {
	return func(w *Widget) {
		w.margin = m
	}
}

// --- Lifecycle Options ---

// WithAutoload controls whether Gather schedules the widget's Load.
func WithAutoload(on bool) Option {
	return func(w *Widget) {
		w.autoload = on
	}
}

// WithAutobuild controls whether New builds the widget right away.
func WithAutobuild(on bool) Option {
	return func(w *Widget) {
		w.autobuild = on
	}
}

// WithBehavior sets the widget kind and runs its Setup hook, so options
// after it override the kind's defaults.
func WithBehavior(b Behavior) Option {
	return func(w *Widget) {
		if b == nil {
			b = BaseBehavior{}
		}
		w.behavior = b
		b.Setup(w)
	}
}

// --- Fluent mutators ---

// Style merges patch into the widget's style.
func (w *Widget) Style(patch Style) *Widget {
	w.style.Configure(patch)
	return w
}

// Grid sets the row and column positions in the parent's grid.
func (w *Widget) Grid(row, col int) *Widget {
	return w.Setup(WithGrid(row, col))
}

// Span sets how many rows and columns the widget spans.
func (w *Widget) Span(row, col int) *Widget {
	return w.Setup(WithSpan(row, col))
}

// Weight sets the share of the row and column the widget claims.
func (w *Widget) Weight(row, col int) *Widget {
	return w.Setup(WithWeight(row, col))
}

// Pin sets the explicit rectangle of a fixed widget.
func (w *Widget) Pin(y, x, height, width int) *Widget {
	return w.Setup(WithPin(y, x, height, width))
}

// Mark sets the name and group tags.
func (w *Widget) Mark(name, group string) *Widget {
	return w.Setup(WithName(name), WithGroup(group))
}

// Fix makes the widget fixed-position with the given arrangement hints.
func (w *Widget) Fix(p Proportion, align string, m Margin) *Widget {
	return w.Setup(WithPosition(Fixed), WithProportion(p.Height, p.Width), WithAlign(align), WithMargin(m))
}

// Update replaces the content and redraws the widget.
func (w *Widget) Update(content string) *Widget {
	w.content = content
	return w.Render()
}
