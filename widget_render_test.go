package widark

import (
	"slices"
	"testing"
)

// tracer records hook calls under a name into a shared log.
type tracer struct {
	BaseBehavior
	name string
	log  *[]string
}

func (tr tracer) Settle(*Widget) { *tr.log = append(*tr.log, tr.name+":settle") }
func (tr tracer) Amend(*Widget) { *tr.log = append(*tr.log, tr.name+":amend") }

func TestRender_GridWithBorder(t *testing.T) {
	root, _ := newTestRoot(t, 10, 90, WithStyle(Style{Border: []rune{0}}))
	children := []*Widget{
		New(root, WithGrid(0, 0)),
		New(root, WithGrid(0, 1)),
		New(root, WithGrid(0, 2)),
	}

	root.Render()

	want := []Rect{
		NewRect(1, 1, 8, 30),
		NewRect(1, 31, 8, 30),
		NewRect(1, 61, 8, 28),
	}
	for i, child := range children {
		if got := child.Frame(); got != want[i] {
			t.Errorf("child %d frame = %+v, want %+v", i, got, want[i])
		}
		if !child.Attached() {
			t.Fatalf("child %d not attached", i)
		}
		if got := child.Surface().Bounds(); got != want[i] {
			t.Errorf("child %d bounds = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestRender_HitBoxFollowsSurface(t *testing.T) {
	root, _ := newTestRoot(t, 6, 10)
	New(root, WithGrid(0, 0))
	child := New(root, WithGrid(0, 1))

	root.Render()

	if child.YMin != 0 || child.XMin != 5 || child.YMax != 6 || child.XMax != 10 {
		t.Errorf("box = (%d,%d)-(%d,%d), want (0,5)-(6,10)", child.YMin, child.XMin, child.YMax, child.XMax)
	}
	if !child.Hit(NewEvent(Mouse, "click", At(5, 9))) || child.Hit(NewEvent(Mouse, "click", At(2, 4))) {
		t.Error("hit test does not follow the rendered box")
	}
}

func TestRender_Content(t *testing.T) {
	type tc struct {
		height, width int
		style         Style
		content       string
		want          string
	}

	tests := map[string]tc{
		"top left": {
			height: 2, width: 6,
			content: "hi",
			want:    "hi\n",
		},
		"centred": {
			height: 3, width: 10,
			style:   Style{Align: "CC"},
			content: "hi",
			want:    "\n    hi\n",
		},
		"bottom right": {
			height: 2, width: 6,
			style:   Style{Align: "RR"},
			content: "hi",
			want:    "\n    hi",
		},
		"bordered": {
			height: 3, width: 6,
			style:   Style{Border: []rune{0}},
			content: "ab",
			want:    "┌────┐\n│ab  │\n└────┘",
		},
		"template": {
			height: 1, width: 10,
			style:   Style{Template: "< {} >", Align: "LC"},
			content: "OK",
			want:    "  < OK >",
		},
		"wraps long content": {
			height: 2, width: 4,
			content: "abcdef",
			want:    "abcd\nef",
		},
		"overflow is clipped silently": {
			height: 1, width: 4,
			content: "abcdef",
			want:    "abcd",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, screen := newTestRoot(t, tt.height, tt.width, WithStyle(tt.style), WithContent(tt.content))
			root.Render()
			if got := screen.Buffer().StringTrimmed(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_HookOrder(t *testing.T) {
	var log []string
	root, _ := newTestRoot(t, 4, 8, WithBehavior(tracer{name: "root", log: &log}))
	NewWithBehavior(root, tracer{name: "grid", log: &log})
	NewWithBehavior(root, tracer{name: "fixed", log: &log}, WithPosition(Fixed), WithPin(0, 0, 1, 1))

	root.Render()

	want := []string{
		"root:settle",
		"grid:settle", "grid:amend",
		"fixed:settle", "fixed:amend",
		"root:amend",
	}
	if !slices.Equal(log, want) {
		t.Errorf("hooks = %v, want %v", log, want)
	}
}

func TestRender_FixedChildren(t *testing.T) {
	type tc struct {
		opts     []Option
		attached bool
		frame    Rect
	}

	tests := map[string]tc{
		"explicit pin": {
			opts:     []Option{WithPin(2, 3, 4, 5)},
			attached: true,
			frame:    NewRect(2, 3, 4, 5),
		},
		"proportion and centre": {
			opts:     []Option{WithProportion(0.5, 0.5), WithAlign("cc")},
			attached: true,
			frame:    NewRect(2, 5, 5, 10),
		},
		"margin clamps": {
			opts:     []Option{WithPin(9, 19, 2, 4), WithMargin(Margin{Right: 1, Bottom: 1})},
			attached: true,
			frame:    NewRect(7, 15, 2, 4),
		},
		"zero area is skipped": {
			opts:     nil,
			attached: false,
		},
		"larger than parent fails silently": {
			opts:     []Option{WithPin(0, 0, 20, 5)},
			attached: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := newTestRoot(t, 10, 20)
			sibling := New(root)
			child := New(root, append([]Option{WithPosition(Fixed)}, tt.opts...)...)

			root.Render()

			if child.Attached() != tt.attached {
				t.Fatalf("Attached() = %v, want %v", child.Attached(), tt.attached)
			}
			if tt.attached && child.Frame() != tt.frame {
				t.Errorf("Frame() = %+v, want %+v", child.Frame(), tt.frame)
			}
			if !sibling.Attached() {
				t.Error("grid sibling not rendered")
			}
		})
	}
}

func TestRender_FixedDrawsOverGrid(t *testing.T) {
	root, screen := newTestRoot(t, 1, 6)
	New(root, WithContent("grid"))
	New(root, WithContent("X"), WithPosition(Fixed), WithPin(0, 1, 1, 1))

	root.Render()

	if got := screen.Buffer().StringTrimmed(); got != "gXid" {
		t.Errorf("buffer = %q, want %q", got, "gXid")
	}
}

func TestRender_UnattachableWidgets(t *testing.T) {
	t.Run("unmounted root", func(t *testing.T) {
		root := New(nil, WithContent("x"))
		root.Render()
		if root.Attached() {
			t.Error("unmounted root attached")
		}
	})

	t.Run("parent without surface", func(t *testing.T) {
		parent := New(nil)
		child := New(parent)
		child.Render()
		if child.Attached() {
			t.Error("child of an unattached parent attached")
		}
	})

	t.Run("no room inside the border", func(t *testing.T) {
		root, _ := newTestRoot(t, 2, 10, WithStyle(Style{Border: []rune{0}}))
		child := New(root)
		root.Render()
		if child.Attached() {
			t.Error("child attached with zero content height")
		}
	})

	t.Run("lost surface is dropped on the next render", func(t *testing.T) {
		root, _ := newTestRoot(t, 10, 10)
		child := New(root, WithPosition(Fixed), WithPin(0, 0, 5, 5))
		root.Render()
		if !child.Attached() {
			t.Fatal("child not attached")
		}
		child.Pin(0, 0, 50, 5)
		root.Render()
		if child.Attached() {
			t.Error("child kept a stale surface")
		}
	})
}

func TestRender_Idempotent(t *testing.T) {
	root, screen := newTestRoot(t, 12, 40,
		WithStyle(Style{Border: []rune{0}, Align: "CC"}),
		WithContent("root"),
	)
	a := New(root, WithGrid(0, 0), WithContent("a"), WithWeight(1, 2))
	b := New(root, WithGrid(0, 1), WithContent("b"), WithStyle(Style{Border: []rune{0}}))
	c := New(root, WithGrid(1, 0), WithSpan(1, 2), WithContent("c"))
	d := New(b, WithContent("nested"))
	e := New(root, WithPosition(Fixed), WithProportion(0.5, 0.25), WithAlign("CR"), WithContent("fixed"))
	widgets := []*Widget{a, b, c, d, e}

	root.Render()
	first := screen.Buffer().String()
	frames := make([]Rect, len(widgets))
	for i, w := range widgets {
		frames[i] = w.Frame()
	}

	root.Render()

	if got := screen.Buffer().String(); got != first {
		t.Errorf("second render changed the screen:\n%s\nvs\n%s", first, got)
	}
	for i, w := range widgets {
		if w.Frame() != frames[i] {
			t.Errorf("widget %d frame changed from %+v to %+v", i, frames[i], w.Frame())
		}
	}
}
