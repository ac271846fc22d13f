package widark

import "testing"

func box(yMin, xMin, yMax, xMax int) *Target {
	t := NewTarget()
	t.YMin, t.XMin, t.YMax, t.XMax = yMin, xMin, yMax, xMax
	return t
}

func TestNewTarget_Defaults(t *testing.T) {
	target := NewTarget()
	if target.ParentNode() != nil {
		t.Error("new target has a parent")
	}
	if target.YMin != 0 || target.XMin != 0 || target.YMax != 1 || target.XMax != 1 {
		t.Errorf("box = (%d,%d)-(%d,%d), want (0,0)-(1,1)", target.YMin, target.XMin, target.YMax, target.XMax)
	}
	if len(target.Listeners("click", true)) != 0 || len(target.Listeners("click", false)) != 0 {
		t.Error("new target has listeners")
	}
}

func TestTarget_Hit(t *testing.T) {
	type tc struct {
		y, x int
		want bool
	}

	tests := map[string]tc{
		"inside":               {y: 3, x: 7, want: true},
		"last inner cell":      {y: 4, x: 9, want: true},
		"min corner":           {y: 1, x: 6, want: true},
		"max corner excluded":  {y: 5, x: 10, want: false},
		"bottom edge excluded": {y: 5, x: 7, want: false},
		"right edge excluded":  {y: 3, x: 10, want: false},
		"outside":              {y: 3, x: 15, want: false},
	}

	target := box(1, 6, 5, 10)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := target.Hit(NewEvent(Mouse, "click", At(tt.y, tt.x))); got != tt.want {
				t.Errorf("Hit(%d, %d) = %v, want %v", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

func TestTarget_Listen(t *testing.T) {
	target := NewTarget()
	l := NewListener(func(*Event) error { return nil })

	target.Listen("click", l, false)
	target.Listen("click", l, false)
	target.Listen("click", l, true)

	if got := target.Listeners("click", false); len(got) != 1 || got[0] != l {
		t.Errorf("bubble listeners = %v, want [l]", got)
	}
	if got := target.Listeners("click", true); len(got) != 1 || got[0] != l {
		t.Errorf("capture listeners = %v, want [l]", got)
	}
}

func TestTarget_Ignore(t *testing.T) {
	noop := func(*Event) error { return nil }

	type tc struct {
		remove  func(target *Target, a, b *Listener)
		bubble  func(a, b *Listener) []*Listener
	}

	tests := map[string]tc{
		"removes one listener": {
			remove: func(target *Target, a, _ *Listener) { target.Ignore("click", false, a) },
			bubble: func(_, b *Listener) []*Listener { return []*Listener{b} },
		},
		"no listener clears the key": {
			remove: func(target *Target, _, _ *Listener) { target.Ignore("click", false) },
			bubble: func(_, _ *Listener) []*Listener { return nil },
		},
		"unknown listener is a no-op": {
			remove: func(target *Target, _, _ *Listener) { target.Ignore("click", false, NewListener(noop)) },
			bubble: func(a, b *Listener) []*Listener { return []*Listener{a, b} },
		},
		"other phase untouched": {
			remove: func(target *Target, a, b *Listener) { target.Ignore("click", true, a, b) },
			bubble: func(a, b *Listener) []*Listener { return []*Listener{a, b} },
		},
		"unknown type is a no-op": {
			remove: func(target *Target, a, _ *Listener) { target.Ignore("keydown", false, a) },
			bubble: func(a, b *Listener) []*Listener { return []*Listener{a, b} },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			target := NewTarget()
			a, b := target.On("click", noop), target.On("click", noop)

			tt.remove(target, a, b)

			got, want := target.Listeners("click", false), tt.bubble(a, b)
			if len(got) != len(want) {
				t.Fatalf("listeners = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("listener %d = %p, want %p", i, got[i], want[i])
				}
			}
		})
	}
}

func TestTarget_PathTo(t *testing.T) {
	first := NewTarget()
	third := NewTarget()
	third.SetParent(first)
	fourth := NewTarget()
	fourth.SetParent(third)

	path := fourth.PathTo()

	if len(path) != 3 || path[0] != fourth || path[1] != third || path[2] != first {
		t.Errorf("PathTo() = %v, want [fourth third first]", path)
	}
}
