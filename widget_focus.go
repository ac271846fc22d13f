package widark

import "github.com/widark/widark/internal/debug"

// Focus moves the screen cursor to the widget's first content cell,
// inside the border when there is one. Focus is not tracked: the widget
// looks focused because the cursor sits on it.
func (w *Widget) Focus() *Widget {
	if w.surface == nil {
		return w
	}
	origin := 0
	if w.style.Bordered() {
		origin = 1
	}
	y, x := w.surface.Origin()
	w.surface.Screen().SetCursor(y+origin, x+origin)
	debug.Log("focus", "widget", w.name, "y", y+origin, "x", x+origin)
	return w
}

// Blur returns the screen cursor to the origin.
func (w *Widget) Blur() *Widget {
	if screen := w.Screen(); screen != nil {
		screen.SetCursor(0, 0)
	}
	return w
}

// Capture resolves the target of a positioned event: starting at w it
// repeatedly descends into the first attached child, in child order, whose
// box contains the event. It returns the deepest match and, unless the
// event already carries a path, records the chain from that match up to w
// as the event's path.
func (w *Widget) Capture(ev *Event) *Widget {
	chain := []Node{w}
	current := w
	for {
		next := current.hitChild(ev)
		if next == nil {
			break
		}
		current = next
		chain = append(chain, current)
	}

	if len(ev.Path) == 0 {
		path := make([]Node, len(chain))
		for i, n := range chain {
			path[len(chain)-1-i] = n
		}
		ev.Path = path
	}
	return current
}

func (w *Widget) hitChild(ev *Event) *Widget {
	for _, child := range w.children {
		if child.surface != nil && child.Hit(ev) {
			return child
		}
	}
	return nil
}
