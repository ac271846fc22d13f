package widark

import "slices"

// Add inserts child at index among the widget's children, moving it from
// its previous parent if any. A negative or out-of-range index appends.
func (w *Widget) Add(child *Widget, index int) *Widget {
	if child.parent != nil {
		child.parent.children = slices.DeleteFunc(child.parent.children, func(c *Widget) bool {
			return c == child
		})
	}
	child.setParent(w)
	if index < 0 || index > len(w.children) {
		index = len(w.children)
	}
	w.children = slices.Insert(w.children, index, child)
	return w
}

// Remove detaches child: it loses its parent and its surface. Its own
// children are left untouched. Removing a non-child is a no-op.
func (w *Widget) Remove(child *Widget) *Widget {
	i := slices.Index(w.children, child)
	if i < 0 {
		return w
	}
	w.children = slices.Delete(w.children, i, i+1)
	child.detach()
	return w
}

// Clear erases the widget's region, detaches every child and releases the
// widget's own surface. The widget itself stays usable.
func (w *Widget) Clear() *Widget {
	if w.surface != nil {
		w.surface.Erase()
		w.surface.Refresh()
	}
	for _, child := range w.children {
		child.detach()
	}
	w.children = nil
	w.surface = nil
	return w
}

func (w *Widget) detach() {
	w.setParent(nil)
	w.surface = nil
}

func (w *Widget) setParent(parent *Widget) {
	w.parent = parent
	if parent == nil {
		w.Target.parent = nil
		return
	}
	w.Target.parent = parent
}

// Children returns the child widgets in insertion order.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Parent returns the parent widget, or nil if this is a root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Root returns the topmost ancestor.
func (w *Widget) Root() *Widget {
	root := w
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk visits the widget and its descendants depth-first. Returning false
// from fn skips the visited widget's subtree.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, child := range w.children {
		child.Walk(fn)
	}
}

// Find returns the first descendant (or the widget itself) named name.
func (w *Widget) Find(name string) *Widget {
	var found *Widget
	w.Walk(func(c *Widget) bool {
		if found == nil && c.name == name {
			found = c
		}
		return found == nil
	})
	return found
}

// Group returns every descendant (and the widget itself) tagged with
// group, in depth-first order.
func (w *Widget) Group(group string) []*Widget {
	var members []*Widget
	w.Walk(func(c *Widget) bool {
		if c.group == group {
			members = append(members, c)
		}
		return true
	})
	return members
}
