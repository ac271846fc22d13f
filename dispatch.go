package widark

import "slices"

// Dispatch delivers an event from this node. A fresh event travels the
// whole path: capturing listeners from the root down, then the target,
// then bubbling listeners back up to the root. The path is computed from
// parent links unless the event already carries one.
//
// The first listener error aborts the traversal and is returned.
func (t *Target) Dispatch(ev *Event) error {
	switch ev.Phase {
	case PhaseNone:
		if len(ev.Path) == 0 {
			ev.Path = t.PathTo()
		}
		ev.Target = t.node()
		ev.Phase = Capture
		for _, n := range slices.Backward(ev.Path) {
			if ev.Stop {
				return nil
			}
			if n.target() == t {
				ev.Phase = AtTarget
				return t.Dispatch(ev)
			}
			if err := n.target().Dispatch(ev); err != nil {
				return err
			}
		}
	case Capture:
		return t.invoke(ev, t.capture[ev.Type])
	case AtTarget:
		if err := t.invoke(ev, t.capture[ev.Type]); err != nil {
			return err
		}
		if !ev.Bubbles {
			return nil
		}
		ev.Phase = Bubble
		for _, n := range ev.Path {
			if ev.Stop {
				return nil
			}
			if err := n.target().Dispatch(ev); err != nil {
				return err
			}
		}
	case Bubble:
		return t.invoke(ev, t.bubble[ev.Type])
	}
	return nil
}

// invoke runs listeners in registration order. Listeners added or removed
// by a running handler take effect on the next event.
func (t *Target) invoke(ev *Event, ls []*Listener) error {
	if len(ls) == 0 {
		return nil
	}
	ev.Current = t.node()
	for _, l := range slices.Clone(ls) {
		if err := l.Handle(ev); err != nil {
			return err
		}
	}
	return nil
}
