package widark

import "github.com/widark/widark/internal/debug"

// Gather schedules Load for the widget and then, recursively, for its
// children. A widget with autoload off is skipped together with its
// subtree. Nothing is scheduled on an unmounted tree.
func (w *Widget) Gather() []*Task {
	if !w.autoload {
		return nil
	}
	scheduler := w.Scheduler()
	if scheduler == nil {
		debug.Log("gather skipped, no scheduler", "widget", w.name)
		return nil
	}

	tasks := []*Task{scheduler.Schedule(w)}
	for _, child := range w.children {
		tasks = append(tasks, child.Gather()...)
	}
	return tasks
}

// Connect rebuilds the widget from scratch: it clears the children, builds
// them again, renders and gathers the new subtree.
func (w *Widget) Connect() []*Task {
	w.Clear()
	w.Build()
	w.Render()
	return w.Gather()
}

// Post queues fn to run on the main loop, where it may safely mutate the
// tree. Load hooks use it to publish their results.
//
// A widget that has been scheduled posts to the scheduler that ran its
// Load, without looking at the tree, so a Load may post through its own
// widget even after it was detached. Other widgets resolve the scheduler
// through their root, which is only safe on the main goroutine; there an
// unmounted tree runs fn immediately.
func (w *Widget) Post(fn func()) {
	if scheduler := w.loader.Load(); scheduler != nil {
		scheduler.Post(fn)
		return
	}
	if scheduler := w.Scheduler(); scheduler != nil {
		scheduler.Post(fn)
		return
	}
	fn()
}
