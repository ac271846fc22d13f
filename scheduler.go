package widark

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/widark/widark/internal/debug"
	"golang.org/x/sync/errgroup"
)

// Task is a handle on one scheduled Load.
type Task struct {
	ID     uuid.UUID
	Widget *Widget

	done chan struct{}
	err  error
}

// Done is closed once the Load returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the Load error. It is only meaningful after Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

func (t *Task) finish(err error) {
	t.err = err
	close(t.done)
}

// Scheduler runs widget Load hooks off the main loop and carries the
// closures they post back to it.
//
// Loads run concurrently on goroutines sharing one context. They must not
// mutate the widget tree; they Post closures instead, and the main loop
// runs them through RunPending, so the tree is only ever touched by one
// goroutine.
//
// The first load error other than a cancellation is kept and returned by
// Shutdown, so an App reports it from Close and Run. Every task's own
// error stays available through Task.Err.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group
	queue  chan func()

	mu       sync.Mutex
	inflight map[uuid.UUID]*Task
	closed   bool
	err      error
}

// NewScheduler returns a scheduler whose loads observe ctx. queueSize
// bounds the number of posted closures waiting for the main loop.
func NewScheduler(ctx context.Context, queueSize int) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		ctx:      ctx,
		cancel:   cancel,
		queue:    make(chan func(), max(queueSize, 1)),
		inflight: map[uuid.UUID]*Task{},
	}
}

// Schedule starts w's Load on a goroutine. After Shutdown the returned task
// is already done with context.Canceled.
func (s *Scheduler) Schedule(w *Widget) *Task {
	t := &Task{ID: uuid.New(), Widget: w, done: make(chan struct{})}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		t.finish(context.Canceled)
		return t
	}
	s.inflight[t.ID] = t
	s.mu.Unlock()

	w.loader.Store(s)
	behavior := w.behavior
	debug.Log("load scheduled", "task", t.ID, "widget", w.name)
	s.group.Go(func() error {
		err := behavior.Load(s.ctx, w)
		if err != nil {
			err = fmt.Errorf("loading %q: %w", w.name, err)
		}

		s.mu.Lock()
		delete(s.inflight, t.ID)
		if s.err == nil && err != nil && !errors.Is(err, context.Canceled) {
			s.err = err
		}
		s.mu.Unlock()

		t.finish(err)
		debug.Log("load finished", "task", t.ID, "err", err)
		return err
	})
	return t
}

// Pending returns the number of loads still running.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}

// Post queues fn for the main loop. Safe to call from any goroutine. Posts
// after Shutdown, or to a full queue, are dropped.
func (s *Scheduler) Post(fn func()) {
	if s.ctx.Err() != nil {
		return
	}
	select {
	case s.queue <- fn:
	default:
		debug.Log("update queue full, dropping update")
	}
}

// RunPending runs every queued closure on the calling goroutine and
// returns how many ran.
func (s *Scheduler) RunPending() int {
	n := 0
	for {
		select {
		case fn := <-s.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every scheduled load has returned and reports the
// first error.
func (s *Scheduler) Wait() error {
	return s.group.Wait()
}

// Shutdown cancels the loads' context and waits up to timeout for them to
// return. Loads still running after that are detached: they keep their
// goroutine until they observe the cancellation, but nothing waits for
// them and their posts are dropped. Shutdown then returns
// ErrShutdownTimeout. Otherwise it returns the first load error, if any.
func (s *Scheduler) Shutdown(timeout time.Duration) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.mu.Lock()
		err := s.err
		s.mu.Unlock()
		debug.Log("scheduler shut down", "err", err)
		return err
	case <-time.After(timeout):
		n := s.Pending()
		debug.Log("scheduler shutdown timed out", "detached", n)
		return fmt.Errorf("%d loads detached: %w", n, ErrShutdownTimeout)
	}
}
