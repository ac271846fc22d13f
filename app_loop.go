package widark

import (
	"context"
	"time"

	"github.com/widark/widark/internal/debug"
)

// Run takes over the terminal, renders the root, gathers its loads and runs
// the main loop until Stop is called, ctx is cancelled or Ctrl+C is
// pressed.
//
// Each tick drains pending input (capture and dispatch), runs the updates
// posted by loads, re-renders when anything happened and shows the frame.
// A listener error or panic closes the app first, restoring the terminal,
// and is then returned or re-raised.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.terminal.Init(a.mouseEnabled); err != nil {
		return err
	}
	a.started = true
	defer func() {
		if r := recover(); r != nil {
			a.Close()
			panic(r)
		}
		if cerr := a.Close(); err == nil {
			err = cerr
		}
	}()

	a.screen = NewScreen(a.terminal, a.palette)
	a.scheduler = NewScheduler(ctx, a.eventQueueSize)
	a.root.Mount(a.screen, a.scheduler)
	a.root.Render()
	a.root.Gather()
	a.screen.Show()

	go a.readInput()

	for {
		frameStart := time.Now()

		dirty, err := a.drainInput(frameStart.Add(a.frameDuration / 2))
		if err != nil {
			return err
		}
		if a.scheduler.RunPending() > 0 {
			dirty = true
		}
		if dirty {
			a.root.Render()
		}
		a.screen.Show()

		select {
		case <-time.After(a.frameDuration - time.Since(frameStart)):
		case <-a.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// drainInput handles queued input until the queue is empty or the
// deadline passes. It reports whether any event was handled.
func (a *App) drainInput(deadline time.Time) (bool, error) {
	handled := false
	for time.Now().Before(deadline) {
		select {
		case raw := <-a.inputCh:
			if err := a.handle(raw); err != nil {
				debug.Log("listener failed", "err", err)
				return handled, err
			}
			handled = true
		default:
			return handled, nil
		}
	}
	return handled, nil
}

// readInput feeds terminal input to the main loop until the terminal is
// closed or the app stops.
func (a *App) readInput() {
	for {
		ev := a.terminal.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.inputCh <- ev:
		case <-a.stopCh:
			return
		}
	}
}

// Stop signals the Run loop to exit. It is safe to call more than once
// and from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}
