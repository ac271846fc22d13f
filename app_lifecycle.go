package widark

import (
	"github.com/widark/widark/internal/debug"
)

// Close stops the loop, shuts the scheduler down and restores the
// terminal. Loads still running after the load timeout are detached and
// Close returns ErrShutdownTimeout; otherwise it returns the first load
// error. Run calls Close itself.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.Stop()

	var err error
	if a.scheduler != nil {
		err = a.scheduler.Shutdown(a.loadTimeout)
	}
	if a.started {
		a.terminal.Close()
	}
	debug.Log("app closed", "err", err)
	return err
}

// SnapshotFrame returns the current frame as text, for debugging and tests.
func (a *App) SnapshotFrame() string {
	if a.screen == nil {
		return ""
	}
	return a.screen.Buffer().StringTrimmed()
}
