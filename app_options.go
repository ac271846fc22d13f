package widark

import (
	"fmt"
	"os"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithTerminal runs the app on the given terminal instead of the process's
// own, e.g. one built with NewTerminalWithScreen in tests.
func WithTerminal(t Terminal) AppOption {
	return func(a *App) error {
		if t == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		a.terminal = t
		return nil
	}
}

// WithFrameRate sets the tick rate of the main loop.
// Default is 20 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithPalette sets the palette resolving logical colors.
func WithPalette(p Palette) AppOption {
	return func(a *App) error {
		if len(p) == 0 {
			return fmt.Errorf("palette must not be empty")
		}
		a.palette = p
		return nil
	}
}

// WithPaletteFile loads a YAML palette file (see LoadPalette).
func WithPaletteFile(path string) AppOption {
	return func(a *App) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening palette: %w", err)
		}
		defer f.Close()

		p, err := LoadPalette(f)
		if err != nil {
			return fmt.Errorf("loading palette %s: %w", path, err)
		}
		a.palette = p
		return nil
	}
}

// WithBuilder sets a function that builds the interface under the root
// widget when the app is created.
func WithBuilder(fn func(root *Widget)) AppOption {
	return func(a *App) error {
		a.builder = fn
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that sees every keyboard event before
// it is dispatched. If the handler returns true, the event is consumed.
// Use this for app-level key bindings like quit.
func WithGlobalKeyHandler(fn func(*Event) bool) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = fn
		return nil
	}
}

// WithoutMouse disables mouse event reporting.
// By default, mouse events are enabled.
func WithoutMouse() AppOption {
	return func(a *App) error {
		a.mouseEnabled = false
		return nil
	}
}

// WithLoadTimeout bounds how long shutdown waits for running loads.
// Default is 1s.
func WithLoadTimeout(d time.Duration) AppOption {
	return func(a *App) error {
		if d < 0 {
			return fmt.Errorf("load timeout must not be negative")
		}
		a.loadTimeout = d
		return nil
	}
}

// WithEventQueueSize sets the capacity of the input and update queues.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}
