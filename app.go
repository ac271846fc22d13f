package widark

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// App owns the terminal, the screen, the root widget and the scheduler, and
// runs the loop that turns terminal input into dispatched events.
type App struct {
	terminal  Terminal
	screen    *Screen
	root      *Widget
	scheduler *Scheduler
	decoder   decoder

	// Event loop fields
	inputCh  chan tcell.Event
	stopCh   chan struct{}
	stopOnce sync.Once
	started  bool // terminal taken over by Run
	closed   bool

	// Configuration (set via options)
	palette          Palette
	builder          func(root *Widget)
	globalKeyHandler func(*Event) bool // Returns true if event consumed
	frameDuration    time.Duration     // Duration per tick (default 50ms = 20fps)
	loadTimeout      time.Duration     // Bound on awaiting loads at shutdown (default 1s)
	eventQueueSize   int               // Capacity of the input and update queues (default 256)
	mouseEnabled     bool              // Whether mouse reporting is enabled (default true)
}

// NewApp creates an application. Without WithTerminal it opens the
// process's terminal; the terminal is only taken over by Run.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{
		stopCh:         make(chan struct{}),
		frameDuration:  time.Second / 20,
		loadTimeout:    time.Second,
		eventQueueSize: 256,
		mouseEnabled:   true,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.terminal == nil {
		terminal, err := NewTerminal()
		if err != nil {
			return nil, fmt.Errorf("creating app: %w", err)
		}
		app.terminal = terminal
	}
	if app.palette == nil {
		app.palette = DefaultPalette()
	}
	app.inputCh = make(chan tcell.Event, app.eventQueueSize)

	app.root = New(nil, WithName("root"), WithAutobuild(false))
	if app.builder != nil {
		app.builder(app.root)
	}
	return app, nil
}

// Root returns the root widget. Build the interface under it before Run.
func (a *App) Root() *Widget {
	return a.root
}

// Screen returns the screen, or nil before Run.
func (a *App) Screen() *Screen {
	return a.screen
}

// Scheduler returns the load scheduler, or nil before Run.
func (a *App) Scheduler() *Scheduler {
	return a.scheduler
}

// Terminal returns the underlying terminal.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// SetGlobalKeyHandler sets a handler that sees every keyboard event before
// it is dispatched. If the handler returns true, the event is consumed.
func (a *App) SetGlobalKeyHandler(fn func(*Event) bool) {
	a.globalKeyHandler = fn
}
