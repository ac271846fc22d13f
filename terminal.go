package widark

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal abstracts terminal operations for rendering and input.
// Raw mode, the alternate screen, mouse reporting and input decoding are
// delegated to tcell.
type Terminal interface {
	// Init takes over the terminal. mouse enables mouse reporting.
	Init(mouse bool) error

	// Close restores cooked mode, the cursor and the color state.
	Close()

	// Size returns the terminal dimensions (height, width) in cells.
	Size() (height, width int)

	// Flush writes the given cell changes and shows them.
	Flush(changes []CellChange)

	// Clear clears the entire terminal screen.
	Clear()

	// Sync forces a full repaint on the next Flush.
	Sync()

	// SetCursor moves the input cursor to (y, x).
	SetCursor(y, x int)

	// HideCursor makes the cursor invisible.
	HideCursor()

	// PollEvent blocks until the next input event. It returns nil once
	// the terminal is closed.
	PollEvent() tcell.Event

	// PostEvent queues an event as though it came from the terminal.
	PostEvent(ev tcell.Event) error
}

// tcellTerminal implements Terminal on a tcell.Screen.
type tcellTerminal struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

// Ensure tcellTerminal implements Terminal.
var _ Terminal = (*tcellTerminal)(nil)

// NewTerminal returns a Terminal on the process's controlling terminal.
func NewTerminal() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell.Screen, typically a
// tcell.SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) Terminal {
	return &tcellTerminal{screen: screen}
}

func (t *tcellTerminal) Init(mouse bool) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if mouse {
		t.screen.EnableMouse()
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

func (t *tcellTerminal) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

func (t *tcellTerminal) Size() (height, width int) {
	width, height = t.screen.Size()
	return height, width
}

func (t *tcellTerminal) Flush(changes []CellChange) {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		r := ch.Cell.Rune
		if r == 0 {
			r = ' '
		}
		t.screen.SetContent(ch.X, ch.Y, r, nil, ch.Cell.Style)
	}
	t.screen.Show()
}

func (t *tcellTerminal) Clear() {
	t.screen.Clear()
}

func (t *tcellTerminal) Sync() {
	t.screen.Sync()
}

func (t *tcellTerminal) SetCursor(y, x int) {
	t.screen.ShowCursor(x, y)
}

func (t *tcellTerminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *tcellTerminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func (t *tcellTerminal) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}
