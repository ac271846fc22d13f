package widark

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyCtrlC is the key name of Ctrl+C, which stops the app unless a global
// key handler consumes it.
const KeyCtrlC = "Ctrl-C"

// decoder turns tcell input into events. It remembers the pressed mouse
// buttons so a release can be told apart from motion.
type decoder struct {
	pressed tcell.ButtonMask
}

var buttons = []struct {
	mask   tcell.ButtonMask
	number int
}{
	{tcell.Button1, 1},
	{tcell.Button2, 2},
	{tcell.Button3, 3},
}

// decode converts a key or mouse event. Key events land on the cursor so
// the widget holding focus is the one hit. Other input yields nil.
func (d *decoder) decode(ev tcell.Event, cursorY, cursorX int) *Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return NewEvent(Keyboard, "keydown", At(cursorY, cursorX), WithKey(keyName(ev)))

	case *tcell.EventMouse:
		x, y := ev.Position()
		mask := ev.Buttons()
		switch {
		case mask&tcell.WheelUp != 0:
			return NewEvent(Mouse, "scroll", At(y, x), WithDetails(map[string]any{"delta": -1}))
		case mask&tcell.WheelDown != 0:
			return NewEvent(Mouse, "scroll", At(y, x), WithDetails(map[string]any{"delta": 1}))
		}

		previous := d.pressed
		d.pressed = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		for _, b := range buttons {
			down, was := mask&b.mask != 0, previous&b.mask != 0
			switch {
			case down && !was:
				return NewEvent(Mouse, "click", At(y, x), WithButton(b.number))
			case !down && was:
				return NewEvent(Mouse, "release", At(y, x), WithButton(b.number))
			}
		}
	}
	return nil
}

// keyName names a key: the character itself for printable keys, the tcell
// name otherwise.
func keyName(ev *tcell.EventKey) string {
	k, r := ev.Key(), ev.Rune()
	switch {
	case k == tcell.KeyCtrlC,
		k == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(r) == 'c':
		return KeyCtrlC
	case k == tcell.KeyRune:
		return string(r)
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return "Backspace"
	}
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return ev.Name()
}

// handle processes one input event on the main loop.
func (a *App) handle(raw tcell.Event) error {
	if _, ok := raw.(*tcell.EventResize); ok {
		a.screen.Resize()
		a.root.Render()
		return a.root.Dispatch(NewEvent(Custom, "resize"))
	}

	y, x := a.screen.Cursor()
	ev := a.decoder.decode(raw, y, x)
	if ev == nil {
		return nil
	}

	if ev.Category == Keyboard {
		if a.globalKeyHandler != nil && a.globalKeyHandler(ev) {
			return nil
		}
		if ev.Key == KeyCtrlC {
			a.Stop()
			return nil
		}
	}

	return a.Dispatch(ev)
}

// Dispatch resolves the target of ev under the root and dispatches it
// there.
func (a *App) Dispatch(ev *Event) error {
	return a.root.Capture(ev).Dispatch(ev)
}
