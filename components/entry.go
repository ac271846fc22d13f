package components

import (
	"unicode/utf8"

	"github.com/widark/widark"
)

// KeyBackspace is the key name that deletes the last character of an
// Entry.
const KeyBackspace = "Backspace"

// Entry is a single text field. Clicking it moves the cursor onto it and
// key presses edit its content.
type Entry struct {
	*widark.Widget
}

// NewEntry creates an entry under parent holding content.
func NewEntry(parent *widark.Widget, content string, opts ...widark.Option) *Entry {
	opts = append([]widark.Option{widark.WithContent(content)}, opts...)
	e := &Entry{Widget: widark.New(parent, opts...)}
	e.On("click", e.onClick)
	e.On("keydown", e.onKeydown)
	return e
}

func (e *Entry) onClick(*widark.Event) error {
	e.Focus()
	return nil
}

// onKeydown appends printable keys and handles backspace. Named keys such
// as "Enter" or "Up" are ignored.
func (e *Entry) onKeydown(ev *widark.Event) error {
	content := e.Content()
	switch {
	case ev.Key == KeyBackspace:
		if content == "" {
			return nil
		}
		_, size := utf8.DecodeLastRuneInString(content)
		content = content[:len(content)-size]
	case utf8.RuneCountInString(ev.Key) == 1:
		content += ev.Key
	default:
		return nil
	}
	e.Update(content)
	return nil
}
