package widark

import "errors"

var (
	// ErrGeometry reports a rectangle that does not fit where it was requested.
	// Render treats it as a silent, recoverable condition.
	ErrGeometry = errors.New("widark: rectangle does not fit")

	// ErrShutdownTimeout is returned when load tasks outlive the shutdown bound.
	ErrShutdownTimeout = errors.New("widark: load tasks still running after shutdown timeout")

	// ErrNoTerminal is returned when the process is not attached to a terminal.
	ErrNoTerminal = errors.New("widark: not a terminal")
)
