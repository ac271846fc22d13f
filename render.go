package widark

// Render flushes the cells that changed since the last frame to the
// terminal and swaps the buffers.
func Render(term Terminal, buf *Buffer) {
	if changes := buf.Diff(); len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}

// RenderFull forces a complete redraw of the buffer to the terminal.
// Use it after startup, a resize or external terminal corruption.
func RenderFull(term Terminal, buf *Buffer) {
	term.Clear()
	buf.Invalidate()
	Render(term, buf)
	term.Sync()
}
