package tui

// Terminal abstracts the output side of a terminal session.
// The production implementation is ANSITerminal; tests use MockTerminal.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Flush writes the given cell changes to the terminal.
	// Changes are expected to be in row-major order.
	Flush(changes []CellChange)

	// Clear clears the entire terminal screen.
	Clear()

	// SetCursor moves the cursor to the specified position (0-indexed).
	SetCursor(x, y int)

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// EnterRawMode puts the terminal into raw mode for
	// character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to the mode it was in before
	// EnterRawMode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer, preserving
	// the original terminal content.
	EnterAltScreen()

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// DisableMouse turns off mouse reporting.
	DisableMouse()
}
