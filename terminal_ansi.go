package tui

import (
	"io"
	"os"
)

// ANSITerminal implements Terminal using ANSI escape sequences. It works
// with any terminal emulator that understands them, which today is all of
// them that matter.
type ANSITerminal struct {
	out       io.Writer     // Output destination (usually os.Stdout)
	lastStyle Style         // Last emitted style, for SGR coalescing
	esc       *escBuilder   // Escape sequence builder, reused across flushes
	inFd      uintptr       // Input descriptor, needed for raw mode
	outFd     uintptr       // Output descriptor, needed for size queries
	rawState  *rawModeState // Platform-specific saved terminal state
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal writing to out. Raw mode and size
// queries use the file descriptors of in and out when they are *os.File;
// otherwise raw mode is a no-op and Size falls back to 80x24.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out: out,
		esc: newEscBuilder(4096),
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = f.Fd()
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = f.Fd()
	}
	return t
}

// Size returns the terminal dimensions, or 80x24 if they cannot be
// determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := getTerminalSize(int(t.outFd))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes cell changes to the terminal, coalescing cursor moves for
// runs of adjacent cells and style codes for runs of identical styles.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	lastX, lastY := -2, -2

	for _, ch := range changes {
		// Continuation cells are the second column of a wide character,
		// already covered when the primary cell was written.
		if ch.Cell.IsContinuation() {
			continue
		}

		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}

		if !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style)
			t.lastStyle = ch.Cell.Style
		}

		if ch.Cell.Rune != 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}

		lastX = ch.X + int(ch.Cell.Width) - 1
		lastY = ch.Y
	}

	t.out.Write(t.esc.Bytes())
}

// Clear clears the screen and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
	t.out.Write(t.esc.Bytes())
	t.lastStyle = NewStyle()
}

// SetCursor moves the cursor to (x, y), 0-indexed.
func (t *ANSITerminal) SetCursor(x, y int) {
	t.esc.Reset()
	t.esc.MoveTo(x, y)
	t.out.Write(t.esc.Bytes())
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

// EnterRawMode puts the input terminal into raw mode. A terminal without
// a real input descriptor (piped stdin in tests) is left untouched.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := enableRawMode(int(t.inFd))
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal mode saved by EnterRawMode.
// Calling it without a prior EnterRawMode is a no-op.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(int(t.inFd), t.rawState)
	t.rawState = nil
	return err
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.out.Write(t.esc.Bytes())
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	t.out.Write(t.esc.Bytes())
}

// EnableMouse turns on SGR mouse reporting.
func (t *ANSITerminal) EnableMouse() {
	t.esc.Reset()
	t.esc.EnableMouse()
	t.out.Write(t.esc.Bytes())
}

// DisableMouse turns off SGR mouse reporting.
func (t *ANSITerminal) DisableMouse() {
	t.esc.Reset()
	t.esc.DisableMouse()
	t.out.Write(t.esc.Bytes())
}
