package tui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder accumulates ANSI escape sequences in a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to (x, y). Coordinates are 0-indexed here,
// 1-indexed on the wire.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the visible screen (ESC[2J).
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// EnableMouse turns on SGR mouse reporting for press/release events.
func (e *escBuilder) EnableMouse() {
	e.buf = append(e.buf, "\x1b[?1000h\x1b[?1006h"...)
}

// DisableMouse turns off SGR mouse reporting.
func (e *escBuilder) DisableMouse() {
	e.buf = append(e.buf, "\x1b[?1006l\x1b[?1000l"...)
}

// ResetStyle emits SGR 0.
func (e *escBuilder) ResetStyle() {
	e.buf = append(e.buf, '\x1b', '[', '0', 'm')
}

// SetStyle emits a full SGR sequence for the style. It always starts
// from a reset so no attribute leaks from the previously emitted style.
func (e *escBuilder) SetStyle(s Style) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrItalic) {
		e.buf = append(e.buf, ';', '3')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	e.appendColor(s.Fg, true)
	e.appendColor(s.Bg, false)
	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for a color.
func (e *escBuilder) appendColor(c Color, fg bool) {
	switch c.mode {
	case colorDefault:
		// SGR 0 already selected the default.
	case colorANSI:
		base := 40
		if fg {
			base = 30
		}
		n := int(c.value)
		if n >= 8 {
			base += 60 // bright variants live at 90-97 / 100-107
			n -= 8
		}
		e.buf = append(e.buf, ';')
		e.writeInt(base + n)
	case color256:
		e.buf = append(e.buf, ';')
		if fg {
			e.buf = append(e.buf, "38;5;"...)
		} else {
			e.buf = append(e.buf, "48;5;"...)
		}
		e.writeInt(int(c.value))
	case colorRGB:
		r, g, b := c.rgb()
		e.buf = append(e.buf, ';')
		if fg {
			e.buf = append(e.buf, "38;2;"...)
		} else {
			e.buf = append(e.buf, "48;2;"...)
		}
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteRune appends a rune as UTF-8.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}
