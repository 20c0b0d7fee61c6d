package tui

import "strings"

// MockTerminal is an in-memory Terminal for tests. It applies flushed
// changes to a cell grid and counts mode transitions so tests can
// assert on setup/restore pairing.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	mouseEnabled  bool

	// Transition counters.
	RawModeEnters  int
	RawModeExits   int
	AltScreenOns   int
	AltScreenOffs  int
	ClearCount     int
	FlushCount     int
	FlushedChanges int
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	blank := NewCell(' ', NewStyle())
	for i := range m.cells {
		m.cells[i] = blank
	}
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// SetSize changes the dimensions reported by Size. The cell grid is
// reset; pair it with a ResizeEvent in the event script.
func (m *MockTerminal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cells = make([]Cell, width*height)
	blank := NewCell(' ', NewStyle())
	for i := range m.cells {
		m.cells[i] = blank
	}
}

// Flush applies cell changes to the grid.
func (m *MockTerminal) Flush(changes []CellChange) {
	m.FlushCount++
	m.FlushedChanges += len(changes)
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

// Clear resets all cells to blanks.
func (m *MockTerminal) Clear() {
	m.ClearCount++
	blank := NewCell(' ', NewStyle())
	for i := range m.cells {
		m.cells[i] = blank
	}
}

// SetCursor records the cursor position.
func (m *MockTerminal) SetCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
}

// HideCursor marks the cursor hidden.
func (m *MockTerminal) HideCursor() { m.cursorHidden = true }

// ShowCursor marks the cursor visible.
func (m *MockTerminal) ShowCursor() { m.cursorHidden = false }

// EnterRawMode records the transition.
func (m *MockTerminal) EnterRawMode() error {
	m.RawModeEnters++
	m.inRawMode = true
	return nil
}

// ExitRawMode records the transition.
func (m *MockTerminal) ExitRawMode() error {
	m.RawModeExits++
	m.inRawMode = false
	return nil
}

// EnterAltScreen records the transition.
func (m *MockTerminal) EnterAltScreen() {
	m.AltScreenOns++
	m.inAltScreen = true
}

// ExitAltScreen records the transition.
func (m *MockTerminal) ExitAltScreen() {
	m.AltScreenOffs++
	m.inAltScreen = false
}

// EnableMouse records that mouse reporting is on.
func (m *MockTerminal) EnableMouse() { m.mouseEnabled = true }

// DisableMouse records that mouse reporting is off.
func (m *MockTerminal) DisableMouse() { m.mouseEnabled = false }

// Cell returns the cell at (x, y).
func (m *MockTerminal) Cell(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Row returns the text content of one row, trailing spaces trimmed.
func (m *MockTerminal) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < m.width; x++ {
		cell := m.Cell(x, y)
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Rune)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Content returns the whole grid as text, one line per row, trailing
// blank lines trimmed.
func (m *MockTerminal) Content() string {
	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		lines[y] = m.Row(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
