package tui

import "strings"

// Buffer is a double-buffered 2D grid of cells.
// Widgets write to the back buffer; Flush on the terminal consumes the
// diff between front and back, then Swap promotes the back buffer.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built this frame
	width  int
	height int
}

// CellChange is a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a buffer of the given dimensions, cleared to spaces.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		front:  make([]Cell, width*height),
		back:   make([]Cell, width*height),
		width:  width,
		height: height,
	}
	blank := NewCell(' ', NewStyle())
	for i := range b.front {
		b.front[i] = blank
		b.back[i] = blank
	}
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Rect returns the buffer bounds as a Rect at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index, or -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back-buffer cell at (x, y), or a zero Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

// SetCell sets the back-buffer cell at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.back[i] = c
}

// SetRune places a rune at (x, y), managing continuation cells for wide
// characters and clearing any wide character it overlaps.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}

	width := runeWidth(r)
	cur := b.Cell(x, y)

	// Overwriting either half of an existing wide char clears both halves.
	if cur.IsContinuation() {
		b.clearWideAt(x-1, y)
	} else if cur.Width == 2 {
		b.clearWideAt(x, y)
	}
	if width == 2 && x+1 < b.width {
		// Placing a wide char also overwrites x+1.
		if next := b.Cell(x+1, y); next.Width == 2 {
			b.clearWideAt(x+1, y)
		}
	}

	// A wide char that would straddle the right edge is replaced by a space.
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', style))
		return
	}

	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Rune: 0, Style: style, Width: 0})
	}
}

// clearWideAt clears the wide character starting at (x, y) and its continuation.
func (b *Buffer) clearWideAt(x, y int) {
	blank := NewCell(' ', NewStyle())
	if b.Cell(x, y).Width == 2 {
		b.SetCell(x, y, blank)
		b.SetCell(x+1, y, blank)
	}
}

// SetString writes a string starting at (x, y), stopping at the buffer
// edge without wrapping. Returns the display width consumed.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// SetStringClipped writes a string clipped to clip. Characters outside
// the clip rect are skipped. Returns the display width rendered.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	total := 0
	curX := x
	for _, r := range s {
		width := runeWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX < clip.X || (width == 2 && curX+1 >= clip.Right()) {
			curX += width
			continue
		}
		b.SetRune(curX, y, r, style)
		curX += width
		total += width
	}
	return total
}

// Fill fills a rectangle with the given rune and style.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	width := runeWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
				continue
			}
			b.SetRune(x, y, r, style)
			x += width
		}
	}
}

// Clear clears the entire back buffer to spaces with default style.
func (b *Buffer) Clear() {
	b.ClearRect(b.Rect())
}

// ClearRect clears a rectangular region to spaces with default style.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	blank := NewCell(' ', NewStyle())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			// Splitting a wide char at either region edge clears both halves.
			cell := b.Cell(x, y)
			if cell.IsContinuation() && x == rect.X {
				b.SetCell(x-1, y, blank)
			}
			if cell.Width == 2 && x+1 == rect.Right() {
				b.SetCell(x+1, y, blank)
			}
			b.SetCell(x, y, blank)
		}
	}
}

// Diff returns all cells that changed between front and back buffers,
// in row-major order to minimize cursor moves on flush.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if !b.back[i].Equal(b.front[i]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[i]})
			}
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
// Call after flushing changes to the terminal.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize changes the buffer dimensions. Both buffers are cleared; the
// next frame is always a full repaint after a resize.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	blank := NewCell(' ', NewStyle())
	for i := range b.front {
		b.front[i] = blank
		b.back[i] = blank
	}
}

// String renders the back buffer as text, one line per row.
// Continuation cells are skipped. Used by tests and debugging.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
