package tui

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the terminal buffer.
// Wide characters (CJK, emoji) occupy two cells: the first holds the
// rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(runeWidth(r)),
	}
}

// IsContinuation returns true if this cell is the trailing half of a
// wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// runeWidth returns the display width of a rune in terminal cells.
// Control characters still consume one cell; they are never emitted
// verbatim by the widgets in this package.
func runeWidth(r rune) int {
	if r < 32 {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// stringWidth returns the display width of a string in terminal cells.
func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}
