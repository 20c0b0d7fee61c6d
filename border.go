package tui

// BorderStyle selects the box-drawing characters used for a border.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '└',
			Bottom:      '─',
			BottomRight: '┘',
		}
	case BorderDouble:
		return BorderChars{
			TopLeft:     '╔',
			Top:         '═',
			TopRight:    '╗',
			Left:        '║',
			Right:       '║',
			BottomLeft:  '╚',
			Bottom:      '═',
			BottomRight: '╝',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft:     '╭',
			Top:         '─',
			TopRight:    '╮',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '╰',
			Bottom:      '─',
			BottomRight: '╯',
		}
	case BorderThick:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Left:        '┃',
			Right:       '┃',
			BottomLeft:  '┗',
			Bottom:      '━',
			BottomRight: '┛',
		}
	default:
		return BorderChars{}
	}
}

// drawBorder draws a border along the edges of area. Areas smaller than
// 2x2 cannot hold a border and are left untouched.
func drawBorder(buf *Buffer, area Rect, border BorderStyle, style Style) {
	if border == BorderNone || area.Width < 2 || area.Height < 2 {
		return
	}
	ch := border.Chars()

	buf.SetRune(area.X, area.Y, ch.TopLeft, style)
	buf.SetRune(area.Right()-1, area.Y, ch.TopRight, style)
	buf.SetRune(area.X, area.Bottom()-1, ch.BottomLeft, style)
	buf.SetRune(area.Right()-1, area.Bottom()-1, ch.BottomRight, style)

	for x := area.X + 1; x < area.Right()-1; x++ {
		buf.SetRune(x, area.Y, ch.Top, style)
		buf.SetRune(x, area.Bottom()-1, ch.Bottom, style)
	}
	for y := area.Y + 1; y < area.Bottom()-1; y++ {
		buf.SetRune(area.X, y, ch.Left, style)
		buf.SetRune(area.Right()-1, y, ch.Right, style)
	}
}
