package tui

import "strings"

// Text is a static paragraph widget. It is stateless and never
// focusable; its content is whatever the build closure put in it this
// frame.
type Text struct {
	content string
	style   Style
	wrap    bool
	border  BorderStyle
	title   string
}

var _ Widget = (*Text)(nil)

// NewText creates a paragraph with the given content. Lines are split
// on newlines; content wider than the assigned area is clipped unless
// Wrapped is set.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Styled sets the text style and returns the widget for chaining.
func (t *Text) Styled(style Style) *Text {
	t.style = style
	return t
}

// Wrapped enables word wrapping to the assigned width. A wrapped text
// has no natural size and becomes flexible.
func (t *Text) Wrapped() *Text {
	t.wrap = true
	return t
}

// Bordered draws a border around the content.
func (t *Text) Bordered(border BorderStyle) *Text {
	t.border = border
	return t
}

// Titled sets a title shown in the top border. Only visible together
// with Bordered.
func (t *Text) Titled(title string) *Text {
	t.title = title
	return t
}

// Measure returns the natural size of the unwrapped content, including
// the border if any. Wrapped text is flexible.
func (t *Text) Measure() (Size, bool) {
	if t.wrap {
		return Size{}, false
	}
	lines := strings.Split(t.content, "\n")
	width := 0
	for _, line := range lines {
		if w := stringWidth(line); w > width {
			width = w
		}
	}
	height := len(lines)
	if t.border != BorderNone {
		width += 2
		height += 2
	}
	return Size{Width: width, Height: height}, true
}

// Focusable reports false; text never takes focus.
func (t *Text) Focusable() bool { return false }

// NewState returns nil; text keeps no state across frames.
func (t *Text) NewState() WidgetState { return nil }

// Render draws the border, title, and content lines into area.
func (t *Text) Render(buf *Buffer, area Rect, _ WidgetState, _ bool) {
	if area.IsEmpty() {
		return
	}

	inner := area
	if t.border != BorderNone {
		drawBorder(buf, area, t.border, t.style)
		if t.title != "" && area.Width > 4 {
			title := " " + t.title + " "
			buf.SetStringClipped(area.X+1, area.Y, title, t.style, NewRect(area.X+1, area.Y, area.Width-2, 1))
		}
		inner = area.Inset(1)
	}
	if inner.IsEmpty() {
		return
	}

	lines := strings.Split(t.content, "\n")
	if t.wrap {
		lines = wrapLines(t.content, inner.Width)
	}
	for i, line := range lines {
		if i >= inner.Height {
			break
		}
		buf.SetStringClipped(inner.X, inner.Y+i, line, t.style, inner)
	}
}

// HandleEvent reports false; text consumes nothing.
func (t *Text) HandleEvent(Event, WidgetState) bool { return false }

// wrapLines word-wraps text to the given display width, respecting
// embedded newlines. Words longer than a full line are split mid-word.
func wrapLines(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		var line strings.Builder
		lineWidth := 0
		for _, word := range strings.Fields(para) {
			wordWidth := stringWidth(word)

			if lineWidth > 0 && lineWidth+1+wordWidth > width {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}

			// Split words that cannot fit on a line of their own.
			for wordWidth > width {
				var head strings.Builder
				headWidth := 0
				for _, r := range word {
					rw := runeWidth(r)
					if headWidth+rw > width-lineWidth {
						break
					}
					head.WriteRune(r)
					headWidth += rw
				}
				if head.Len() == 0 {
					// A single rune wider than the line; let render clip it.
					break
				}
				line.WriteString(head.String())
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
				word = word[len(head.String()):]
				wordWidth = stringWidth(word)
			}

			line.WriteString(word)
			lineWidth += wordWidth
		}
		lines = append(lines, line.String())
	}
	return lines
}
