package tui

import "github.com/rivo/uniseg"

// InputState is the persistent state of an Input: the edited text, the
// caret as a byte offset into it, and an optional selection anchor.
// The caret always sits on a grapheme cluster boundary; movement and
// deletion operate on whole clusters, never on bytes or codepoints.
type InputState struct {
	text      string
	caret     int // byte offset, always a cluster boundary
	anchor    int // selection anchor, meaningful when selecting
	selecting bool
}

func (*InputState) isWidgetState() {}

// Text returns the current content.
func (s *InputState) Text() string { return s.text }

// SetText replaces the content and moves the caret to the end.
func (s *InputState) SetText(text string) {
	s.text = text
	s.caret = len(text)
	s.selecting = false
}

// Caret returns the caret's byte offset.
func (s *InputState) Caret() int { return s.caret }

// Selection returns the selected byte range [start, end), or false when
// nothing is selected.
func (s *InputState) Selection() (start, end int, ok bool) {
	if !s.selecting || s.anchor == s.caret {
		return 0, 0, false
	}
	if s.anchor < s.caret {
		return s.anchor, s.caret, true
	}
	return s.caret, s.anchor, true
}

// SelectedText returns the selected substring, or "" when nothing is
// selected.
func (s *InputState) SelectedText() string {
	start, end, ok := s.Selection()
	if !ok {
		return ""
	}
	return s.text[start:end]
}

// ClearSelection drops the selection without moving the caret.
func (s *InputState) ClearSelection() {
	s.selecting = false
}

// Insert inserts a rune at the caret, replacing the selection if one
// exists.
func (s *InputState) Insert(r rune) {
	s.InsertString(string(r))
}

// InsertString inserts text at the caret, replacing the selection if
// one exists.
func (s *InputState) InsertString(text string) {
	s.deleteSelection()
	s.text = s.text[:s.caret] + text + s.text[s.caret:]
	s.caret += len(text)
}

// DeleteBackward removes the selection, or the cluster before the caret.
func (s *InputState) DeleteBackward() {
	if s.deleteSelection() {
		return
	}
	if s.caret == 0 {
		return
	}
	prev := prevBoundary(s.text, s.caret)
	s.text = s.text[:prev] + s.text[s.caret:]
	s.caret = prev
}

// DeleteForward removes the selection, or the cluster after the caret.
func (s *InputState) DeleteForward() {
	if s.deleteSelection() {
		return
	}
	if s.caret >= len(s.text) {
		return
	}
	next := nextBoundary(s.text, s.caret)
	s.text = s.text[:s.caret] + s.text[next:]
}

// CaretLeft moves the caret one cluster left. With a selection, the
// caret collapses to the selection's left edge instead.
func (s *InputState) CaretLeft() {
	if start, _, ok := s.Selection(); ok {
		s.caret = start
		s.selecting = false
		return
	}
	s.selecting = false
	s.caret = prevBoundary(s.text, s.caret)
}

// CaretRight moves the caret one cluster right. With a selection, the
// caret collapses to the selection's right edge instead.
func (s *InputState) CaretRight() {
	if _, end, ok := s.Selection(); ok {
		s.caret = end
		s.selecting = false
		return
	}
	s.selecting = false
	s.caret = nextBoundary(s.text, s.caret)
}

// CaretToStart moves the caret to the beginning of the text.
func (s *InputState) CaretToStart() {
	s.selecting = false
	s.caret = 0
}

// CaretToEnd moves the caret to the end of the text.
func (s *InputState) CaretToEnd() {
	s.selecting = false
	s.caret = len(s.text)
}

// SelectLeft extends the selection one cluster left.
func (s *InputState) SelectLeft() {
	s.startSelection()
	s.caret = prevBoundary(s.text, s.caret)
}

// SelectRight extends the selection one cluster right.
func (s *InputState) SelectRight() {
	s.startSelection()
	s.caret = nextBoundary(s.text, s.caret)
}

// SelectToStart extends the selection to the beginning of the text.
func (s *InputState) SelectToStart() {
	s.startSelection()
	s.caret = 0
}

// SelectToEnd extends the selection to the end of the text.
func (s *InputState) SelectToEnd() {
	s.startSelection()
	s.caret = len(s.text)
}

func (s *InputState) startSelection() {
	if !s.selecting {
		s.anchor = s.caret
		s.selecting = true
	}
}

// deleteSelection removes the selected range and reports whether a
// selection existed.
func (s *InputState) deleteSelection() bool {
	start, end, ok := s.Selection()
	s.selecting = false
	if !ok {
		return false
	}
	s.text = s.text[:start] + s.text[end:]
	s.caret = start
	return true
}

// nextBoundary returns the byte offset of the next grapheme cluster
// boundary after pos.
func nextBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[pos:], -1)
	return pos + len(cluster)
}

// prevBoundary returns the byte offset of the grapheme cluster boundary
// preceding pos.
func prevBoundary(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	i := 0
	for i < pos {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		next := i + len(cluster)
		if next >= pos {
			return i
		}
		i = next
	}
	return 0
}

// Input is a single-line editable text field. All of its data lives in
// an InputState under the leaf's tag, so an Input must be used with
// Tagged to be useful.
type Input struct {
	placeholder      string
	style            Style
	placeholderStyle Style
	hasPlaceholderSt bool
}

var _ Widget = (*Input)(nil)

// NewInput creates an empty input field.
func NewInput() *Input {
	return &Input{}
}

// Placeholder sets text shown dimmed while the field is empty.
func (in *Input) Placeholder(text string) *Input {
	in.placeholder = text
	return in
}

// Styled sets the text style.
func (in *Input) Styled(style Style) *Input {
	in.style = style
	return in
}

// PlaceholderStyled overrides the placeholder style (dimmed by default).
func (in *Input) PlaceholderStyled(style Style) *Input {
	in.placeholderStyle = style
	in.hasPlaceholderSt = true
	return in
}

// Measure prefers a single row and any width.
func (in *Input) Measure() (Size, bool) {
	return Size{Height: 1}, true
}

// Focusable reports true.
func (in *Input) Focusable() bool { return true }

// NewState creates an empty InputState.
func (in *Input) NewState() WidgetState { return &InputState{} }

// Render draws the field on the first row of area: the text scrolled so
// the caret stays visible, the selection and caret in reverse video
// when focused, or the placeholder when empty.
func (in *Input) Render(buf *Buffer, area Rect, state WidgetState, focused bool) {
	if area.IsEmpty() {
		return
	}
	st, _ := state.(*InputState)
	if st == nil {
		st = &InputState{}
	}
	row := area.Y
	clip := NewRect(area.X, row, area.Width, 1)

	if st.text == "" {
		if in.placeholder != "" && !focused {
			style := in.placeholderStyle
			if !in.hasPlaceholderSt {
				style = in.style.Dim()
			}
			buf.SetStringClipped(area.X, row, in.placeholder, style, clip)
		}
		if focused {
			buf.SetRune(area.X, row, ' ', in.style.Reverse())
		}
		return
	}

	// Scroll horizontally so the caret column is always inside the area.
	caretCol := stringWidth(st.text[:st.caret])
	offset := 0
	if caretCol >= area.Width {
		offset = caretCol - area.Width + 1
	}

	selStart, selEnd, hasSel := st.Selection()

	col := -offset
	pos := 0
	rest := st.text
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		w := stringWidth(cluster)

		if col >= area.Width {
			break
		}
		if col < 0 && col+w > 0 {
			// A wide cluster straddling the scrolled-off edge has no
			// whole cell to land in; blank its visible columns.
			for c := 0; c < col+w; c++ {
				buf.SetRune(area.X+c, row, ' ', in.style)
			}
		}
		if col >= 0 {
			style := in.style
			if hasSel && pos >= selStart && pos < selEnd {
				style = style.Reverse()
			}
			if focused && pos == st.caret {
				style = in.style.Reverse()
			}
			buf.SetStringClipped(area.X+col, row, cluster, style, clip)
		}

		col += w
		pos += len(cluster)
		rest = tail
	}

	// Caret past the last cluster renders as a reverse-video space.
	if focused && st.caret == len(st.text) && col >= 0 && col < area.Width {
		buf.SetRune(area.X+col, row, ' ', in.style.Reverse())
	}
}

// HandleEvent implements the field's editing bindings. Printable runes
// insert, Backspace/Delete remove, arrows move by cluster (Shift
// extends the selection), Home/End and Ctrl+A/Ctrl+E jump to the ends.
// Everything else is left for the global bindings.
func (in *Input) HandleEvent(ev Event, state WidgetState) bool {
	key, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	st, ok := state.(*InputState)
	if !ok || st == nil {
		return false
	}

	switch {
	case key.IsRune() && !key.Mod.Has(ModCtrl) && !key.Mod.Has(ModAlt):
		st.Insert(key.Rune)
	case key.Is(KeyBackspace):
		st.DeleteBackward()
	case key.Is(KeyDelete):
		st.DeleteForward()
	case key.Is(KeyLeft, ModShift):
		st.SelectLeft()
	case key.Is(KeyLeft):
		st.CaretLeft()
	case key.Is(KeyRight, ModShift):
		st.SelectRight()
	case key.Is(KeyRight):
		st.CaretRight()
	case key.Is(KeyHome, ModShift):
		st.SelectToStart()
	case key.Is(KeyHome), key.Is(KeyCtrlA):
		st.CaretToStart()
	case key.Is(KeyEnd, ModShift):
		st.SelectToEnd()
	case key.Is(KeyEnd), key.Is(KeyCtrlE):
		st.CaretToEnd()
	default:
		return false
	}
	return true
}
