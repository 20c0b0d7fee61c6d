package tui

import "github.com/wrenholt/stackview/internal/debug"

// FocusManager tracks which tag holds keyboard focus. The focus order
// is the depth-first declaration-order list of focusable tags from the
// current frame; it is replaced every frame via setOrder, which also
// validates that the current focus survived the rebuild.
type FocusManager struct {
	order   []Tag
	current Tag
	focused bool
}

func newFocusManager() *FocusManager {
	return &FocusManager{}
}

// Focused returns the currently focused tag, if any.
func (f *FocusManager) Focused() (Tag, bool) {
	return f.current, f.focused
}

// Next advances focus to the next tag in order, wrapping past the end.
func (f *FocusManager) Next() {
	f.move(1)
}

// Prev moves focus to the previous tag in order, wrapping past the start.
func (f *FocusManager) Prev() {
	f.move(-1)
}

func (f *FocusManager) move(delta int) {
	if len(f.order) == 0 || !f.focused {
		return
	}
	idx := indexOf(f.order, f.current)
	if idx < 0 {
		idx = 0
	}
	idx = (idx + delta + len(f.order)) % len(f.order)
	f.current = f.order[idx]
	debug.Log("focus: moved to %q", f.current)
}

// setOrder installs the focus order for a new frame and revalidates the
// current focus. A focused tag that survived the rebuild keeps focus.
// A vanished tag hands focus to the nearest survivor by its old
// position, looking at following tags first, then preceding ones.
// With nothing focused yet, the first focusable tag takes focus.
func (f *FocusManager) setOrder(order []Tag) {
	old := f.order
	f.order = order

	if len(order) == 0 {
		f.current = ""
		f.focused = false
		return
	}
	if !f.focused {
		f.current = order[0]
		f.focused = true
		return
	}
	if indexOf(order, f.current) >= 0 {
		return
	}

	pos := indexOf(old, f.current)
	for i := pos + 1; i < len(old); i++ {
		if indexOf(order, old[i]) >= 0 {
			f.current = old[i]
			return
		}
	}
	for i := pos - 1; i >= 0; i-- {
		if indexOf(order, old[i]) >= 0 {
			f.current = old[i]
			return
		}
	}
	f.current = order[0]
}

func indexOf(tags []Tag, tag Tag) int {
	for i, t := range tags {
		if t == tag {
			return i
		}
	}
	return -1
}
