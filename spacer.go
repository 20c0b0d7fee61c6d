package tui

// Spacer renders nothing and absorbs flexible space. Use it to push
// siblings apart or to pad a stack.
type Spacer struct{}

var _ Widget = Spacer{}

// NewSpacer creates a spacer node, ready to drop into a stack.
func NewSpacer() *Node {
	return Leaf(Spacer{})
}

// Measure reports no preference; a spacer is always flexible.
func (Spacer) Measure() (Size, bool) { return Size{}, false }

// Focusable reports false.
func (Spacer) Focusable() bool { return false }

// NewState returns nil.
func (Spacer) NewState() WidgetState { return nil }

// Render draws nothing.
func (Spacer) Render(*Buffer, Rect, WidgetState, bool) {}

// HandleEvent reports false.
func (Spacer) HandleEvent(Event, WidgetState) bool { return false }
