package tui

// stubWidget is a minimal Widget for engine tests. It records the
// events routed to it and can be configured with a size preference and
// focusability.
type stubWidget struct {
	pref      Size
	hasPref   bool
	focusable bool
	consume   bool
	events    []Event
}

type stubState struct {
	serial int
}

func (*stubState) isWidgetState() {}

var stateSerial int

func (w *stubWidget) Measure() (Size, bool) { return w.pref, w.hasPref }

func (w *stubWidget) Focusable() bool { return w.focusable }

func (w *stubWidget) NewState() WidgetState {
	stateSerial++
	return &stubState{serial: stateSerial}
}

func (w *stubWidget) Render(*Buffer, Rect, WidgetState, bool) {}

func (w *stubWidget) HandleEvent(ev Event, _ WidgetState) bool {
	w.events = append(w.events, ev)
	return w.consume
}

func flexLeaf() *Node {
	return Leaf(&stubWidget{})
}

func focusLeaf(tag Tag) *Node {
	return Tagged(tag, &stubWidget{focusable: true})
}
