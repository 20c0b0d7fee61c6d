package tui

// WidgetState is persistent per-widget data that survives across frame
// rebuilds as long as the widget's tag reappears. Concrete states live
// in this package and implement the marker method; the registry owns
// every instance.
type WidgetState interface {
	// isWidgetState is a marker method to prevent external implementations.
	isWidgetState()
}

// Widget is the capability set a leaf node exposes to the engine.
// Widgets are pure descriptors: they are rebuilt every frame and hold no
// mutable data themselves. Anything that must survive a rebuild lives in
// the WidgetState created by NewState and threaded back into Render and
// HandleEvent.
type Widget interface {
	// Measure returns the widget's preferred size, if it has one.
	// Widgets that report false are flexible and share leftover space.
	// A zero component means no preference on that axis.
	Measure() (Size, bool)

	// Focusable reports whether the widget can receive keyboard focus.
	// Only tagged leaves participate in focus order; a focusable widget
	// on an untagged leaf is never focused.
	Focusable() bool

	// NewState creates the widget's default persistent state. Called by
	// the registry the first frame a tag appears. Stateless widgets
	// return nil.
	NewState() WidgetState

	// Render draws the widget into its assigned area of the buffer.
	// state is the persistent state for the widget's tag (nil for
	// untagged or stateless widgets); focused reports whether the
	// widget currently holds keyboard focus.
	Render(buf *Buffer, area Rect, state WidgetState, focused bool)

	// HandleEvent processes an input event routed to the focused
	// widget, mutating state as needed. It reports whether the event
	// was consumed; unconsumed events fall through to global bindings.
	HandleEvent(ev Event, state WidgetState) bool
}
