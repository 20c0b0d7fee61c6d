package tui

import "github.com/wrenholt/stackview/internal/debug"

// Registry owns all persistent widget state, keyed by tag. It is the
// only holder of WidgetState instances; widgets receive them on loan
// during Render and HandleEvent.
type Registry struct {
	states map[Tag]WidgetState
}

func newRegistry() *Registry {
	return &Registry{states: make(map[Tag]WidgetState)}
}

// reconcile matches the frame's tags against the existing state map:
// tags seen for the first time get default state from their widget's
// NewState, tags still present keep their state untouched, and state
// for tags absent from the frame is dropped. Matching is by tag
// identity only; a tag that skips a frame comes back with fresh state.
func (r *Registry) reconcile(f *frame) {
	for tag, node := range f.tags {
		if _, ok := r.states[tag]; !ok {
			debug.Log("registry: creating state for tag %q", tag)
			r.states[tag] = node.widget.NewState()
		}
	}
	for tag := range r.states {
		if _, ok := f.tags[tag]; !ok {
			debug.Log("registry: dropping state for tag %q", tag)
			delete(r.states, tag)
		}
	}
}

// State returns the persistent state for a tag, or nil if the tag is
// unknown this frame.
func (r *Registry) State(tag Tag) WidgetState {
	return r.states[tag]
}
