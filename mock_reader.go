package tui

// ScriptReader is an EventReader that replays a fixed sequence of
// events. When the script runs out it returns QuitEvent, so a test loop
// always terminates.
type ScriptReader struct {
	events []Event
	closed bool

	// Err, when set, is returned once the scripted events are
	// exhausted, instead of QuitEvent. Used to exercise error paths.
	Err error
}

var _ EventReader = (*ScriptReader)(nil)

// NewScriptReader creates a reader that replays the given events.
func NewScriptReader(events ...Event) *ScriptReader {
	return &ScriptReader{events: events}
}

// ReadEvent returns the next scripted event, then QuitEvent (or Err)
// forever after.
func (r *ScriptReader) ReadEvent() (Event, error) {
	if len(r.events) > 0 {
		ev := r.events[0]
		r.events = r.events[1:]
		return ev, nil
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return QuitEvent{}, nil
}

// Close marks the reader closed.
func (r *ScriptReader) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *ScriptReader) Closed() bool { return r.closed }
