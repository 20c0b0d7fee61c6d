package tui

// EventReader is the input side of a terminal session. Screen.Run blocks
// on ReadEvent between frames; the production implementation reads from
// stdin, tests use ScriptReader.
type EventReader interface {
	// ReadEvent blocks until the next event is available. It returns
	// QuitEvent when the input source has ended.
	ReadEvent() (Event, error)

	// Close releases resources. Must be called when done.
	Close() error
}
