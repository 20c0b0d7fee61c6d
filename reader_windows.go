//go:build windows

package tui

import (
	"io"
	"os"
)

// stdinReader implements EventReader for Windows consoles. Key and mouse
// decoding relies on virtual terminal input being enabled by raw mode.
// Resize delivery is not wired on Windows.
type stdinReader struct {
	in      *os.File
	buf     []byte
	partial []byte
	pending []Event
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	return &stdinReader{
		in:  in,
		buf: make([]byte, 256),
	}, nil
}

// ReadEvent blocks until the next event arrives. End of input is
// returned as a QuitEvent.
func (r *stdinReader) ReadEvent() (Event, error) {
	for {
		if len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			return ev, nil
		}

		n, err := r.in.Read(r.buf)
		if err == io.EOF {
			return QuitEvent{}, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return QuitEvent{}, nil
		}

		data := r.buf[:n]
		if len(r.partial) > 0 {
			data = append(r.partial, data...)
			r.partial = nil
		}

		events, rest := parseInput(data)
		if len(rest) > 0 {
			r.partial = append([]byte(nil), rest...)
		}
		r.pending = events
	}
}

// Close releases resources.
func (r *stdinReader) Close() error {
	return nil
}
