//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal. It blocks in
// select(2) so a SIGWINCH can interrupt the wait and surface as a
// ResizeEvent.
type stdinReader struct {
	fd      int            // terminal input descriptor
	buf     []byte         // read buffer
	partial []byte         // incomplete trailing sequence from the last read
	pending []Event        // parsed events not yet returned
	sigCh   chan os.Signal // SIGWINCH delivery
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

// ReadEvent blocks until the next event arrives. A window resize
// interrupts the wait and is returned as a ResizeEvent; end of input is
// returned as a QuitEvent.
func (r *stdinReader) ReadEvent() (Event, error) {
	for {
		if len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			return ev, nil
		}

		select {
		case <-r.sigCh:
			w, h, err := getTerminalSize(r.fd)
			if err != nil {
				w, h = 80, 24
			}
			return ResizeEvent{Width: w, Height: h}, nil
		default:
		}

		ready, err := waitReadable(r.fd)
		if err != nil {
			return nil, err
		}
		if !ready {
			// Interrupted by a signal; re-check sigCh.
			continue
		}

		n, err := unix.Read(r.fd, r.buf)
		if err == unix.EINTR {
			continue
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

// Close stops signal delivery.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	return nil
}

// waitReadable blocks in select(2) until fd is readable. Returns
// (false, nil) when the wait was interrupted by a signal.
func waitReadable(fd int) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	n, err := unix.Select(fd+1, &readFds, nil, nil, nil)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
