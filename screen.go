package tui

import (
	"fmt"
	"os"

	"github.com/wrenholt/stackview/internal/debug"
)

// Screen runs a declarative UI: a build closure that produces a fresh
// view tree, re-invoked after every event, with widget state persisted
// across rebuilds by tag. Run owns the terminal for its whole lifetime
// and restores it exactly once on every exit path.
type Screen struct {
	build  func() *Node
	term   Terminal
	reader EventReader

	registry *Registry
	focus    *FocusManager
	buf      *Buffer
	frame    *frame // last assembled frame, for event routing

	global     func(KeyEvent) bool
	altScreen  bool
	showCursor bool

	restored bool
	quit     bool
}

// Option configures a Screen during construction.
type Option func(*Screen) error

// WithTerminal overrides the output terminal. Used by tests.
func WithTerminal(t Terminal) Option {
	return func(s *Screen) error {
		if t == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		s.term = t
		return nil
	}
}

// WithEventReader overrides the input source. Used by tests.
func WithEventReader(r EventReader) Option {
	return func(s *Screen) error {
		if r == nil {
			return fmt.Errorf("event reader must not be nil")
		}
		s.reader = r
		return nil
	}
}

// WithGlobalKeyHandler installs a handler for key events the focused
// widget did not consume. It runs before the built-in bindings and
// reports whether it consumed the event.
func WithGlobalKeyHandler(fn func(KeyEvent) bool) Option {
	return func(s *Screen) error {
		s.global = fn
		return nil
	}
}

// WithoutAltScreen renders on the main screen buffer instead of the
// alternate one.
func WithoutAltScreen() Option {
	return func(s *Screen) error {
		s.altScreen = false
		return nil
	}
}

// WithCursorVisible leaves the terminal cursor visible while running.
func WithCursorVisible() Option {
	return func(s *Screen) error {
		s.showCursor = true
		return nil
	}
}

// NewScreen creates a screen around a build closure. The closure is
// called once per frame and must return the root of a freshly built
// tree. Without options the screen talks to the process's stdin and
// stdout.
func NewScreen(build func() *Node, opts ...Option) (*Screen, error) {
	if build == nil {
		return nil, fmt.Errorf("build function must not be nil")
	}
	s := &Screen{
		build:     build,
		altScreen: true,
		registry:  newRegistry(),
		focus:     newFocusManager(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.term == nil {
		s.term = NewANSITerminal(os.Stdout, os.Stdin)
	}
	if s.reader == nil {
		r, err := NewEventReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("create event reader: %w", err)
		}
		s.reader = r
	}
	return s, nil
}

// Run drives the synchronous event loop: render a frame, block for the
// next event, dispatch it, repeat. It returns nil after a quit signal
// (closed input, Ctrl+C, or a QuitEvent) and propagates construction
// and I/O errors. The terminal is restored before Run returns, on
// every path.
func (s *Screen) Run() error {
	if err := s.term.EnterRawMode(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.restored = false
	s.quit = false
	defer s.restore()
	defer s.reader.Close()

	if s.altScreen {
		s.term.EnterAltScreen()
	}
	if !s.showCursor {
		s.term.HideCursor()
	}
	s.term.Clear()

	w, h := s.term.Size()
	s.buf = NewBuffer(w, h)
	debug.Log("screen: starting loop at %dx%d", w, h)

	for {
		if err := s.renderFrame(); err != nil {
			return err
		}

		ev, err := s.reader.ReadEvent()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}

		switch e := ev.(type) {
		case QuitEvent:
			return nil
		case ResizeEvent:
			// Not delivered to widgets; a resize only means new
			// geometry and a full repaint.
			debug.Log("screen: resize to %dx%d", e.Width, e.Height)
			if e.Width != s.buf.Width() || e.Height != s.buf.Height() {
				s.buf.Resize(e.Width, e.Height)
				s.term.Clear()
			}
		case KeyEvent:
			s.dispatchKey(e)
			if s.quit {
				return nil
			}
		case MouseEvent:
			s.dispatchToFocused(e)
		}
	}
}

// State returns the persistent state held for a tag, or nil if the tag
// was absent from the last reconciled frame. Build closures use it to
// derive content from widget state.
func (s *Screen) State(tag Tag) WidgetState {
	return s.registry.State(tag)
}

// Quit requests a clean exit. Safe to call from widget or global
// handlers; the loop exits after the current event is dispatched.
func (s *Screen) Quit() {
	s.quit = true
}

// restore undoes raw mode, alt screen, and cursor hiding. Guarded so it
// runs exactly once per Run no matter how many paths reach it.
func (s *Screen) restore() {
	if s.restored {
		return
	}
	s.restored = true
	if s.altScreen {
		s.term.ExitAltScreen()
	}
	s.term.ShowCursor()
	if err := s.term.ExitRawMode(); err != nil {
		debug.Log("screen: exit raw mode: %v", err)
	}
}

// renderFrame runs one build-reconcile-layout-render cycle.
func (s *Screen) renderFrame() error {
	f, err := newFrame(s.build())
	if err != nil {
		return err
	}

	s.frame = f
	s.registry.reconcile(f)
	layoutTree(f.root, s.buf.Rect())
	s.focus.setOrder(f.order)

	s.buf.Clear()
	focusedTag, hasFocus := s.focus.Focused()
	for _, leaf := range f.leaves {
		var state WidgetState
		if leaf.tag != "" {
			state = s.registry.State(leaf.tag)
		}
		focused := hasFocus && leaf.tag != "" && leaf.tag == focusedTag
		leaf.widget.Render(s.buf, leaf.rect, state, focused)
	}

	s.term.Flush(s.buf.Diff())
	s.buf.Swap()
	return nil
}

// dispatchKey routes a key event: focused widget first, then the global
// handler, then the built-in bindings (Tab cycles focus forward,
// Shift+Tab backward, Ctrl+C quits).
func (s *Screen) dispatchKey(e KeyEvent) {
	if s.dispatchToFocused(e) {
		return
	}
	if s.global != nil && s.global(e) {
		return
	}

	switch {
	case e.Is(KeyTab, ModShift):
		s.focus.Prev()
	case e.Is(KeyTab):
		s.focus.Next()
	case e.Is(KeyCtrlC):
		s.quit = true
	}
}

// dispatchToFocused delivers an event to the focused widget, if any,
// and reports whether it was consumed.
func (s *Screen) dispatchToFocused(ev Event) bool {
	tag, ok := s.focus.Focused()
	if !ok {
		return false
	}
	if s.frame == nil {
		return false
	}
	node := s.frame.tags[tag]
	if node == nil {
		return false
	}
	return node.widget.HandleEvent(ev, s.registry.State(tag))
}
