package tui

import (
	"errors"
	"strings"
	"testing"
)

func key(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }

func newTestScreen(t *testing.T, build func() *Node, events []Event, opts ...Option) (*Screen, *MockTerminal, *ScriptReader) {
	t.Helper()
	term := NewMockTerminal(40, 10)
	reader := NewScriptReader(events...)
	opts = append(opts, WithTerminal(term), WithEventReader(reader))
	s, err := NewScreen(build, opts...)
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	return s, term, reader
}

func TestScreenTypedTextLandsInState(t *testing.T) {
	build := func() *Node {
		return VStack(Tagged("field", NewInput()))
	}
	s, _, _ := newTestScreen(t, build, []Event{key('h'), key('i')})

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	st, ok := s.State("field").(*InputState)
	if !ok {
		t.Fatal("no InputState for field")
	}
	if st.Text() != "hi" {
		t.Errorf("field text = %q, want %q", st.Text(), "hi")
	}
}

func TestScreenTabMovesFocus(t *testing.T) {
	build := func() *Node {
		return VStack(
			Tagged("first", NewInput()),
			Tagged("second", NewInput()),
		)
	}
	events := []Event{
		key('a'),
		KeyEvent{Key: KeyTab},
		key('b'),
		KeyEvent{Key: KeyTab, Mod: ModShift},
		key('c'),
	}
	s, _, _ := newTestScreen(t, build, events)

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	first := s.State("first").(*InputState)
	second := s.State("second").(*InputState)
	if first.Text() != "ac" {
		t.Errorf("first field = %q, want %q", first.Text(), "ac")
	}
	if second.Text() != "b" {
		t.Errorf("second field = %q, want %q", second.Text(), "b")
	}
}

func TestScreenCtrlCQuits(t *testing.T) {
	build := func() *Node {
		return VStack(Tagged("field", NewInput()))
	}
	// The 'x' after Ctrl+C must never be dispatched.
	events := []Event{
		KeyEvent{Key: KeyCtrlC},
		key('x'),
	}
	s, _, _ := newTestScreen(t, build, events)

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st := s.State("field").(*InputState); st.Text() != "" {
		t.Errorf("field text = %q, want empty after quit", st.Text())
	}
}

func TestScreenRestoreRunsOncePerSetup(t *testing.T) {
	type tc struct {
		events  []Event
		readErr error
		build   func() *Node
		wantErr bool
	}

	okBuild := func() *Node { return VStack(Leaf(NewText("hello"))) }

	tests := map[string]tc{
		"clean quit": {
			build: okBuild,
		},
		"read error": {
			build:   okBuild,
			readErr: errors.New("tty went away"),
			wantErr: true,
		},
		"construction error": {
			build: func() *Node {
				return HStack(focusLeaf("dup"), focusLeaf("dup"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, term, reader := newTestScreen(t, tt.build, tt.events)
			reader.Err = tt.readErr

			err := s.Run()
			if tt.wantErr && err == nil {
				t.Fatal("Run returned nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Run: %v", err)
			}

			if term.RawModeEnters != 1 || term.RawModeExits != 1 {
				t.Errorf("raw mode enters/exits = %d/%d, want 1/1",
					term.RawModeEnters, term.RawModeExits)
			}
			if term.AltScreenOns != 1 || term.AltScreenOffs != 1 {
				t.Errorf("alt screen ons/offs = %d/%d, want 1/1",
					term.AltScreenOns, term.AltScreenOffs)
			}
			if !reader.Closed() {
				t.Error("reader was not closed")
			}
		})
	}
}

func TestScreenReadErrorIsWrapped(t *testing.T) {
	readErr := errors.New("tty went away")
	s, _, reader := newTestScreen(t, func() *Node { return VStack(flexLeaf()) }, nil)
	reader.Err = readErr

	err := s.Run()
	if !errors.Is(err, readErr) {
		t.Errorf("Run error = %v, want wrapped %v", err, readErr)
	}
}

func TestScreenResizeRepaints(t *testing.T) {
	build := func() *Node { return VStack(Leaf(NewText("hello"))) }
	s, term, _ := newTestScreen(t, build, []Event{ResizeEvent{Width: 20, Height: 4}})

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := s.buf.Width(); got != 20 {
		t.Errorf("buffer width after resize = %d, want 20", got)
	}
	if got := s.buf.Height(); got != 4 {
		t.Errorf("buffer height after resize = %d, want 4", got)
	}
	// Initial clear plus the resize clear.
	if term.ClearCount < 2 {
		t.Errorf("clear count = %d, want at least 2", term.ClearCount)
	}
}

func TestScreenResizeNotDeliveredToWidgets(t *testing.T) {
	w := &stubWidget{focusable: true}
	build := func() *Node { return VStack(Tagged("w", w)) }
	s, _, _ := newTestScreen(t, build, []Event{ResizeEvent{Width: 15, Height: 5}})

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, ev := range w.events {
		if _, ok := ev.(ResizeEvent); ok {
			t.Error("resize event was dispatched to a widget")
		}
	}
}

func TestScreenGlobalHandlerSeesUnconsumedKeys(t *testing.T) {
	var seen []rune
	handler := func(e KeyEvent) bool {
		if e.IsRune() {
			seen = append(seen, e.Rune)
			return true
		}
		return false
	}

	// No focusable widget, so every rune falls through.
	build := func() *Node { return VStack(Leaf(NewText("static"))) }
	s, _, _ := newTestScreen(t, build, []Event{key('q'), key('r')}, WithGlobalKeyHandler(handler))

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(seen) != "qr" {
		t.Errorf("global handler saw %q, want %q", string(seen), "qr")
	}
}

func TestScreenQuitFromGlobalHandler(t *testing.T) {
	var s *Screen
	handler := func(e KeyEvent) bool {
		if e.Is(KeyCtrlQ) {
			s.Quit()
			return true
		}
		return false
	}

	build := func() *Node { return VStack(Tagged("field", NewInput())) }
	term := NewMockTerminal(40, 10)
	reader := NewScriptReader(KeyEvent{Key: KeyCtrlQ}, key('x'))
	var err error
	s, err = NewScreen(build, WithTerminal(term), WithEventReader(reader), WithGlobalKeyHandler(handler))
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st := s.State("field").(*InputState); st.Text() != "" {
		t.Errorf("field text = %q, want empty", st.Text())
	}
}

func TestScreenMouseGoesToFocusedWidget(t *testing.T) {
	first := &stubWidget{focusable: true}
	second := &stubWidget{focusable: true}
	build := func() *Node {
		return VStack(Tagged("first", first), Tagged("second", second))
	}
	click := MouseEvent{Button: MouseLeft, Press: true, X: 3, Y: 1}
	s, _, _ := newTestScreen(t, build, []Event{click})

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(first.events) != 1 || first.events[0] != click {
		t.Errorf("focused widget saw %+v, want the click", first.events)
	}
	if len(second.events) != 0 {
		t.Errorf("unfocused widget saw %+v, want nothing", second.events)
	}
}

func TestScreenRendersContent(t *testing.T) {
	build := func() *Node {
		return VStack(Leaf(NewText("hello world")))
	}
	s, term, _ := newTestScreen(t, build, nil)

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(term.Content(), "hello world") {
		t.Errorf("terminal content missing text:\n%s", term.Content())
	}
}

func TestScreenWithoutAltScreen(t *testing.T) {
	s, term, _ := newTestScreen(t, func() *Node { return VStack(flexLeaf()) }, nil, WithoutAltScreen())

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term.AltScreenOns != 0 || term.AltScreenOffs != 0 {
		t.Errorf("alt screen used despite WithoutAltScreen: %d/%d",
			term.AltScreenOns, term.AltScreenOffs)
	}
	if term.RawModeExits != 1 {
		t.Errorf("raw mode exits = %d, want 1", term.RawModeExits)
	}
}

func TestNewScreenRejectsNilBuild(t *testing.T) {
	if _, err := NewScreen(nil); err == nil {
		t.Error("NewScreen(nil) succeeded, want error")
	}
}
