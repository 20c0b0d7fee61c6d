package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInput(t *testing.T) {
	type tc struct {
		input    string
		want     []Event
		wantRest string
	}

	tests := map[string]tc{
		"plain text": {
			input: "ab",
			want: []Event{
				KeyEvent{Key: KeyRune, Rune: 'a'},
				KeyEvent{Key: KeyRune, Rune: 'b'},
			},
		},
		"utf8 rune": {
			input: "你",
			want:  []Event{KeyEvent{Key: KeyRune, Rune: '你'}},
		},
		"partial utf8 carries over": {
			input:    "a\xe4\xbd",
			want:     []Event{KeyEvent{Key: KeyRune, Rune: 'a'}},
			wantRest: "\xe4\xbd",
		},
		"enter": {
			input: "\r",
			want:  []Event{KeyEvent{Key: KeyEnter}},
		},
		"tab": {
			input: "\t",
			want:  []Event{KeyEvent{Key: KeyTab}},
		},
		"backspace del byte": {
			input: "\x7f",
			want:  []Event{KeyEvent{Key: KeyBackspace}},
		},
		"ctrl c": {
			input: "\x03",
			want:  []Event{KeyEvent{Key: KeyCtrlC}},
		},
		"arrow up": {
			input: "\x1b[A",
			want:  []Event{KeyEvent{Key: KeyUp}},
		},
		"ctrl right": {
			input: "\x1b[1;5C",
			want:  []Event{KeyEvent{Key: KeyRight, Mod: ModCtrl}},
		},
		"shift tab": {
			input: "\x1b[Z",
			want:  []Event{KeyEvent{Key: KeyTab, Mod: ModShift}},
		},
		"delete": {
			input: "\x1b[3~",
			want:  []Event{KeyEvent{Key: KeyDelete}},
		},
		"page down": {
			input: "\x1b[6~",
			want:  []Event{KeyEvent{Key: KeyPageDown}},
		},
		"f1 ss3": {
			input: "\x1bOP",
			want:  []Event{KeyEvent{Key: KeyF1}},
		},
		"f5 tilde": {
			input: "\x1b[15~",
			want:  []Event{KeyEvent{Key: KeyF5}},
		},
		"alt letter": {
			input: "\x1bx",
			want:  []Event{KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModAlt}},
		},
		"lone escape": {
			input: "\x1b",
			want:  []Event{KeyEvent{Key: KeyEscape}},
		},
		"incomplete csi carries over": {
			input:    "\x1b[1;5",
			want:     nil,
			wantRest: "\x1b[1;5",
		},
		"mouse left press": {
			input: "\x1b[<0;10;5M",
			want: []Event{
				MouseEvent{Button: MouseLeft, Press: true, X: 9, Y: 4},
			},
		},
		"mouse release": {
			input: "\x1b[<0;3;2m",
			want: []Event{
				MouseEvent{Button: MouseLeft, Press: false, X: 2, Y: 1},
			},
		},
		"wheel up": {
			input: "\x1b[<64;8;8M",
			want: []Event{
				MouseEvent{Button: MouseWheelUp, Press: true, X: 7, Y: 7},
			},
		},
		"ctrl click": {
			input: "\x1b[<16;1;1M",
			want: []Event{
				MouseEvent{Button: MouseLeft, Press: true, X: 0, Y: 0, Mod: ModCtrl},
			},
		},
		"mixed sequence": {
			input: "a\x1b[Cb",
			want: []Event{
				KeyEvent{Key: KeyRune, Rune: 'a'},
				KeyEvent{Key: KeyRight},
				KeyEvent{Key: KeyRune, Rune: 'b'},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			events, rest := parseInput([]byte(tt.input))
			if diff := cmp.Diff(tt.want, events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if string(rest) != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestDecodeModifier(t *testing.T) {
	type tc struct {
		param int
		want  Modifier
	}

	tests := map[string]tc{
		"none":           {param: 1, want: ModNone},
		"shift":          {param: 2, want: ModShift},
		"alt":            {param: 3, want: ModAlt},
		"ctrl":           {param: 5, want: ModCtrl},
		"ctrl shift":     {param: 6, want: ModCtrl | ModShift},
		"ctrl alt shift": {param: 8, want: ModCtrl | ModAlt | ModShift},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := decodeModifier(tt.param); got != tt.want {
				t.Errorf("decodeModifier(%d) = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}
