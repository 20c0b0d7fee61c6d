package tui

import "unicode/utf8"

// parseInput decodes raw terminal bytes into events. It handles printable
// runes, control characters, CSI and SS3 escape sequences, Alt-prefixed
// keys, and SGR mouse reports.
//
// A trailing incomplete sequence (a partial UTF-8 rune or an unterminated
// CSI sequence) is returned as rest so the caller can prepend it to the
// next read. A lone ESC at the end of the input is reported as the Escape
// key; with blocking reads there is no better signal available.
func parseInput(data []byte) (events []Event, rest []byte) {
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			switch data[i+1] {
			case '[':
				if i+2 < len(data) && data[i+2] == '<' {
					ev, consumed, incomplete := parseMouseSGR(data[i:])
					if incomplete {
						return events, data[i:]
					}
					if consumed > 0 {
						events = append(events, ev)
						i += consumed
						continue
					}
					events = append(events, KeyEvent{Key: KeyEscape})
					i++
					continue
				}

				key, mod, consumed, incomplete := parseCSI(data[i:])
				if incomplete {
					return events, data[i:]
				}
				if consumed > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++

			case 'O':
				if i+2 >= len(data) {
					return events, data[i:]
				}
				if key := parseSS3(data[i+2]); key != KeyNone {
					events = append(events, KeyEvent{Key: key})
					i += 3
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++

			default:
				next := data[i+1]
				if next >= 0x20 && next < 0x7f {
					events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
					i += 2
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
			}
			continue
		}

		if b < 0x20 {
			if key := controlToKey(b); key != KeyNone {
				events = append(events, KeyEvent{Key: key})
			}
			i++
			continue
		}

		// DEL is backspace on most terminals.
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(data[i:]) {
				return events, data[i:]
			}
			// Genuinely invalid byte, drop it.
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events, nil
}

// controlToKey converts a control byte (0x00-0x1F) to a Key.
// Returns KeyNone for bytes with no mapping.
func controlToKey(b byte) Key {
	switch b {
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}

// parseCSI parses a CSI sequence starting at data[0] (which must be ESC).
// Returns the decoded key, the xterm modifier, the number of bytes
// consumed, and whether the sequence runs past the end of data.
func parseCSI(data []byte) (key Key, mod Modifier, consumed int, incomplete bool) {
	if len(data) < 2 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0, false
	}

	var params []int
	current := 0
	hasParam := false

	for i := 2; i < len(data); i++ {
		b := data[i]

		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true

		case b == ';':
			params = append(params, current)
			current = 0
			hasParam = false

		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			key, mod := decodeCSI(params, b)
			return key, mod, i + 1, false

		default:
			return KeyNone, ModNone, 0, false
		}
	}

	return KeyNone, ModNone, 0, true
}

// decodeCSI maps a complete CSI sequence to a key and modifier.
func decodeCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case 'Z':
		// Back-tab arrives as its own sequence rather than Tab plus a
		// modifier parameter.
		return KeyTab, mod | ModShift
	case 'P':
		return KeyF1, mod
	case 'Q':
		return KeyF2, mod
	case 'R':
		return KeyF3, mod
	case 'S':
		return KeyF4, mod
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1, 7:
			return KeyHome, mod
		case 2:
			return KeyInsert, mod
		case 3:
			return KeyDelete, mod
		case 4, 8:
			return KeyEnd, mod
		case 5:
			return KeyPageUp, mod
		case 6:
			return KeyPageDown, mod
		case 11:
			return KeyF1, mod
		case 12:
			return KeyF2, mod
		case 13:
			return KeyF3, mod
		case 14:
			return KeyF4, mod
		case 15:
			return KeyF5, mod
		case 17:
			return KeyF6, mod
		case 18:
			return KeyF7, mod
		case 19:
			return KeyF8, mod
		case 20:
			return KeyF9, mod
		case 21:
			return KeyF10, mod
		case 23:
			return KeyF11, mod
		case 24:
			return KeyF12, mod
		}
	}

	return KeyNone, ModNone
}

// parseSS3 maps an SS3 final byte (after ESC O) to a key.
func parseSS3(b byte) Key {
	switch b {
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift?1) + (alt?2) + (ctrl?4).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse report:
// ESC [ < button ; x ; y M (press) or m (release).
//
// The button field encodes the button number in bits 0-1, shift/alt/ctrl
// in bits 2-4, and wheel events with bit 6 set.
func parseMouseSGR(data []byte) (ev MouseEvent, consumed int, incomplete bool) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseEvent{}, 0, false
	}

	button, x, y := 0, 0, 0
	stage := 0 // 0=button, 1=x, 2=y

	for i := 3; i < len(data); i++ {
		b := data[i]

		switch {
		case b >= '0' && b <= '9':
			switch stage {
			case 0:
				button = button*10 + int(b-'0')
			case 1:
				x = x*10 + int(b-'0')
			case 2:
				y = y*10 + int(b-'0')
			}

		case b == ';':
			stage++
			if stage > 2 {
				return MouseEvent{}, 0, false
			}

		case b == 'M' || b == 'm':
			if stage != 2 {
				return MouseEvent{}, 0, false
			}

			ev := MouseEvent{
				X:     x - 1, // 1-indexed on the wire
				Y:     y - 1,
				Press: b == 'M',
			}
			if button&4 != 0 {
				ev.Mod |= ModShift
			}
			if button&8 != 0 {
				ev.Mod |= ModAlt
			}
			if button&16 != 0 {
				ev.Mod |= ModCtrl
			}

			if button&64 != 0 {
				if button&1 != 0 {
					ev.Button = MouseWheelDown
				} else {
					ev.Button = MouseWheelUp
				}
				ev.Press = true // wheel events are instantaneous
			} else {
				switch button & 3 {
				case 0:
					ev.Button = MouseLeft
				case 1:
					ev.Button = MouseMiddle
				case 2:
					ev.Button = MouseRight
				}
			}

			return ev, i + 1, false

		default:
			return MouseEvent{}, 0, false
		}
	}

	return MouseEvent{}, 0, true
}
