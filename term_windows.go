//go:build windows

package tui

import "golang.org/x/sys/windows"

// rawModeState stores the original console modes for restoration.
type rawModeState struct {
	inMode  uint32
	outMode uint32
	outFd   windows.Handle
}

// enableRawMode puts the Windows console into raw mode and enables
// virtual terminal sequences on both input and output.
func enableRawMode(fd int) (*rawModeState, error) {
	in := windows.Handle(fd)
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, err
	}

	var inMode, outMode uint32
	if err := windows.GetConsoleMode(in, &inMode); err != nil {
		return nil, err
	}
	if err := windows.GetConsoleMode(out, &outMode); err != nil {
		return nil, err
	}
	state := &rawModeState{inMode: inMode, outMode: outMode, outFd: out}

	rawIn := inMode
	rawIn &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	rawIn |= windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_WINDOW_INPUT | windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(in, rawIn); err != nil {
		return nil, err
	}

	rawOut := outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	if err := windows.SetConsoleMode(out, rawOut); err != nil {
		windows.SetConsoleMode(in, inMode)
		return nil, err
	}
	return state, nil
}

// disableRawMode restores the console modes saved by enableRawMode.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	err := windows.SetConsoleMode(windows.Handle(fd), state.inMode)
	if err2 := windows.SetConsoleMode(state.outFd, state.outMode); err == nil {
		err = err2
	}
	return err
}

// getTerminalSize returns the terminal dimensions in cells.
func getTerminalSize(fd int) (width, height int, err error) {
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 0, 0, err
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(out, &info); err != nil {
		return 0, 0, err
	}
	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}
