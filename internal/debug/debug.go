package debug

import (
	"fmt"
	"os"
	"time"
)

var logFile *os.File

func init() {
	path := os.Getenv("STACKVIEW_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	logFile = f
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return logFile != nil
}

// Log writes a formatted message to the debug file. No-op unless
// STACKVIEW_DEBUG names a writable file path.
func Log(format string, args ...any) {
	if logFile == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "%s %s\n", ts, fmt.Sprintf(format, args...))
}
