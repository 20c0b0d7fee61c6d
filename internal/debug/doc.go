// Package debug provides optional file-based debug logging.
//
// When the STACKVIEW_DEBUG environment variable is set to a file path,
// debug messages are appended to that file. Otherwise, logging is a
// no-op. Logging to the terminal itself is never an option here since
// the UI owns it.
package debug
