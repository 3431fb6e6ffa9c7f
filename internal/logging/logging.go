// Package logging sets up the diagnostic logger used across chatlog.
//
// Diagnostics go to stderr through charmbracelet/log. User-facing progress
// (the "Searching: ..." lines) is rendered by the output package instead, so
// the two streams can be redirected independently.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var root = log.NewWithOptions(os.Stderr, log.Options{
	Level: log.WarnLevel,
})

// Setup configures the shared logger. Debug mode lowers the level to Debug;
// otherwise only warnings and errors are shown.
func Setup(debug bool, w io.Writer) {
	if w != nil {
		root.SetOutput(w)
	}
	if debug {
		root.SetLevel(log.DebugLevel)
	} else {
		root.SetLevel(log.WarnLevel)
	}
}

// New returns a child logger tagged with the given component prefix.
func New(component string) *log.Logger {
	if component == "" {
		return root
	}
	return root.WithPrefix(component)
}
