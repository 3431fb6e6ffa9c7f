// Package opener hands the result file to the operating system's default
// application.
package opener

import (
	"io"
	"path/filepath"

	"github.com/cli/browser"
)

// Opener opens a file with the host's default handler.
type Opener interface {
	Open(path string) error
}

// System opens files through the platform launcher (open, xdg-open, or the
// Windows shell).
type System struct{}

// NewSystem returns an Opener that discards the launcher's own output.
func NewSystem() System {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return System{}
}

func (System) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return browser.OpenFile(abs)
}

// Func adapts a plain function to the Opener interface.
type Func func(path string) error

func (f Func) Open(path string) error { return f(path) }

// Nop never opens anything.
type Nop struct{}

func (Nop) Open(string) error { return nil }
