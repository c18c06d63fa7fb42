// Package console controls process-wide terminal output behavior.
package console

import (
	"github.com/muesli/termenv"

	"github.com/indaco/verscrape/internal/printer"
)

// SetNoColor forces ASCII output when disabled is true, and propagates the
// choice to the printer styles. Used by the --no-color flag and honored
// before any command runs.
func SetNoColor(disabled bool) {
	if disabled {
		termenv.SetDefaultOutput(termenv.NewOutput(termenv.DefaultOutput().Writer(), termenv.WithProfile(termenv.Ascii)))
	}
	printer.SetNoColor(disabled)
}
