// Package term provides the terminal surfaces the rain is painted on.
//
//   - [ANSI]: escape sequences on a writer (termenv), no raw mode
//   - [Screen]: a tcell screen in raw mode
//   - [Frame]: an in-memory cell buffer, rendered by the bubbletea view and
//     used in tests
package term

import (
	"errors"

	"github.com/san-kum/runefall/internal/rain"
)

// ErrNoSize indicates the terminal size could not be determined.
var ErrNoSize = errors.New("term: cannot determine terminal size")

// Terminal is a paintable surface with a lifecycle.
type Terminal interface {
	rain.Surface
	// Size reports the surface size in character cells.
	Size() (width, height int, err error)
	// Setup hides the cursor and clears the screen.
	Setup() error
	// Close restores the terminal.
	Close() error
}

var (
	_ Terminal = (*ANSI)(nil)
	_ Terminal = (*Screen)(nil)
	_ Terminal = (*Frame)(nil)
)
