package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/san-kum/runefall/internal/rain"
)

type fder interface {
	Fd() uintptr
}

// ANSI paints with escape sequences. It leaves the terminal in cooked mode,
// so Ctrl+C is delivered as SIGINT.
type ANSI struct {
	w      *bufio.Writer
	out    *termenv.Output
	fd     int
	styles map[rain.RGB]termenv.Style
}

// NewANSI writes to w using the given color profile. When w is a file its
// descriptor is used for size queries.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	bw := bufio.NewWriterSize(w, 64*1024)
	fd := -1
	if f, ok := w.(fder); ok {
		fd = int(f.Fd())
	}
	return &ANSI{
		w:      bw,
		out:    termenv.NewOutput(bw, termenv.WithProfile(profile)),
		fd:     fd,
		styles: make(map[rain.RGB]termenv.Style),
	}
}

func (a *ANSI) Size() (int, int, error) {
	if a.fd < 0 || !term.IsTerminal(a.fd) {
		return 0, 0, ErrNoSize
	}
	w, h, err := term.GetSize(a.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoSize, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, ErrNoSize
	}
	return w, h, nil
}

func (a *ANSI) Setup() error {
	a.out.HideCursor()
	a.out.ClearScreen()
	return a.w.Flush()
}

// MoveTo positions the cursor; coordinates are zero-based.
func (a *ANSI) MoveTo(x, y int) {
	a.out.MoveCursor(y+1, x+1)
}

func (a *ANSI) Put(ch rune, fg rain.RGB) {
	style, ok := a.styles[fg]
	if !ok {
		style = a.out.String().Foreground(a.out.Color(fg.Hex()))
		a.styles[fg] = style
	}
	// write errors stick in the bufio.Writer and surface on Flush
	_, _ = io.WriteString(a.w, style.Styled(string(ch)))
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

func (a *ANSI) Close() error {
	a.out.ClearScreen()
	a.out.ShowCursor()
	return a.w.Flush()
}

// ParseProfile maps a color profile name to a termenv profile.
func ParseProfile(name string) (termenv.Profile, error) {
	switch name {
	case "truecolor", "":
		return termenv.TrueColor, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ascii":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
}
