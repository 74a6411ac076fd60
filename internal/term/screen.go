package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/runefall/internal/rain"
)

// Screen paints through a tcell screen.
type Screen struct {
	screen tcell.Screen
	x, y   int
}

// NewScreen opens and initialises the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// WrapScreen uses an already initialised screen, such as a simulation
// screen.
func WrapScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) Size() (int, int, error) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrNoSize
	}
	return w, h, nil
}

func (s *Screen) Setup() error {
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

func (s *Screen) MoveTo(x, y int) { s.x, s.y = x, y }

func (s *Screen) Put(ch rune, fg rain.RGB) {
	color := tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))
	s.screen.SetContent(s.x, s.y, ch, nil, tcell.StyleDefault.Foreground(color))
	s.x++
}

func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

// WatchQuit calls cancel when Esc, Ctrl+C or q is pressed. The screen is in
// raw mode, so these never arrive as signals.
func (s *Screen) WatchQuit(cancel context.CancelFunc) {
	go func() {
		for {
			switch ev := s.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if isQuitKey(ev) {
					cancel()
					return
				}
			}
		}
	}()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
