package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/runefall/internal/rain"
)

// Cell is one painted position of a Frame.
type Cell struct {
	Char rune
	FG   rain.RGB
}

// Frame is an in-memory surface. Writes outside the frame are dropped.
type Frame struct {
	width, height int
	cells         []Cell
	x, y          int
	flushes       int
}

func NewFrame(width, height int) *Frame {
	f := &Frame{width: width, height: height, cells: make([]Cell, width*height)}
	f.clear()
	return f
}

func (f *Frame) clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Char: rain.Blank}
	}
}

func (f *Frame) Size() (int, int, error) {
	if f.width <= 0 || f.height <= 0 {
		return 0, 0, ErrNoSize
	}
	return f.width, f.height, nil
}

func (f *Frame) Setup() error {
	f.clear()
	return nil
}

func (f *Frame) MoveTo(x, y int) { f.x, f.y = x, y }

func (f *Frame) Put(ch rune, fg rain.RGB) {
	if f.x < 0 || f.x >= f.width || f.y < 0 || f.y >= f.height {
		return
	}
	f.cells[f.y*f.width+f.x] = Cell{Char: ch, FG: fg}
	f.x++
}

func (f *Frame) Flush() error {
	f.flushes++
	return nil
}

func (f *Frame) Close() error { return nil }

// Cell returns what was last painted at (x, y).
func (f *Frame) Cell(x, y int) (rune, rain.RGB) {
	c := f.cells[y*f.width+x]
	return c.Char, c.FG
}

// Flushes counts completed frames.
func (f *Frame) Flushes() int { return f.flushes }

// Plain returns the glyphs without color, one line per row.
func (f *Frame) Plain() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		for _, c := range f.row(y) {
			b.WriteRune(c.Char)
		}
		if y < f.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the frame with colors. Runs of equal color share one
// lipgloss style.
func (f *Frame) String() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		row := f.row(y)
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].FG == row[start].FG {
				continue
			}
			b.WriteString(renderRun(row[start:i]))
			start = i
		}
		if y < f.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (f *Frame) row(y int) []Cell {
	return f.cells[y*f.width : (y+1)*f.width]
}

func renderRun(cells []Cell) string {
	var s strings.Builder
	for _, c := range cells {
		s.WriteRune(c.Char)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(cells[0].FG.Hex()))
	return style.Render(s.String())
}
