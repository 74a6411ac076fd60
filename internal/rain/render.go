package rain

// Surface is the terminal capability Render paints onto.
type Surface interface {
	MoveTo(x, y int)
	// Put writes one glyph at the cursor with the given foreground.
	Put(ch rune, fg RGB)
	// Flush pushes buffered output and reports any write error since the
	// previous flush.
	Flush() error
}

// Render paints every cell, row by row, then flushes once.
func (w *Waterfall) Render(s Surface) error {
	fade := w.charset.lifetimes.Fade
	g := w.grid
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x, c := range row {
			s.MoveTo(x, y)
			s.Put(c.Char, Fade(c.Color, c.Lifetime, fade))
		}
	}
	return s.Flush()
}

// DisplayColor returns the color Render would use for the cell at (x, y).
func (w *Waterfall) DisplayColor(x, y int) RGB {
	c := w.grid.At(x, y)
	return Fade(c.Color, c.Lifetime, w.charset.lifetimes.Fade)
}
