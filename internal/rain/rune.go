package rain

// Blank is the glyph of an empty cell.
const Blank = ' '

// Rune is one animated cell. Lifetime counts down to zero; at or above the
// fade duration the cell is drawn at full brightness, below it the color
// darkens linearly, and at zero the cell is blank.
type Rune struct {
	Char     rune
	Lifetime int
	Color    RGB
}

// IsBlank reports whether the cell shows nothing.
func (r Rune) IsBlank() bool {
	return r.Char == Blank
}
