package rain

import "fmt"

// Generator is the leading edge of one falling stream.
type Generator struct {
	X, Y int
}

// SpawnChance is the per-column, per-tick probability Numerator/Denominator
// of starting a new stream.
type SpawnChance struct {
	Numerator   int
	Denominator int
}

func (s SpawnChance) validate() error {
	if s.Denominator <= 0 || s.Numerator < 0 || s.Numerator > s.Denominator {
		return fmt.Errorf("%w: %d/%d", ErrSpawnChance, s.Numerator, s.Denominator)
	}
	return nil
}

// Options holds the engine tunables that are not part of the charset.
type Options struct {
	Base  RGB
	Head  RGB
	Spawn SpawnChance
}

var DefaultOptions = Options{
	Base:  RGB{0, 255, 255},
	Head:  RGB{255, 0, 0},
	Spawn: SpawnChance{Numerator: 2, Denominator: 50},
}

// Waterfall owns the grid and the active generators and advances them one
// tick at a time.
type Waterfall struct {
	grid       *Grid
	generators []Generator
	charset    *Charset
	rng        Source
	opts       Options
	ticks      int
}

// New returns an empty waterfall whose cells are filled with
// charset.NewRune(Blank, opts.Base).
func New(width, height int, charset *Charset, rng Source, opts Options) (*Waterfall, error) {
	if err := opts.Spawn.validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(width, height, charset.NewRune(Blank, opts.Base))
	if err != nil {
		return nil, err
	}
	return &Waterfall{
		grid:       grid,
		generators: make([]Generator, 0, width),
		charset:    charset,
		rng:        rng,
		opts:       opts,
	}, nil
}

func (w *Waterfall) Grid() *Grid       { return w.grid }
func (w *Waterfall) Options() Options  { return w.opts }
func (w *Waterfall) Charset() *Charset { return w.charset }
func (w *Waterfall) Ticks() int        { return w.ticks }

// Generators returns a copy of the active generators.
func (w *Waterfall) Generators() []Generator {
	out := make([]Generator, len(w.generators))
	copy(out, w.generators)
	return out
}

// SetSpawnChance replaces the spawn probability.
func (w *Waterfall) SetSpawnChance(s SpawnChance) error {
	if err := s.validate(); err != nil {
		return err
	}
	w.opts.Spawn = s
	return nil
}

// AddGenerator starts a stream at the top of column x.
func (w *Waterfall) AddGenerator(x int) {
	w.grid.Set(x, 0, w.charset.RandomRune(w.opts.Base))
	w.generators = append(w.generators, Generator{X: x, Y: 0})
}

// Step advances the simulation by one tick.
func (w *Waterfall) Step() {
	// the head moves off its cell; it joins the tail
	for _, g := range w.generators {
		w.grid.At(g.X, g.Y).Color = w.opts.Base
	}

	height := w.grid.Height()
	alive := w.generators[:0]
	for _, g := range w.generators {
		if g.Y+1 < height {
			alive = append(alive, g)
		}
	}
	w.generators = alive

	for i := range w.generators {
		g := &w.generators[i]
		g.Y++
		w.grid.Set(g.X, g.Y, w.charset.RandomRune(w.opts.Base))
	}

	spawn := w.opts.Spawn
	for x := 0; x < w.grid.Width(); x++ {
		if w.rng.IntN(spawn.Denominator) < spawn.Numerator {
			w.AddGenerator(x)
		}
	}

	for i := range w.grid.cells {
		c := &w.grid.cells[i]
		if c.Lifetime <= 0 {
			continue
		}
		c.Lifetime--
		if c.Lifetime == 0 {
			c.Char = Blank
		}
	}

	for _, g := range w.generators {
		w.grid.At(g.X, g.Y).Color = w.opts.Head
	}

	w.ticks++
}

// Stats summarises the current grid.
type Stats struct {
	Tick       int `json:"tick"`
	Generators int `json:"generators"`
	Lit        int `json:"lit"`
	Fading     int `json:"fading"`
	Blank      int `json:"blank"`
	Cells      int `json:"cells"`
}

func (w *Waterfall) Stats() Stats {
	fade := w.charset.lifetimes.Fade
	s := Stats{
		Tick:       w.ticks,
		Generators: len(w.generators),
		Cells:      len(w.grid.cells),
	}
	for _, c := range w.grid.cells {
		switch {
		case c.IsBlank() || c.Lifetime == 0:
			s.Blank++
		case c.Lifetime >= fade:
			s.Lit++
		default:
			s.Fading++
		}
	}
	return s
}
