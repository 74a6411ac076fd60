package metrics

import "github.com/san-kum/runefall/internal/rain"

// Coverage is the mean fraction of cells showing a glyph.
type Coverage struct {
	samples int
	sum     float64
}

func NewCoverage() *Coverage { return &Coverage{} }

func (c *Coverage) Name() string { return "coverage" }

func (c *Coverage) Observe(s rain.Stats) {
	if s.Cells == 0 {
		return
	}
	c.sum += float64(s.Lit+s.Fading) / float64(s.Cells)
	c.samples++
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *Coverage) Reset() {
	c.samples = 0
	c.sum = 0
}
