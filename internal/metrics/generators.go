package metrics

import "github.com/san-kum/runefall/internal/rain"

// MeanGenerators is the average number of active streams per tick.
type MeanGenerators struct {
	samples int
	total   int
}

func NewMeanGenerators() *MeanGenerators { return &MeanGenerators{} }

func (m *MeanGenerators) Name() string { return "mean_generators" }

func (m *MeanGenerators) Observe(s rain.Stats) {
	m.total += s.Generators
	m.samples++
}

func (m *MeanGenerators) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanGenerators) Reset() {
	m.samples = 0
	m.total = 0
}

// PeakGenerators is the largest number of simultaneous streams seen.
type PeakGenerators struct {
	peak int
}

func NewPeakGenerators() *PeakGenerators { return &PeakGenerators{} }

func (p *PeakGenerators) Name() string { return "peak_generators" }

func (p *PeakGenerators) Observe(s rain.Stats) {
	p.peak = max(p.peak, s.Generators)
}

func (p *PeakGenerators) Value() float64 { return float64(p.peak) }

func (p *PeakGenerators) Reset() { p.peak = 0 }
