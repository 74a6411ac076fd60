package metrics

import (
	"github.com/san-kum/runefall/internal/rain"
	"github.com/san-kum/runefall/internal/sim"
)

// Series records the stats of every tick.
type Series struct {
	Samples []rain.Stats
}

func NewSeries(capacity int) *Series {
	return &Series{Samples: make([]rain.Stats, 0, capacity)}
}

func (s *Series) OnTick(st rain.Stats) {
	s.Samples = append(s.Samples, st)
}

// Column extracts one field of every sample, for plotting.
func (s *Series) Column(field func(rain.Stats) int) []float64 {
	out := make([]float64, len(s.Samples))
	for i, st := range s.Samples {
		out[i] = float64(field(st))
	}
	return out
}

// Defaults returns fresh instances of the metrics reported by bench.
func Defaults() []sim.Metric {
	return []sim.Metric{NewMeanGenerators(), NewPeakGenerators(), NewCoverage()}
}
