package sim

import (
	"time"

	"github.com/san-kum/runefall/internal/rain"
)

// Engine is the simulation driven by a Runner. *rain.Waterfall implements it.
type Engine interface {
	Step()
	Render(s rain.Surface) error
	Stats() rain.Stats
}

type Metric interface {
	Name() string
	Observe(s rain.Stats)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(s rain.Stats)
}

type Config struct {
	// Interval is the pause after each rendered frame. Zero runs flat out.
	Interval time.Duration
	// Ticks stops the run after that many ticks. Zero runs until the
	// context is cancelled.
	Ticks int
}

type Result struct {
	Ticks   int
	Elapsed time.Duration
	Metrics map[string]float64
}
