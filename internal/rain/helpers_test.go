package rain

import (
	"math/rand/v2"
	"testing"
)

type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int { return f.v % n }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newTestWaterfall(t *testing.T, w, h int, rng Source, spawn SpawnChance) *Waterfall {
	t.Helper()
	cs, err := NewCharset(Katakana, DefaultLifetimes, rng)
	if err != nil {
		t.Fatalf("charset: %v", err)
	}
	opts := DefaultOptions
	opts.Spawn = spawn
	wf, err := New(w, h, cs, rng, opts)
	if err != nil {
		t.Fatalf("new waterfall: %v", err)
	}
	return wf
}

func snapshot(g *Grid) []Rune {
	out := make([]Rune, len(g.cells))
	copy(out, g.cells)
	return out
}
