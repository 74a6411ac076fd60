// Package rain provides the digital rain simulation.
//
// The package owns all simulation state and the per-tick update rules:
//
//   - [Rune]: one animated cell (glyph, lifetime, color)
//   - [Charset]: glyph catalog that mints new runes
//   - [Grid]: fixed-size, bounds-checked cell storage
//   - [Waterfall]: the engine; [Waterfall.Step] advances one tick and
//     [Waterfall.Render] paints the grid onto a [Surface]
//
// # Example
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	cs, _ := rain.NewCharset(rain.Katakana, rain.DefaultLifetimes, rng)
//	w, _ := rain.New(80, 24, cs, rng, rain.DefaultOptions)
//	for {
//	    w.Step()
//	    if err := w.Render(surface); err != nil {
//	        return err
//	    }
//	}
//
// # Thread Safety
//
// A Waterfall is NOT thread-safe. Step and Render must be called from the
// same goroutine.
package rain
