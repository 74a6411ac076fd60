package rain_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/runefall/internal/rain"
	"github.com/san-kum/runefall/internal/term"
)

type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

var _ = Describe("Waterfall", func() {
	var (
		rng  rain.Source
		lt   rain.Lifetimes
		opts rain.Options
	)

	build := func(w, h int) *rain.Waterfall {
		cs, err := rain.NewCharset(rain.Katakana, lt, rng)
		Expect(err).NotTo(HaveOccurred())
		wf, err := rain.New(w, h, cs, rng, opts)
		Expect(err).NotTo(HaveOccurred())
		return wf
	}

	BeforeEach(func() {
		rng = rand.New(rand.NewPCG(42, 1024))
		lt = rain.DefaultLifetimes
		opts = rain.DefaultOptions
	})

	Context("when every column spawns", func() {
		BeforeEach(func() {
			opts.Spawn = rain.SpawnChance{Numerator: 1, Denominator: 1}
		})

		It("starts one stream per column on the first row", func() {
			wf := build(10, 5)
			wf.Step()

			gens := wf.Generators()
			Expect(gens).To(HaveLen(10))
			for i, g := range gens {
				Expect(g).To(Equal(rain.Generator{X: i, Y: 0}))
				cell := wf.Grid().At(i, 0)
				Expect(cell.IsBlank()).To(BeFalse())
				Expect(cell.Lifetime).To(BeNumerically(">=", lt.Fade))
			}
		})
	})

	Context("with a single stream and no spawning", func() {
		const ticks = 5

		BeforeEach(func() {
			rng = zeroSource{}
			lt = rain.Lifetimes{Min: 1, Max: 2, Fade: 12}
			opts.Spawn = rain.SpawnChance{Numerator: 0, Denominator: 1}
		})

		It("falls one row per tick and leaves a fading tail", func() {
			wf := build(8, 6)
			wf.AddGenerator(3)
			for i := 0; i < ticks; i++ {
				wf.Step()
			}

			Expect(wf.Generators()).To(Equal([]rain.Generator{{X: 3, Y: 5}}))

			created := lt.Min + lt.Fade
			for y := 0; y <= 5; y++ {
				aged := ticks - y + 1
				if y == 0 {
					aged = ticks
				}
				cell := wf.Grid().At(3, y)
				Expect(cell.IsBlank()).To(BeFalse(), "row %d", y)
				Expect(cell.Lifetime).To(Equal(created-aged), "row %d", y)
			}

			frame := term.NewFrame(8, 6)
			Expect(wf.Render(frame)).To(Succeed())

			_, head := frame.Cell(3, 5)
			Expect(head).To(Equal(opts.Head))

			luma := func(y int) int {
				_, c := frame.Cell(3, y)
				return c.Luma()
			}
			for y := 4; y > 1; y-- {
				Expect(luma(y)).To(BeNumerically(">", luma(y-1)), "row %d vs %d", y, y-1)
			}
			Expect(luma(1)).To(BeNumerically(">=", luma(0)))
		})
	})

	Context("with nothing falling", func() {
		BeforeEach(func() {
			opts.Spawn = rain.SpawnChance{Numerator: 0, Denominator: 1}
		})

		It("only ages existing cells", func() {
			wf := build(6, 4)
			wf.Grid().Set(0, 0, rain.Rune{Char: 'a', Lifetime: 1, Color: opts.Base})
			wf.Grid().Set(2, 1, rain.Rune{Char: 'b', Lifetime: 9, Color: opts.Base})

			before := make(map[[2]int]rain.Rune)
			for y := 0; y < 4; y++ {
				for x := 0; x < 6; x++ {
					before[[2]int{x, y}] = *wf.Grid().At(x, y)
				}
			}

			wf.Step()
			Expect(wf.Generators()).To(BeEmpty())

			for pos, prev := range before {
				cell := wf.Grid().At(pos[0], pos[1])
				Expect(cell.Lifetime).To(Equal(prev.Lifetime - 1))
				if cell.Lifetime == 0 {
					Expect(cell.Char).To(Equal(rain.Blank))
				} else {
					Expect(cell.Char).To(Equal(prev.Char))
				}
			}
			Expect(wf.Grid().At(0, 0).Char).To(Equal(rain.Blank))
			Expect(wf.Grid().At(2, 1).Char).To(Equal('b'))
		})
	})

	It("panics loudly on out-of-bounds access", func() {
		wf := build(3, 3)
		Expect(func() { wf.Grid().At(3, 0) }).To(PanicWith(BeAssignableToTypeOf(&rain.BoundsError{})))
	})
})
