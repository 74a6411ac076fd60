package rain

import (
	"errors"
	"testing"
)

func TestNewGridSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		ok   bool
	}{
		{"zero width", 0, 5, false},
		{"zero height", 5, 0, false},
		{"negative", -1, 5, false},
		{"single cell", 1, 1, true},
		{"terminal", 80, 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.w, tt.h, Rune{Char: Blank})
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if g.Width() != tt.w || g.Height() != tt.h {
					t.Errorf("expected %dx%d, got %dx%d", tt.w, tt.h, g.Width(), g.Height())
				}
				return
			}
			if !errors.Is(err, ErrGridSize) {
				t.Errorf("expected ErrGridSize, got %v", err)
			}
		})
	}
}

func TestGridFilledWithBlank(t *testing.T) {
	blank := Rune{Char: Blank, Lifetime: 9, Color: RGB{0, 255, 255}}
	g, _ := NewGrid(4, 3, blank)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if *g.At(x, y) != blank {
				t.Fatalf("cell (%d,%d) = %+v", x, y, *g.At(x, y))
			}
		}
	}
}

func TestGridSetAt(t *testing.T) {
	g, _ := NewGrid(3, 2, Rune{Char: Blank})
	g.Set(2, 1, Rune{Char: 'x', Lifetime: 3})

	if got := g.At(2, 1).Char; got != 'x' {
		t.Errorf("expected x, got %q", got)
	}

	g.At(2, 1).Lifetime = 1
	if got := g.At(2, 1).Lifetime; got != 1 {
		t.Errorf("in-place update lost: %d", got)
	}
	if g.At(1, 1).Char != Blank {
		t.Error("neighbour changed")
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g, _ := NewGrid(3, 2, Rune{Char: Blank})

	coords := [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}}
	for _, c := range coords {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("(%d,%d): expected ErrOutOfBounds panic, got %v", c[0], c[1], r)
				}
			}()
			g.At(c[0], c[1])
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("(%d,%d): Set did not panic", c[0], c[1])
				}
			}()
			g.Set(c[0], c[1], Rune{})
		}()
	}
}
