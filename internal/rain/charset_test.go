package rain

import (
	"errors"
	"slices"
	"testing"
)

func TestNewCharsetValidation(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		lt      Lifetimes
		want    error
	}{
		{"empty symbols", "", DefaultLifetimes, ErrEmptyCharset},
		{"zero min", "ab", Lifetimes{Min: 0, Max: 5, Fade: 3}, ErrLifetimes},
		{"max not above min", "ab", Lifetimes{Min: 5, Max: 5, Fade: 3}, ErrLifetimes},
		{"zero fade", "ab", Lifetimes{Min: 1, Max: 5, Fade: 0}, ErrLifetimes},
		{"ok", "ab", DefaultLifetimes, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharset(tt.symbols, tt.lt, fixedSource{})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRandomRuneLifetimeFloor(t *testing.T) {
	rng := seeded(7)
	cs, err := NewCharset(Katakana, DefaultLifetimes, rng)
	if err != nil {
		t.Fatal(err)
	}
	symbols := cs.Symbols()
	lt := cs.Lifetimes()

	for i := 0; i < 5000; i++ {
		r := cs.RandomRune(RGB{1, 2, 3})
		if r.Lifetime < lt.Fade {
			t.Fatalf("lifetime %d below fade %d", r.Lifetime, lt.Fade)
		}
		if r.Lifetime >= lt.Max+lt.Fade {
			t.Fatalf("lifetime %d above range", r.Lifetime)
		}
		if !slices.Contains(symbols, r.Char) {
			t.Fatalf("symbol %q not in catalog", r.Char)
		}
		if r.Color != (RGB{1, 2, 3}) {
			t.Fatalf("color not kept: %v", r.Color)
		}
	}
}

func TestNewRuneUsesMinimum(t *testing.T) {
	cs, _ := NewCharset("x", Lifetimes{Min: 4, Max: 20, Fade: 7}, fixedSource{})
	r := cs.NewRune(Blank, RGB{})
	if r.Lifetime != 11 {
		t.Errorf("expected lifetime 11, got %d", r.Lifetime)
	}
	if !r.IsBlank() {
		t.Error("expected blank rune")
	}
}

func TestSymbolsIsCopy(t *testing.T) {
	cs, _ := NewCharset("ab", DefaultLifetimes, fixedSource{})
	s := cs.Symbols()
	s[0] = 'z'
	if cs.Symbols()[0] != 'a' {
		t.Error("charset mutated through Symbols")
	}
}

func TestLookupCharset(t *testing.T) {
	for _, name := range CharsetNames() {
		s, ok := LookupCharset(name)
		if !ok || s == "" {
			t.Errorf("charset %s missing", name)
		}
	}
	if _, ok := LookupCharset("nonexistent"); ok {
		t.Error("expected lookup miss")
	}
	if !slices.IsSorted(CharsetNames()) {
		t.Error("names not sorted")
	}
}
