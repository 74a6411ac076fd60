package rain

import (
	"fmt"
	"sort"
)

// Source is the random number source consulted on every rune creation.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

// Named glyph catalogs.
const (
	Katakana = "ﾊﾐﾋｰｳｼﾅﾓﾆｻﾜﾂｵﾘｱﾎﾃﾏｹﾒｴｶｷﾑﾕﾗｾﾈｽﾀﾇﾍｦｲｸｺｿﾁﾄﾉﾌﾔﾖﾙﾚﾛﾝ012345789Z:.\"=*+-<>¦╌ç"
	Binary   = "01"
	Hex      = "0123456789ABCDEF"
	ASCII    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]{}|;:,.<>?/"
	Greek    = "αβγδεζηθικλμνξοπρστυφχψω"
)

var charsets = map[string]string{
	"katakana": Katakana,
	"binary":   Binary,
	"hex":      Hex,
	"ascii":    ASCII,
	"greek":    Greek,
}

// LookupCharset returns the symbols of a named catalog.
func LookupCharset(name string) (string, bool) {
	s, ok := charsets[name]
	return s, ok
}

// CharsetNames returns the catalog names in sorted order.
func CharsetNames() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lifetimes configures how long new runes live. A new rune gets a lifetime
// drawn from [Min, Max) plus Fade, so it always has a full fade ahead of it.
type Lifetimes struct {
	Min  int
	Max  int
	Fade int
}

// DefaultLifetimes matches the classic look: 4-20 ticks bright, 7 fading.
var DefaultLifetimes = Lifetimes{Min: 4, Max: 20, Fade: 7}

func (l Lifetimes) validate() error {
	if l.Min < 1 || l.Max <= l.Min || l.Fade < 1 {
		return fmt.Errorf("%w: min=%d max=%d fade=%d", ErrLifetimes, l.Min, l.Max, l.Fade)
	}
	return nil
}

// Charset mints runes from a fixed glyph catalog.
type Charset struct {
	symbols   []rune
	lifetimes Lifetimes
	rng       Source
}

// NewCharset validates symbols and lt; rng supplies glyph and lifetime picks.
func NewCharset(symbols string, lt Lifetimes, rng Source) (*Charset, error) {
	rs := []rune(symbols)
	if len(rs) == 0 {
		return nil, ErrEmptyCharset
	}
	if err := lt.validate(); err != nil {
		return nil, err
	}
	return &Charset{symbols: rs, lifetimes: lt, rng: rng}, nil
}

// RandomRune returns a rune with a uniformly chosen symbol.
func (c *Charset) RandomRune(color RGB) Rune {
	return c.NewRune(c.symbols[c.rng.IntN(len(c.symbols))], color)
}

// NewRune returns a rune with a fresh lifetime of at least Fade.
func (c *Charset) NewRune(ch rune, color RGB) Rune {
	lt := c.lifetimes
	return Rune{
		Char:     ch,
		Lifetime: lt.Min + c.rng.IntN(lt.Max-lt.Min) + lt.Fade,
		Color:    color,
	}
}

func (c *Charset) Symbols() []rune {
	out := make([]rune, len(c.symbols))
	copy(out, c.symbols)
	return out
}

func (c *Charset) Lifetimes() Lifetimes { return c.lifetimes }
