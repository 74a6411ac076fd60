package rain

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit foreground color.
type RGB struct {
	R, G, B uint8
}

// Black is the color of a fully faded cell.
var Black = RGB{}

// ParseRGB parses a "#rrggbb" or "#rgb" color.
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Fade returns the display color of a rune with the given lifetime.
func Fade(c RGB, lifetime, fade int) RGB {
	switch {
	case lifetime >= fade:
		return c
	case lifetime <= 0:
		return Black
	}
	return RGB{
		R: fadeChannel(c.R, lifetime, fade),
		G: fadeChannel(c.G, lifetime, fade),
		B: fadeChannel(c.B, lifetime, fade),
	}
}

func fadeChannel(v uint8, lifetime, fade int) uint8 {
	c := int(v)
	c -= c * (fade - lifetime) / fade
	if c < 0 {
		c = 0
	}
	if c > 255 {
		c = 255
	}
	return uint8(c)
}

// Luma approximates perceived brightness, used to compare faded colors.
func (c RGB) Luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
