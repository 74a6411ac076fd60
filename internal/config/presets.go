package config

import (
	"sort"
	"time"
)

// Theme is a named pair of stream colors.
type Theme struct {
	Name string
	Base string
	Head string
}

var Themes = map[string]Theme{
	"classic": {Name: "classic", Base: "#00ffff", Head: "#ff0000"},
	"matrix":  {Name: "matrix", Base: "#00ff41", Head: "#e8ffe8"},
	"amber":   {Name: "amber", Base: "#ffbf00", Head: "#fff4c2"},
	"ice":     {Name: "ice", Base: "#5ab4ff", Head: "#ffffff"},
	"blood":   {Name: "blood", Base: "#b00020", Head: "#ff9e9e"},
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"matrix": withDefaults(func(c *Config) {
		c.Theme = "matrix"
	}),
	"binary": withDefaults(func(c *Config) {
		c.Theme = "matrix"
		c.Charset = "binary"
		c.Interval = 40 * time.Millisecond
	}),
	"amber": withDefaults(func(c *Config) {
		c.Theme = "amber"
		c.Charset = "hex"
		c.Interval = 60 * time.Millisecond
	}),
	"storm": withDefaults(func(c *Config) {
		c.Theme = "ice"
		c.Lifetime = LifetimeConfig{Min: 2, Max: 10, Fade: 5}
		c.Spawn = SpawnConfig{Numerator: 8, Denominator: 50}
		c.Interval = 30 * time.Millisecond
	}),
	"drizzle": withDefaults(func(c *Config) {
		c.Theme = "amber"
		c.Lifetime = LifetimeConfig{Min: 8, Max: 30, Fade: 12}
		c.Spawn = SpawnConfig{Numerator: 1, Denominator: 120}
		c.Interval = 80 * time.Millisecond
	}),
}

func withDefaults(fn func(*Config)) *Config {
	cfg := DefaultConfig()
	fn(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
