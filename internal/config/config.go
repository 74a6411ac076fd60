package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/runefall/internal/rain"
)

const (
	DefaultCharset      = "katakana"
	DefaultTheme        = "classic"
	DefaultInterval     = 50 * time.Millisecond
	DefaultBackend      = "ansi"
	DefaultColorProfile = "truecolor"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"

	// EnvPrefix namespaces every environment override.
	EnvPrefix = "RUNEFALL_"
)

var (
	Backends      = []string{"ansi", "tcell", "tea"}
	ColorProfiles = []string{"truecolor", "ansi256", "ansi", "ascii"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Charset      string         `yaml:"charset" env:"CHARSET"`
	Theme        string         `yaml:"theme" env:"THEME"`
	BaseColor    string         `yaml:"base_color,omitempty" env:"BASE_COLOR"`
	HeadColor    string         `yaml:"head_color,omitempty" env:"HEAD_COLOR"`
	Lifetime     LifetimeConfig `yaml:"lifetime" envPrefix:"LIFETIME_"`
	Spawn        SpawnConfig    `yaml:"spawn" envPrefix:"SPAWN_"`
	Interval     time.Duration  `yaml:"interval" env:"INTERVAL"`
	Seed         int64          `yaml:"seed" env:"SEED"`
	Backend      string         `yaml:"backend" env:"BACKEND"`
	ColorProfile string         `yaml:"color_profile" env:"COLOR_PROFILE"`
	Log          LogConfig      `yaml:"log" envPrefix:"LOG_"`
}

type LifetimeConfig struct {
	Min  int `yaml:"min" env:"MIN"`
	Max  int `yaml:"max" env:"MAX"`
	Fade int `yaml:"fade" env:"FADE"`
}

type SpawnConfig struct {
	Numerator   int `yaml:"numerator" env:"NUMERATOR"`
	Denominator int `yaml:"denominator" env:"DENOMINATOR"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
	File   string `yaml:"file,omitempty" env:"FILE"`
}

func DefaultConfig() *Config {
	return &Config{
		Charset: DefaultCharset,
		Theme:   DefaultTheme,
		Lifetime: LifetimeConfig{
			Min:  rain.DefaultLifetimes.Min,
			Max:  rain.DefaultLifetimes.Max,
			Fade: rain.DefaultLifetimes.Fade,
		},
		Spawn: SpawnConfig{
			Numerator:   rain.DefaultOptions.Spawn.Numerator,
			Denominator: rain.DefaultOptions.Spawn.Denominator,
		},
		Interval:     DefaultInterval,
		Backend:      DefaultBackend,
		ColorProfile: DefaultColorProfile,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the keys present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays RUNEFALL_* environment variables onto c.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Charset == "" {
		add("charset is empty")
	}
	if c.Lifetime.Min < 1 || c.Lifetime.Max <= c.Lifetime.Min || c.Lifetime.Fade < 1 {
		add("lifetime needs 1 <= min < max and fade >= 1 (got min=%d max=%d fade=%d)",
			c.Lifetime.Min, c.Lifetime.Max, c.Lifetime.Fade)
	}
	if c.Spawn.Denominator <= 0 || c.Spawn.Numerator < 0 || c.Spawn.Numerator > c.Spawn.Denominator {
		add("spawn chance %d/%d outside [0, 1]", c.Spawn.Numerator, c.Spawn.Denominator)
	}
	if c.Interval <= 0 {
		add("interval must be positive, got %v", c.Interval)
	}
	if !slices.Contains(Backends, c.Backend) {
		add("unknown backend %q (available: %v)", c.Backend, Backends)
	}
	if !slices.Contains(ColorProfiles, c.ColorProfile) {
		add("unknown color profile %q (available: %v)", c.ColorProfile, ColorProfiles)
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		add("unknown log level %q", c.Log.Level)
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		add("unknown log format %q", c.Log.Format)
	}
	if _, _, err := c.Colors(); err != nil {
		add("%v", err)
	}

	return errors.Join(errs...)
}

// Symbols resolves the charset: a catalog name, or the literal glyphs.
func (c *Config) Symbols() string {
	if s, ok := rain.LookupCharset(c.Charset); ok {
		return s
	}
	return c.Charset
}

// Colors resolves the base and head colors from the theme and overrides.
func (c *Config) Colors() (base, head rain.RGB, err error) {
	theme, ok := Themes[c.Theme]
	if !ok {
		return base, head, fmt.Errorf("unknown theme %q (available: %v)", c.Theme, ThemeNames())
	}
	baseHex, headHex := theme.Base, theme.Head
	if c.BaseColor != "" {
		baseHex = c.BaseColor
	}
	if c.HeadColor != "" {
		headHex = c.HeadColor
	}
	if base, err = rain.ParseRGB(baseHex); err != nil {
		return base, head, err
	}
	if head, err = rain.ParseRGB(headHex); err != nil {
		return base, head, err
	}
	return base, head, nil
}

func (c *Config) Lifetimes() rain.Lifetimes {
	return rain.Lifetimes{Min: c.Lifetime.Min, Max: c.Lifetime.Max, Fade: c.Lifetime.Fade}
}

func (c *Config) SpawnChance() rain.SpawnChance {
	return rain.SpawnChance{Numerator: c.Spawn.Numerator, Denominator: c.Spawn.Denominator}
}

// Options builds the engine options. Call Validate first.
func (c *Config) Options() (rain.Options, error) {
	base, head, err := c.Colors()
	if err != nil {
		return rain.Options{}, err
	}
	return rain.Options{Base: base, Head: head, Spawn: c.SpawnChance()}, nil
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
