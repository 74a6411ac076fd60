package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/runefall/internal/config"
	"github.com/san-kum/runefall/internal/logging"
	"github.com/san-kum/runefall/internal/rain"
	"github.com/san-kum/runefall/internal/term"
)

var (
	configFile   string
	preset       string
	theme        string
	charset      string
	backend      string
	interval     time.Duration
	seed         int64
	spawn        string
	colorProfile string
	logFile      string
	logLevel     string
	ticks        int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag values land in the package
// variables above, reset to their defaults on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "runefall",
		Short:        "digital rain in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runRain,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&charset, "charset", config.DefaultCharset, "charset name or literal symbols")
	pf.StringVar(&backend, "backend", config.DefaultBackend, "renderer: ansi, tcell or tea")
	pf.DurationVar(&interval, "interval", config.DefaultInterval, "delay between frames")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&spawn, "spawn", "2/50", "per column spawn chance as N/D")
	pf.StringVar(&colorProfile, "color-profile", config.DefaultColorProfile, "truecolor, ansi256, ansi or ascii")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	rootCmd.Flags().IntVar(&ticks, "ticks", 0, "stop after this many ticks (0 = forever)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	charsetsCmd := &cobra.Command{
		Use:   "charsets",
		Short: "list named charsets",
		Args:  cobra.NoArgs,
		RunE:  listCharsets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "save the configuration to this file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "headless run with stats and plots",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchWidth, "width", 80, "grid width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 24, "grid height")
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 500, "ticks to simulate")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 1, "independent seeded runs")
	benchCmd.Flags().StringVar(&benchOut, "out", "", "export samples to a .json or .csv file")

	rootCmd.AddCommand(presetsCmd, charsetsCmd, configCmd, benchCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, file, environment and flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("charset") {
		cfg.Charset = charset
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("spawn") {
		num, den, err := parseSpawn(spawn)
		if err != nil {
			return nil, err
		}
		cfg.Spawn = config.SpawnConfig{Numerator: num, Denominator: den}
	}
	if flags.Changed("color-profile") {
		cfg.ColorProfile = colorProfile
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseSpawn(s string) (int, int, error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, fmt.Errorf("spawn %q: want N/D", s)
	}
	num, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return 0, 0, fmt.Errorf("spawn numerator: %w", err)
	}
	den, err := strconv.Atoi(strings.TrimSpace(denStr))
	if err != nil {
		return 0, 0, fmt.Errorf("spawn denominator: %w", err)
	}
	return num, den, nil
}

func resolveSeed(s int64) uint64 {
	if s == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(s)
}

// buildWaterfall creates a waterfall of the given size with its own seeded
// random stream.
func buildWaterfall(cfg *config.Config, width, height int, seed uint64) (*rain.Waterfall, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	cs, err := rain.NewCharset(cfg.Symbols(), cfg.Lifetimes(), rng)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return rain.New(width, height, cs, rng, opts)
}

func runRain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	s := resolveSeed(cfg.Seed)
	logger.Info("starting",
		"backend", cfg.Backend,
		"charset", cfg.Charset,
		"theme", cfg.Theme,
		"spawn", fmt.Sprintf("%d/%d", cfg.Spawn.Numerator, cfg.Spawn.Denominator),
		"interval", cfg.Interval,
		"seed", s,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Backend {
	case "tea":
		err = runTea(ctx, cfg, s)
	case "tcell":
		var screen *term.Screen
		screen, err = term.NewScreen()
		if err != nil {
			return err
		}
		screen.WatchQuit(stop)
		err = drive(ctx, screen, cfg, s, logger)
	default:
		var profile termenv.Profile
		profile, err = term.ParseProfile(cfg.ColorProfile)
		if err != nil {
			return err
		}
		err = drive(ctx, term.NewANSI(os.Stdout, profile), cfg, s, logger)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
		logger.Info("stopped")
		return nil
	}
	if err != nil {
		logger.Error("run failed", "error", err)
	}
	return err
}
