package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/runefall/internal/config"
	"github.com/san-kum/runefall/internal/logging"
	"github.com/san-kum/runefall/internal/metrics"
	"github.com/san-kum/runefall/internal/rain"
	"github.com/san-kum/runefall/internal/sim"
	"github.com/san-kum/runefall/internal/store"
	"github.com/san-kum/runefall/internal/term"
	"github.com/san-kum/runefall/internal/viz"
)

var (
	writePath   string
	benchWidth  int
	benchHeight int
	benchTicks  int
	benchRuns   int
	benchOut    string
)

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println(viz.HeaderStyle.Render("presets"))
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		base, head, err := cfg.Colors()
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		fmt.Printf("  %-10s %s  %s\n", name,
			viz.Swatch(base, head, cfg.Lifetime.Fade),
			viz.Subtle.Render(fmt.Sprintf("%s, spawn %d/%d, %v",
				cfg.Charset, cfg.Spawn.Numerator, cfg.Spawn.Denominator, cfg.Interval)))
	}
	return nil
}

func listCharsets(cmd *cobra.Command, args []string) error {
	fmt.Println(viz.HeaderStyle.Render("charsets"))
	for _, name := range rain.CharsetNames() {
		symbols, _ := rain.LookupCharset(name)
		sample := []rune(symbols)
		if len(sample) > 24 {
			sample = sample[:24]
		}
		fmt.Printf("  %-10s %s\n", name, viz.Subtle.Render(string(sample)))
	}
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if writePath != "" {
		if err := config.Save(writePath, cfg); err != nil {
			return err
		}
		fmt.Printf("config written to %s\n", writePath)
		return nil
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if benchTicks <= 0 {
		return fmt.Errorf("bench needs a positive --ticks")
	}
	if benchRuns < 1 {
		return fmt.Errorf("bench needs at least one run")
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	s := resolveSeed(cfg.Seed)
	run := sim.Config{Ticks: benchTicks}
	ctx := context.Background()

	wf, err := buildWaterfall(cfg, benchWidth, benchHeight, s)
	if err != nil {
		return err
	}
	series := metrics.NewSeries(benchTicks)
	runner := sim.New(wf, term.NewFrame(benchWidth, benchHeight), logger)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}
	runner.AddObserver(series)

	fmt.Printf("benchmarking %dx%d, %d ticks\n\n", benchWidth, benchHeight, benchTicks)
	result, err := runner.Run(ctx, run)
	if err != nil {
		return err
	}
	results := []*sim.Result{result}

	if benchRuns > 1 {
		ensemble := sim.NewEnsemble(func(seed uint64) (sim.Engine, rain.Surface, error) {
			wf, err := buildWaterfall(cfg, benchWidth, benchHeight, seed)
			if err != nil {
				return nil, nil, err
			}
			return wf, term.NewFrame(benchWidth, benchHeight), nil
		}, metrics.Defaults, benchRuns-1, s+1)
		more, err := ensemble.Run(ctx, run)
		if err != nil {
			return err
		}
		results = append(results, more...)
	}

	if err := printSummary(os.Stdout, results, s); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.Separator(80))
	fmt.Println()
	fmt.Println(asciigraph.Plot(series.Column(func(st rain.Stats) int { return st.Generators }),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("active generators per tick"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(series.Column(func(st rain.Stats) int { return st.Lit }),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("lit cells per tick"),
	))

	if benchOut == "" {
		return nil
	}
	report := &store.Report{
		Width:     benchWidth,
		Height:    benchHeight,
		Charset:   cfg.Charset,
		Theme:     cfg.Theme,
		Spawn:     fmt.Sprintf("%d/%d", cfg.Spawn.Numerator, cfg.Spawn.Denominator),
		Seed:      s,
		Runs:      benchRuns,
		Ticks:     result.Ticks,
		Elapsed:   result.Elapsed,
		Timestamp: time.Now(),
		Metrics:   result.Metrics,
		Samples:   series.Samples,
	}
	if err := store.Export(benchOut, report); err != nil {
		return err
	}
	fmt.Printf("\nexported to %s\n", benchOut)
	return nil
}

// printSummary writes one table row per run, then the metrics averaged
// over all runs.
func printSummary(out io.Writer, results []*sim.Result, seed uint64) error {
	names := make([]string, 0, len(results[0].Metrics))
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "SEED\tTICKS\tTIME\tTICKS/SEC")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)

	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f", seed+uint64(i), r.Ticks, r.Elapsed.Round(time.Microsecond), ticksPerSecond(r))
		for _, name := range names {
			fmt.Fprintf(w, "\t%.3f", r.Metrics[name])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, name := range names {
		var sum float64
		for _, r := range results {
			sum += r.Metrics[name]
		}
		fmt.Fprintln(out, viz.Metric(name, fmt.Sprintf("%.3f", sum/float64(len(results)))))
	}
	return nil
}

// ticksPerSecond is zero for runs too short for the clock to measure.
func ticksPerSecond(r *sim.Result) float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}
