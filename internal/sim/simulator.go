package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/runefall/internal/rain"
)

// Runner is the driver loop: step, render, wait, until cancelled.
type Runner struct {
	engine    Engine
	surface   rain.Surface
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(engine Engine, surface rain.Surface, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		engine:    engine,
		surface:   surface,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger.With("component", "runner"),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run drives the engine. It returns ctx.Err() when cancelled and the first
// render error otherwise; the partial result is returned in both cases.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{Metrics: make(map[string]float64)}
	for _, m := range r.metrics {
		m.Reset()
	}

	var timer *time.Timer
	if cfg.Interval > 0 {
		timer = time.NewTimer(cfg.Interval)
		defer timer.Stop()
	}

	r.logger.Info("run started", "interval", cfg.Interval, "ticks", cfg.Ticks)
	start := time.Now()
	defer func() {
		result.Elapsed = time.Since(start)
		for _, m := range r.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
		r.logger.Info("run stopped", "ticks", result.Ticks, "elapsed", result.Elapsed)
	}()

	for cfg.Ticks == 0 || result.Ticks < cfg.Ticks {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.engine.Step()
		r.observe()

		if err := r.engine.Render(r.surface); err != nil {
			r.logger.Error("render failed", "tick", result.Ticks, "error", err)
			return result, fmt.Errorf("render tick %d: %w", result.Ticks, err)
		}
		result.Ticks++

		if timer == nil {
			continue
		}
		timer.Reset(cfg.Interval)
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-timer.C:
		}
	}

	return result, nil
}

func (r *Runner) observe() {
	if len(r.metrics) == 0 && len(r.observers) == 0 {
		return
	}
	stats := r.engine.Stats()
	for _, m := range r.metrics {
		m.Observe(stats)
	}
	for _, o := range r.observers {
		o.OnTick(stats)
	}
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %v", cfg.Interval)
	}
	if cfg.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", cfg.Ticks)
	}
	if cfg.Interval == 0 && cfg.Ticks == 0 {
		return fmt.Errorf("an unbounded run needs a positive interval")
	}
	if r.surface == nil {
		return fmt.Errorf("no surface to render on")
	}
	return nil
}
