package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	xterm "golang.org/x/term"

	"github.com/san-kum/runefall/internal/config"
	"github.com/san-kum/runefall/internal/sim"
	"github.com/san-kum/runefall/internal/term"
	"github.com/san-kum/runefall/internal/viz"
)

// drive runs the waterfall on t until ctx is cancelled or --ticks is
// reached. The terminal is restored on every exit path.
func drive(ctx context.Context, t term.Terminal, cfg *config.Config, seed uint64, logger *slog.Logger) (err error) {
	if err := t.Setup(); err != nil {
		t.Close()
		return err
	}
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()

	width, height, err := t.Size()
	if err != nil {
		return err
	}
	logger.Debug("terminal size", "width", width, "height", height)

	wf, err := buildWaterfall(cfg, width, height, seed)
	if err != nil {
		return err
	}

	runner := sim.New(wf, t, logger)
	_, err = runner.Run(ctx, sim.Config{Interval: cfg.Interval, Ticks: ticks})
	return err
}

func runTea(ctx context.Context, cfg *config.Config, seed uint64) error {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return term.ErrNoSize
	}
	width, height, err := xterm.GetSize(fd)
	if err != nil {
		return fmt.Errorf("%w: %v", term.ErrNoSize, err)
	}

	wf, err := buildWaterfall(cfg, width, height, seed)
	if err != nil {
		return err
	}
	frame := term.NewFrame(width, height)
	return viz.Run(ctx, viz.NewModel(wf, frame, cfg.Interval, ticks))
}
