// Package logging configures the process logger. The terminal belongs to the
// renderer, so records go to a file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/runefall/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger from cfg and installs it as the slog default. The
// returned closer releases the log file, if any.
func Setup(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger := New(w, cfg)
	slog.SetDefault(logger)

	logger.With("component", "logger").Debug("logger initialized",
		"level", cfg.Level,
		"format", cfg.Format,
		"file", cfg.File,
	)
	return logger, closer, nil
}

// New builds a logger writing to w.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
