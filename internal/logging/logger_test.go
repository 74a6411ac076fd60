package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/runefall/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "info", Format: "json"})

	logger.Debug("hidden")
	logger.Info("tick", "n", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if rec["msg"] != "tick" || rec["n"] != float64(3) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "runefall.log")
	logger, closer, err := Setup(config.LogConfig{Level: "debug", Format: "text", File: path})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file missing record:\n%s", data)
	}
}

func TestSetupWithoutFileDiscards(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	logger, closer, err := Setup(config.LogConfig{Level: "info", Format: "text"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	logger.Info("dropped")
}
