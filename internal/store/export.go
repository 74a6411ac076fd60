package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/runefall/internal/rain"
)

type Report struct {
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Charset   string             `json:"charset"`
	Theme     string             `json:"theme"`
	Spawn     string             `json:"spawn"`
	Seed      uint64             `json:"seed"`
	Runs      int                `json:"runs"`
	Ticks     int                `json:"ticks"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
	Samples   []rain.Stats       `json:"samples"`
}

var csvHeader = []string{"tick", "generators", "lit", "fading", "blank", "cells"}

// Export writes the report as JSON or CSV, chosen by the file extension.
func Export(path string, r *Report) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ExportJSON(path, r)
	case ".csv":
		return ExportCSV(path, r.Samples)
	default:
		return fmt.Errorf("unsupported export format %q (use .json or .csv)", filepath.Ext(path))
	}
}

func ExportJSON(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return err
	}
	return file.Close()
}

func ExportCSV(path string, samples []rain.Stats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, samples); err != nil {
		return err
	}
	return file.Close()
}

func WriteCSV(w io.Writer, samples []rain.Stats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Tick),
			strconv.Itoa(s.Generators),
			strconv.Itoa(s.Lit),
			strconv.Itoa(s.Fading),
			strconv.Itoa(s.Blank),
			strconv.Itoa(s.Cells),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
