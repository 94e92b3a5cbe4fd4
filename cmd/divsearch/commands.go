package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexshd/divsearch"
)

// WindowFlags configure the window enumeration.
type WindowFlags struct {
	MinSolutions int     `name:"min-solutions" default:"10" env:"DIVSEARCH_MIN_SOLUTIONS" help:"Stop widening once this many frequencies are found."`
	HalfWidth    float64 `name:"half-width" default:"1" env:"DIVSEARCH_HALF_WIDTH" help:"Starting half-width of the window, Hz."`
	MaxPasses    int     `name:"max-passes" default:"64" env:"DIVSEARCH_MAX_PASSES" help:"Give up after this many widenings (0 for no limit)."`
}

func (f WindowFlags) config(log *slog.Logger) divsearch.WindowConfig {
	return divsearch.WindowConfig{
		MinSolutions:     f.MinSolutions,
		InitialHalfWidth: f.HalfWidth,
		MaxPasses:        f.MaxPasses,
		Logger:           log,
	}
}

type bestCmd struct {
	Freqs []float64 `arg:"" name:"freq" help:"Target frequency in Hz, within [1e9, 2e9]."`
}

func (cmd *bestCmd) Run(out io.Writer, log *slog.Logger) error {
	for _, freq := range cmd.Freqs {
		if err := bestMatch(out, log, freq); err != nil {
			return err
		}
	}
	return nil
}

type nearCmd struct {
	WindowFlags `embed:""`

	Freqs []float64 `arg:"" name:"freq" help:"Target frequency in Hz, within [1e9, 2e9]."`
}

func (cmd *nearCmd) Run(out io.Writer, log *slog.Logger) error {
	cfg := cmd.config(log)
	for _, freq := range cmd.Freqs {
		if err := enumerate(out, log, freq, cfg); err != nil {
			return err
		}
	}
	return nil
}

// samplesCmd reproduces the fixed sample sequence.
type samplesCmd struct {
	WindowFlags `embed:""`
}

var (
	sampleBestPre  = []float64{1.21477e9, 1.214771e9, 1.2147712e9, 1.54215e9}
	sampleNear     = []float64{1.54215e9, 1.654321e9}
	sampleBestPost = []float64{
		1e9, 2e9,
		1_000_001_000, 1_000_002_000, 1_000_003_000, 1_000_004_000,
		1_999_999_000, 1_999_998_000, 1_999_997_000, 1_999_996_000,
	}
)

func (cmd *samplesCmd) Run(out io.Writer, log *slog.Logger) error {
	for _, freq := range sampleBestPre {
		if err := bestMatch(out, log, freq); err != nil {
			return err
		}
	}
	cfg := cmd.config(log)
	for _, freq := range sampleNear {
		if err := enumerate(out, log, freq, cfg); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)
	for _, freq := range sampleBestPost {
		if err := bestMatch(out, log, freq); err != nil {
			return err
		}
	}
	return nil
}

type countCmd struct {
	RMin int `name:"r-min" default:"1" help:"First divider to count."`
	RMax int `name:"r-max" default:"16383" help:"Last divider to count. The full range takes minutes."`
}

func (cmd *countCmd) Run(ctx context.Context, out io.Writer, log *slog.Logger) error {
	start := time.Now()
	cnt, err := divsearch.CountCoprimeContext(ctx, cmd.RMin, cmd.RMax)
	if err != nil {
		log.Warn("count interrupted", "partial", cnt, "err", err)
		return err
	}
	log.Info("count done",
		"r_min", cmd.RMin,
		"r_max", cmd.RMax,
		"elapsed", time.Since(start))
	fmt.Fprintf(out, "count: %d\n", cnt)
	return nil
}

func bestMatch(out io.Writer, log *slog.Logger, freq float64) error {
	p, err := divsearch.BestMatch(freq)
	if err != nil {
		return err
	}
	log.Debug("best match", "target", freq, "r", p.R, "n", p.N,
		"coefficient_delta", divsearch.CoefficientDelta(freq, p))
	writeBestMatch(out, freq, p)
	return nil
}

func enumerate(out io.Writer, log *slog.Logger, freq float64, cfg divsearch.WindowConfig) error {
	w, err := divsearch.EnumerateWith(freq, cfg)
	if err != nil {
		return err
	}
	stats := w.Stats()
	log.Info("window", "target", freq, "solutions", w.Len(),
		"half_width", w.HalfWidth, "passes", w.Passes,
		"p50_abs_delta", stats.P50, "max_abs_delta", stats.Max)
	writeWindow(out, w)
	return nil
}
