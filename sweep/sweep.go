// Package sweep evaluates the engine over an evenly spaced tension grid.
//
// The output of a sweep, an ordered list of (tension, distribution) samples,
// is what renderers consume to draw one line per scale.
package sweep

import (
	"context"
	"runtime"

	"github.com/teranos/tension/engine"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/logger"
	"github.com/teranos/tension/scale"
	"golang.org/x/sync/errgroup"
)

// Sample is the distribution at one grid point.
type Sample struct {
	Tension      float64             `json:"tension" yaml:"tension" toml:"tension"`
	Distribution engine.Distribution `json:"distribution" yaml:"distribution" toml:"distribution"`
}

// Grid returns n evenly spaced tensions covering [0,1] inclusive.
// A single sample sits at 0.
func Grid(n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.WithHint(
			errors.NewDegenerateInputError("sample count must be >= 1, got %d", n),
			"use --samples with a positive value (200 gives a smooth chart)")
	}
	grid := make([]float64, n)
	if n == 1 {
		return grid, nil
	}
	step := 1 / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	grid[n-1] = 1
	return grid, nil
}

// Run evaluates c at every point of Grid(n), in order.
func Run(c scale.Catalog, n int) ([]Sample, error) {
	grid, err := Grid(n)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, len(grid))
	for i, t := range grid {
		d, err := engine.Probabilities(c, t)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d (tension %v)", i, t)
		}
		samples[i] = Sample{Tension: t, Distribution: d}
	}
	return samples, nil
}

// RunParallel produces the same samples as Run, splitting the grid into
// contiguous chunks evaluated concurrently. Samples stay in tension order.
// workers <= 0 uses one worker per CPU.
func RunParallel(ctx context.Context, c scale.Catalog, n, workers int) ([]Sample, error) {
	grid, err := Grid(n)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(grid) {
		workers = len(grid)
	}

	samples := make([]Sample, len(grid))
	chunk := (len(grid) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(grid); start += chunk {
		end := min(start+chunk, len(grid))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := engine.Probabilities(c, grid[i])
				if err != nil {
					logger.LoggerFromContext(ctx).Debugw("sweep chunk failed",
						"chunk_start", start,
						logger.FieldTension, grid[i],
						logger.FieldError, err)
					return errors.Wrapf(err, "sample %d (tension %v)", i, grid[i])
				}
				samples[i] = Sample{Tension: grid[i], Distribution: d}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}

// Series is one scale's probability at every sample, in sample order.
type Series struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Category scale.Category `json:"category" yaml:"category" toml:"category"`
	Values   []float64      `json:"values" yaml:"values" toml:"values"`
}

// Pivot turns samples into one series per catalog entry, in catalog order,
// plus the shared tension axis.
func Pivot(c scale.Catalog, samples []Sample) ([]float64, []Series) {
	tensions := make([]float64, len(samples))
	for i, s := range samples {
		tensions[i] = s.Tension
	}

	entries := c.Entries()
	series := make([]Series, len(entries))
	for j, e := range entries {
		values := make([]float64, len(samples))
		for i, s := range samples {
			values[i] = s.Distribution[e.Name]
		}
		series[j] = Series{Name: e.Name, Category: e.Category, Values: values}
	}
	return tensions, series
}
