// Package score runs Life grids headlessly and summarises how they evolve and
// how they would sound.
package score

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	pcore "sonolife/pkg/core"
	"sonolife/pkg/life"
	"sonolife/pkg/sonify"
)

// Outcome is how an evaluation ended.
type Outcome int

const (
	// Limit means the generation cap was reached.
	Limit Outcome = iota
	// Extinct means the population reached zero.
	Extinct
	// Cycle means a previously seen state recurred.
	Cycle
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Cycle:
		return "cycle"
	default:
		return "limit"
	}
}

// Result summarises one evaluated grid.
type Result struct {
	Seed           int64
	Outcome        Outcome
	Generations    int
	Period         int
	Population     int
	PeakPopulation int
	DistinctNotes  int
	Final          *life.Grid
}

// Evaluate steps start until it dies out, repeats a state or reaches
// maxGenerations. Every visited generation is sonified to count the distinct
// pitches it would produce.
func Evaluate(start *life.Grid, maxGenerations int, scale sonify.Scale) Result {
	seen := make(map[string]int)
	notes := make(map[float64]struct{})
	res := Result{}
	g := start
	for gen := 0; ; gen++ {
		res.Generations, res.Final = gen, g
		res.Population = g.Population()
		res.PeakPopulation = max(res.PeakPopulation, res.Population)

		key := string(g.Cells())
		if first, ok := seen[key]; ok {
			res.Outcome, res.Period = Cycle, gen-first
			break
		}
		if res.Population == 0 {
			res.Outcome = Extinct
			break
		}
		for _, req := range sonify.Plan(sonify.ColumnActivity(g), scale, 0) {
			notes[req.Frequency] = struct{}{}
		}
		if gen >= maxGenerations {
			res.Outcome = Limit
			break
		}
		seen[key] = gen
		g = g.Step()
	}
	res.DistinctNotes = len(notes)
	return res
}

// SweepConfig describes the random grids a sweep evaluates.
type SweepConfig struct {
	Width, Height   int
	LiveProbability float64
	MaxGenerations  int
	Scale           sonify.Scale
	Workers         int
}

// Sweep evaluates one random grid per seed in parallel. Results keep the
// order of seeds.
func Sweep(ctx context.Context, cfg SweepConfig, seeds []int64) ([]Result, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("grid must be at least 1x1, got %dx%d", cfg.Width, cfg.Height)
	}
	results := make([]Result, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}
	for i, seed := range seeds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := life.Random(cfg.Width, cfg.Height, cfg.LiveProbability, pcore.NewRNG(seed))
			results[i] = Evaluate(start, cfg.MaxGenerations, cfg.Scale)
			results[i].Seed = seed
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "sweep interrupted")
	}
	return results, nil
}
