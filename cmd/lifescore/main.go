package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"sonolife/internal/app"
	"sonolife/internal/score"
	"sonolife/pkg/gridfile"
	"sonolife/pkg/life"
	"sonolife/pkg/sonify"
)

func main() {
	var flags app.Flags
	flags.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 64, "number of consecutive seeds to evaluate, starting at the config seed")
	gens := flag.Int("gens", 1000, "generation cap per grid")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel evaluations")
	top := flag.Int("top", 10, "results to print")
	in := flag.String("in", "", "evaluate this grid file instead of random seeds")
	out := flag.String("out", "", "write the final grid of the best (or only) result here")
	flag.Parse()

	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := flags.Resolve()
	if err != nil {
		log.Error("configuration", "err", err)
		os.Exit(2)
	}
	scale, err := sonify.ScaleByName(cfg.Scale)
	if err != nil {
		log.Error("configuration", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var results []score.Result
	start := time.Now()
	if *in != "" {
		g, err := gridfile.Load(*in, life.New(cfg.Width, cfg.Height))
		if err != nil {
			log.Error("loading grid", "err", err)
			os.Exit(1)
		}
		results = []score.Result{score.Evaluate(g, *gens, scale)}
	} else {
		list := make([]int64, *seeds)
		for i := range list {
			list[i] = cfg.Seed + int64(i)
		}
		fmt.Printf("Sweeping %d seeds on %dx%d (p=%.2f, %d workers, cap %d)\n",
			len(list), cfg.Width, cfg.Height, cfg.LiveProbability, *workers, *gens)
		results, err = score.Sweep(ctx, score.SweepConfig{
			Width:           cfg.Width,
			Height:          cfg.Height,
			LiveProbability: cfg.LiveProbability,
			MaxGenerations:  *gens,
			Scale:           scale,
			Workers:         *workers,
		}, list)
		if err != nil {
			log.Error("sweep", "err", err)
			os.Exit(1)
		}
	}
	log.Debug("evaluation finished", "results", len(results), "elapsed", time.Since(start))

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Generations > results[j].Generations
	})
	for i, res := range results {
		if i == *top {
			break
		}
		fmt.Printf("seed=%-20d %-8s gens=%-6d period=%-3d pop=%-5d peak=%-5d notes=%d\n",
			res.Seed, res.Outcome, res.Generations, res.Period, res.Population, res.PeakPopulation, res.DistinctNotes)
	}

	if *out != "" && len(results) > 0 {
		if err := gridfile.Save(*out, results[0].Final); err != nil {
			log.Error("saving grid", "err", err)
			os.Exit(1)
		}
		fmt.Printf("Final grid written to %s\n", *out)
	}
}
