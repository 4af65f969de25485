package score

import (
	"context"
	"testing"

	pcore "sonolife/pkg/core"
	"sonolife/pkg/life"
	"sonolife/pkg/sonify"
)

func grid(t *testing.T, w, h int, alive ...[2]int) *life.Grid {
	t.Helper()
	g := life.New(w, h)
	for _, c := range alive {
		var err error
		if g, err = g.Set(c[0], c[1], true); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestEvaluateBlinkerCycles(t *testing.T) {
	g := grid(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	res := Evaluate(g, 100, sonify.Major)
	if res.Outcome != Cycle || res.Period != 2 || res.Generations != 2 {
		t.Fatalf("blinker result = %+v", res)
	}
	// Vertical phase sounds one column of three, horizontal three columns of one.
	if res.DistinctNotes != 2 {
		t.Fatalf("distinct notes = %d, want 2", res.DistinctNotes)
	}
	if !res.Final.Equal(g) {
		t.Fatal("final grid should be back at the starting phase")
	}
}

func TestEvaluateExtinct(t *testing.T) {
	res := Evaluate(grid(t, 4, 4, [2]int{1, 1}), 100, sonify.Major)
	if res.Outcome != Extinct || res.Generations != 1 || res.PeakPopulation != 1 {
		t.Fatalf("single cell result = %+v", res)
	}

	res = Evaluate(life.New(3, 3), 100, sonify.Major)
	if res.Outcome != Extinct || res.Generations != 0 || res.DistinctNotes != 0 {
		t.Fatalf("empty grid result = %+v", res)
	}
}

func TestEvaluateLimit(t *testing.T) {
	g := grid(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	res := Evaluate(g, 1, sonify.Major)
	if res.Outcome != Limit || res.Generations != 1 {
		t.Fatalf("capped result = %+v", res)
	}
}

func TestSweepDeterministic(t *testing.T) {
	cfg := SweepConfig{Width: 12, Height: 10, LiveProbability: 0.3, MaxGenerations: 50, Scale: sonify.Major, Workers: 2}
	seeds := []int64{1, 2, 3, 4, 5}
	results, err := Sweep(context.Background(), cfg, seeds)
	if err != nil {
		t.Fatal(err)
	}
	for i, seed := range seeds {
		want := Evaluate(life.Random(12, 10, 0.3, pcore.NewRNG(seed)), 50, sonify.Major)
		got := results[i]
		if got.Seed != seed || got.Generations != want.Generations || got.Outcome != want.Outcome || !got.Final.Equal(want.Final) {
			t.Fatalf("seed %d: got %+v, want %+v", seed, got, want)
		}
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := SweepConfig{Width: 4, Height: 4, MaxGenerations: 5, Scale: sonify.Major}
	if _, err := Sweep(ctx, cfg, []int64{1, 2}); err == nil {
		t.Fatal("expected error from cancelled sweep")
	}
	if _, err := Sweep(context.Background(), SweepConfig{}, []int64{1}); err == nil {
		t.Fatal("expected error for empty grid size")
	}
}
