package ui

import (
	"slices"
	"testing"

	"sonolife/internal/core"
)

func TestStepValueClamps(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 50, Min: 0, Max: 120, HasMin: true, HasMax: true}
	cases := []struct {
		current float64
		dir     int
		want    float64
		ok      bool
	}{
		{100, 1, 120, true},
		{120, 1, 120, false},
		{20, -1, 0, true},
		{0, -1, 0, false},
		{50, 0, 50, false},
	}
	for _, c := range cases {
		got, ok := stepValue(ctrl, c.current, c.dir)
		if got != c.want || ok != c.ok {
			t.Errorf("stepValue(%v, %d) = %v, %v; want %v, %v", c.current, c.dir, got, ok, c.want, c.ok)
		}
	}
}

func TestStepValueFloat(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true}
	v := 0.2
	for i := 0; i < 2; i++ {
		v, _ = stepValue(ctrl, v, 1)
	}
	if v != 0.3 {
		t.Fatalf("two steps from 0.2 = %v, want 0.3", v)
	}
	if got := formatValue(ctrl, v); got != "0.30" {
		t.Fatalf("formatValue = %q", got)
	}
}

func TestStatusLines(t *testing.T) {
	st := core.Status{State: core.Running, Mode: core.ModeManual, Generation: 7, Population: 3}
	want := []string{"running / manual", "Generation 7", "Population 3"}
	if got := statusLines(st); !slices.Equal(got, want) {
		t.Fatalf("statusLines = %v, want %v", got, want)
	}
}
