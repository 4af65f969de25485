package ui

import (
	"math"
	"strconv"

	"sonolife/internal/core"
)

// Controller is what the HUD needs from the scheduler.
type Controller interface {
	Status() core.Status
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// stepValue returns the value one step from current in direction dir,
// clamped to the control bounds. ok is false when the value cannot move.
func stepValue(ctrl core.ParameterControl, current float64, dir int) (float64, bool) {
	if dir == 0 {
		return current, false
	}
	step := ctrl.Step
	switch {
	case ctrl.Type == core.ParamTypeInt:
		step = math.Max(1, math.Round(step))
	case step <= 0:
		step = 0.05
	}
	target := current + float64(dir)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if ctrl.Type == core.ParamTypeFloat {
		// Keep 0.05 steps from drifting to 0.30000000000000004.
		target = math.Round(target*1e6) / 1e6
	}
	return target, math.Abs(target-current) > 1e-9
}

// formatValue renders v with a precision suited to the control's step.
func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// statusLines summarises the run for the HUD header.
func statusLines(st core.Status) []string {
	return []string{
		st.State.String() + " / " + st.Mode.String(),
		"Generation " + strconv.Itoa(st.Generation),
		"Population " + strconv.Itoa(st.Population),
	}
}
