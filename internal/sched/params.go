package sched

import (
	"strconv"

	"sonolife/internal/core"
)

const (
	keyGenerationDelay = "generation_delay_ms"
	keyColumnDelay     = "column_delay_ms"
	keyToneDuration    = "tone_duration_ms"
	keyLiveProbability = "live_probability"
)

// Parameters reports the runtime-tunable settings.
func (s *Scheduler) Parameters() core.ParameterSnapshot {
	cfg := s.config()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam(keyGenerationDelay, "Generation delay ms", cfg.GenerationDelayMs),
				intParam(keyColumnDelay, "Column delay ms", cfg.ColumnDelayMs),
				intParam(keyToneDuration, "Tone length ms", cfg.ToneDurationMs),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam(keyLiveProbability, "Live chance", cfg.LiveProbability),
			},
		},
	}}
}

// ParameterControls lists the HUD controls and their bounds.
func (s *Scheduler) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyGenerationDelay, Label: "Gen delay", Type: core.ParamTypeInt, Step: 50, Min: 0, Max: 5000, HasMin: true, HasMax: true},
		{Key: keyColumnDelay, Label: "Col delay", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: keyToneDuration, Label: "Tone ms", Type: core.ParamTypeInt, Step: 25, Min: 25, Max: 2000, HasMin: true, HasMax: true},
		{Key: keyLiveProbability, Label: "Live chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting. New values apply from the next
// pass or generation delay.
func (s *Scheduler) SetIntParameter(key string, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case keyGenerationDelay:
		if value < 0 {
			return false
		}
		s.cfg.GenerationDelayMs = value
	case keyColumnDelay:
		if value < 0 {
			return false
		}
		s.cfg.ColumnDelayMs = value
	case keyToneDuration:
		if value <= 0 {
			return false
		}
		s.cfg.ToneDurationMs = value
	default:
		return false
	}
	s.log.Debug("parameter updated", "key", key, "value", value)
	return true
}

// SetFloatParameter updates a floating point setting.
func (s *Scheduler) SetFloatParameter(key string, value float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key != keyLiveProbability || value < 0 || value > 1 {
		return false
	}
	s.cfg.LiveProbability = value
	s.log.Debug("parameter updated", "key", key, "value", value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
