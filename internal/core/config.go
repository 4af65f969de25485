package core

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"sonolife/pkg/sonify"
)

// Config holds the construction-time settings of the program.
type Config struct {
	CellSize int `json:"cell_size"`
	Width    int `json:"width"`
	Height   int `json:"height"`

	GenerationDelayMs int     `json:"generation_delay_ms"`
	ColumnDelayMs     int     `json:"column_delay_ms"`
	ToneDurationMs    int     `json:"tone_duration_ms"`
	LiveProbability   float64 `json:"live_probability"`
	Scale             string  `json:"scale"`

	Seed     int64  `json:"seed"`
	GridFile string `json:"grid_file"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:          10,
		Width:             60,
		Height:            40,
		GenerationDelayMs: 400,
		ColumnDelayMs:     100,
		ToneDurationMs:    200,
		LiveProbability:   0.2,
		Scale:             sonify.DefaultScale,
		Seed:              time.Now().UnixNano(),
		GridFile:          "grid.txt",
	}
}

// LoadConfig layers the JSON file at path over the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// FromMap applies flag-style key/value overrides on top of c. Unknown keys
// and unparsable values are reported.
func (c Config) FromMap(cfg map[string]string) (Config, error) {
	for key, v := range cfg {
		var err error
		switch key {
		case "cell_size":
			c.CellSize, err = strconv.Atoi(v)
		case "w", "width":
			c.Width, err = strconv.Atoi(v)
		case "h", "height":
			c.Height, err = strconv.Atoi(v)
		case "generation_delay_ms":
			c.GenerationDelayMs, err = strconv.Atoi(v)
		case "column_delay_ms":
			c.ColumnDelayMs, err = strconv.Atoi(v)
		case "tone_duration_ms":
			c.ToneDurationMs, err = strconv.Atoi(v)
		case "live_probability":
			c.LiveProbability, err = strconv.ParseFloat(v, 64)
		case "scale":
			c.Scale = v
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "grid_file":
			c.GridFile = v
		default:
			return c, errors.Errorf("unknown config key %q", key)
		}
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] bad value for %s", key)
		}
	}
	return c, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell_size must be positive, got %d", c.CellSize)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.GenerationDelayMs < 0:
		return errors.Errorf("generation_delay_ms must not be negative, got %d", c.GenerationDelayMs)
	case c.ColumnDelayMs < 0:
		return errors.Errorf("column_delay_ms must not be negative, got %d", c.ColumnDelayMs)
	case c.ToneDurationMs <= 0:
		return errors.Errorf("tone_duration_ms must be positive, got %d", c.ToneDurationMs)
	case c.LiveProbability < 0 || c.LiveProbability > 1:
		return errors.Errorf("live_probability must be within [0,1], got %v", c.LiveProbability)
	}
	if _, err := sonify.ScaleByName(c.Scale); err != nil {
		return err
	}
	return nil
}

// GenerationDelay is the pause between a finished pass and the next step.
func (c Config) GenerationDelay() time.Duration {
	return time.Duration(c.GenerationDelayMs) * time.Millisecond
}

// ColumnDelay is the pause after each column of a pass.
func (c Config) ColumnDelay() time.Duration {
	return time.Duration(c.ColumnDelayMs) * time.Millisecond
}

// ToneDuration is the length of each column's tone.
func (c Config) ToneDuration() time.Duration {
	return time.Duration(c.ToneDurationMs) * time.Millisecond
}
