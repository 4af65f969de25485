package app

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"sonolife/internal/core"
)

// kvList collects repeated key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Flags are the command line options of the GUI binary.
type Flags struct {
	ConfigFile string
	Debug      bool
	TPS        int
	Sets       kvList
}

// Bind registers the flags on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "JSON config file layered over the defaults")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.IntVar(&f.TPS, "tps", 60, "UI ticks per second")
	fs.Var(&f.Sets, "set", "config override in key=value form (repeatable)")
}

// Overrides parses the -set values.
func (f *Flags) Overrides() (map[string]string, error) {
	out := make(map[string]string, len(f.Sets))
	for _, kv := range f.Sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("override %q is not key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}

// Resolve builds the effective config: defaults, then the config file, then
// the -set overrides.
func (f *Flags) Resolve() (core.Config, error) {
	cfg := core.DefaultConfig()
	if f.ConfigFile != "" {
		var err error
		if cfg, err = core.LoadConfig(f.ConfigFile); err != nil {
			return cfg, err
		}
	}
	overrides, err := f.Overrides()
	if err != nil {
		return cfg, err
	}
	if cfg, err = cfg.FromMap(overrides); err != nil {
		return cfg, err
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid config")
}
