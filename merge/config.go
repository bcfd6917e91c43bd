package merge

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/authorid/assign"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("merge: invalid config")

// Config is the YAML form of the merge options. Zero fields keep the
// package defaults.
//
//	threshold: 0.65
//	strategy: optimal
//	workers: 8
type Config struct {
	Threshold *float64 `yaml:"threshold"`
	Strategy  string   `yaml:"strategy"`
	Workers   int      `yaml:"workers"`
}

// LoadConfig reads a Config from the YAML file at path.
// Unknown keys are rejected; an empty file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig %s: %w", path, err)
	}

	return cfg, nil
}

// Options validates cfg and converts it to Options. Bad values are
// reported as ErrInvalidConfig or assign.ErrUnknownStrategy, never panics.
func (cfg Config) Options() ([]Option, error) {
	var opts []Option
	if cfg.Threshold != nil {
		t := *cfg.Threshold
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("threshold %v: %w", t, ErrInvalidConfig)
		}
		opts = append(opts, WithThreshold(t))
	}
	if cfg.Strategy != "" {
		s, err := assign.ParseStrategy(cfg.Strategy)
		if err != nil {
			return nil, fmt.Errorf("strategy: %w", err)
		}
		opts = append(opts, WithStrategy(s))
	}
	switch {
	case cfg.Workers < 0:
		return nil, fmt.Errorf("workers %d: %w", cfg.Workers, ErrInvalidConfig)
	case cfg.Workers > 0:
		opts = append(opts, WithWorkers(cfg.Workers))
	}

	return opts, nil
}
