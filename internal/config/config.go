// Package config loads the configuration of the curves command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the configuration is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Population PopulationConfig `yaml:"population"`
	Evaluate   EvaluateConfig   `yaml:"evaluate"`
	Aggregate  AggregateConfig  `yaml:"aggregate"`
}

// PopulationConfig configures random curve generation.
type PopulationConfig struct {
	Count int     `yaml:"count"` // Number of construction attempts
	Min   float64 `yaml:"min"`   // Lower bound of parameter draws, inclusive
	Max   float64 `yaml:"max"`   // Upper bound of parameter draws, exclusive
	Seed  uint64  `yaml:"seed"`  // 0 seeds from the clock
}

// EvaluateConfig configures curve evaluation.
type EvaluateConfig struct {
	T float64 `yaml:"t"` // Parameter at which positions and derivatives are reported
}

// AggregateConfig configures the radius sums.
type AggregateConfig struct {
	Workers int `yaml:"workers"` // Parallel workers, 0 for GOMAXPROCS
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Population: PopulationConfig{
			Count: 20,
			Min:   -2,
			Max:   10,
		},
		Evaluate: EvaluateConfig{
			T: math.Pi / 4,
		},
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep their
// [DefaultConfig] values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	if c.Population.Count < 0 {
		return fmt.Errorf("%w: population count cannot be negative", ErrInvalidConfig)
	}
	if !(c.Population.Min < c.Population.Max) {
		return fmt.Errorf("%w: population min (%g) must be less than max (%g)",
			ErrInvalidConfig, c.Population.Min, c.Population.Max)
	}
	if math.IsInf(c.Population.Min, 0) || math.IsInf(c.Population.Max, 0) {
		return fmt.Errorf("%w: population range must be finite", ErrInvalidConfig)
	}
	if math.IsNaN(c.Evaluate.T) || math.IsInf(c.Evaluate.T, 0) {
		return fmt.Errorf("%w: evaluation parameter must be finite", ErrInvalidConfig)
	}
	if c.Aggregate.Workers < 0 {
		return fmt.Errorf("%w: worker count cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Set assigns value to the field named by key, using the YAML key path, e.g.
// "population.count".
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "population.count":
		c.Population.Count, err = cast.ToIntE(value)
	case "population.min":
		c.Population.Min, err = cast.ToFloat64E(value)
	case "population.max":
		c.Population.Max, err = cast.ToFloat64E(value)
	case "population.seed":
		c.Population.Seed, err = cast.ToUint64E(value)
	case "evaluate.t":
		c.Evaluate.T, err = cast.ToFloat64E(value)
	case "aggregate.workers":
		c.Aggregate.Workers, err = cast.ToIntE(value)
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return nil
}

// ApplyOverrides applies a list of key=value assignments with [Config.Set]
// and validates the result.
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			return fmt.Errorf("%w: override %q is not of the form key=value", ErrInvalidConfig, o)
		}
		if err := c.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return c.Validate()
}
