// Package config holds the engine's tunables as an explicit structure
// injected into the generator, keeping the solving core stateless.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/nonogram/internal/domain"
)

// DifficultyParams tune sampling and quality gating per difficulty.
type DifficultyParams struct {
	// FillDensity is the probability a sampled cell is filled.
	FillDensity float64 `yaml:"fillDensity"`
	// MinFlowScore is the lowest flow score the generator accepts.
	MinFlowScore float64 `yaml:"minFlowScore"`
}

// Config is the full engine configuration.
type Config struct {
	// Attempts bounds the generate-and-test loop.
	Attempts int `yaml:"attempts"`
	// RepairRetries bounds the empty-line repair loop per candidate.
	RepairRetries int `yaml:"repairRetries"`
	// SATMaxSize selects the SAT backend for sizes up to and including
	// this value; larger grids use constraint propagation.
	SATMaxSize int `yaml:"satMaxSize"`
	// UniquenessMaxSize gates uniqueness checking entirely: above it
	// the check is skipped and candidates are accepted unverified.
	UniquenessMaxSize int `yaml:"uniquenessMaxSize"`
	// FlowCandidates is how many independent searches the optimal-flow
	// variant runs by default.
	FlowCandidates int `yaml:"flowCandidates"`

	Easy   DifficultyParams `yaml:"easy"`
	Medium DifficultyParams `yaml:"medium"`
	Hard   DifficultyParams `yaml:"hard"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Attempts:          200,
		RepairRetries:     10,
		SATMaxSize:        15,
		UniquenessMaxSize: 30,
		FlowCandidates:    4,
		Easy:              DifficultyParams{FillDensity: 0.65, MinFlowScore: 0.10},
		Medium:            DifficultyParams{FillDensity: 0.50, MinFlowScore: 0.25},
		Hard:              DifficultyParams{FillDensity: 0.35, MinFlowScore: 0.35},
	}
}

// Load reads a YAML file over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Params returns the tuning for a difficulty.
func (c Config) Params(d domain.Difficulty) DifficultyParams {
	switch d {
	case domain.Easy:
		return c.Easy
	case domain.Hard:
		return c.Hard
	default:
		return c.Medium
	}
}
