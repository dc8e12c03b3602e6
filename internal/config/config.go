package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/boxdiff/internal/lattice"
)

const (
	DefaultN      = 41
	DefaultK      = 1.0
	DefaultDt     = 0.1
	DefaultSteps  = 1000
	DefaultGap    = 9
	DefaultSlices = 6
)

type Config struct {
	Scenario string  `yaml:"scenario"`
	N        int     `yaml:"n"`
	K        float64 `yaml:"k"`
	Dt       float64 `yaml:"dt"`
	Steps    int     `yaml:"steps"`
	Gap      int     `yaml:"gap"`
	Slices   int     `yaml:"slices"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "spread",
		N:        DefaultN,
		K:        DefaultK,
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
		Gap:      DefaultGap,
		Slices:   DefaultSlices,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Lattice converts the file config into the integrator's run config.
func (c *Config) Lattice() lattice.Config {
	cfg := lattice.DefaultConfig(c.N, c.Steps)
	cfg.K = c.K
	cfg.Dt = c.Dt
	return cfg
}
