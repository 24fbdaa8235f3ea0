// Package config loads the taylorcheck CLI's YAML configuration file:
// default strategy, color/verbosity settings, and fixture search paths.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TaylorcheckConfig is the taylorcheck CLI's on-disk configuration shape.
type TaylorcheckConfig struct {
	// Strategy selects the default checking strategy: "constraint" or
	// "algorithmic" (see checker.Strategy).
	Strategy string `yaml:"strategy"`
	// Color enables ANSI-colorized diagnostic output (fatih/color).
	Color bool `yaml:"color"`
	// Verbose prints a progress line before each fixture is checked.
	Verbose bool `yaml:"verbose"`
	// FixturePaths lists fixture directories. Load requires it to be
	// non-empty, but taylorcheck does not read it: fixtures come from the
	// testsupport registry as pre-built Go ASTs.
	FixturePaths []string `yaml:"fixture_paths"`
}

// defaultConfig is returned by Load when no config file is found at path.
func defaultConfig() *TaylorcheckConfig {
	return &TaylorcheckConfig{
		Strategy:     "constraint",
		Color:        true,
		Verbose:      false,
		FixturePaths: []string{"fixtures"},
	}
}

// Load reads and validates a TaylorcheckConfig from path. A missing file
// is not an error: Load returns defaultConfig() instead, so the CLI works
// with zero configuration.
func Load(path string) (*TaylorcheckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	switch cfg.Strategy {
	case "constraint", "algorithmic":
	default:
		return nil, fmt.Errorf("config: unknown strategy %q (want \"constraint\" or \"algorithmic\")", cfg.Strategy)
	}
	if len(cfg.FixturePaths) == 0 {
		return nil, fmt.Errorf("config missing required field: fixture_paths")
	}
	return cfg, nil
}
