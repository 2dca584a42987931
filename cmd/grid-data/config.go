package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blumenos/gridadmin/pkg/configuration"
)

type rangeRule struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type checkRules struct {
	OrphanSubstations bool      `yaml:"orphanSubstations"`
	DuplicateCodes    bool      `yaml:"duplicateCodes"`
	CoordinateRange   bool      `yaml:"coordinateRange"`
	Latitude          rangeRule `yaml:"latitude"`
	Longitude         rangeRule `yaml:"longitude"`
}

type cliConfig struct {
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Checks checkRules `yaml:"checks"`
}

func defaultConfig() cliConfig {
	var cfg cliConfig
	cfg.Database.DSN = configuration.Use().Database.Opts
	cfg.Checks = checkRules{
		OrphanSubstations: true,
		DuplicateCodes:    true,
		CoordinateRange:   true,
		Latitude:          rangeRule{Min: -90, Max: 90},
		Longitude:         rangeRule{Min: -180, Max: 180},
	}
	return cfg
}

// loadConfig reads the YAML config when --config is given, otherwise the
// environment-driven defaults apply. YAML values override field by field.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, withCode(exitUsage, fmt.Errorf("failed to read config %s: %w", path, err))
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, withCode(exitUsage, fmt.Errorf("failed to parse config %s: %w", path, err))
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = configuration.Use().Database.Opts
	}
	return cfg, nil
}
