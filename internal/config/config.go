// Package config loads feed configuration from YAML: the instrument
// universe, target tick rate, risk limits, and observability address.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tickforge/tickforge/internal/domain/risk"
	"github.com/tickforge/tickforge/internal/universe"
)

// Config is the full feed configuration. Zero/missing fields fall back to
// the built-in defaults.
type Config struct {
	TargetTicksPerSecond uint32 `yaml:"target_ticks_per_second"`
	// Seed pins the PRNG for reproducible streams; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`

	Symbols         []string             `yaml:"symbols"`
	Venues          []universe.VenueInfo `yaml:"venues"`
	BasePrices      []float64            `yaml:"base_prices"`
	TickMultipliers []uint32             `yaml:"tick_multipliers"`

	Limits      risk.Limits `yaml:"limits"`
	MetricsAddr string      `yaml:"metrics_addr"`
}

// Default returns the built-in configuration: the default universe at 1000
// ticks/second with standard risk limits.
func Default() *Config {
	return &Config{
		TargetTicksPerSecond: 1000,
		Symbols:              universe.DefaultSymbols,
		Venues:               universe.DefaultVenues,
		BasePrices:           universe.DefaultBasePrices,
		TickMultipliers:      universe.DefaultTickMultipliers,
		Limits:               risk.DefaultLimits,
		MetricsAddr:          ":9090",
	}
}

// Load reads a YAML config file and overlays it on the defaults. An empty
// path returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if file.TargetTicksPerSecond != 0 {
		cfg.TargetTicksPerSecond = file.TargetTicksPerSecond
	}
	if file.Seed != 0 {
		cfg.Seed = file.Seed
	}
	if len(file.Symbols) > 0 {
		cfg.Symbols = file.Symbols
		// a custom symbol list invalidates the default positional tables
		cfg.BasePrices = file.BasePrices
		cfg.TickMultipliers = file.TickMultipliers
	}
	if len(file.Venues) > 0 {
		cfg.Venues = file.Venues
	}
	if file.Limits.MaxPositionRisk != 0 {
		cfg.Limits.MaxPositionRisk = file.Limits.MaxPositionRisk
	}
	if file.Limits.MaxPriceChange != 0 {
		cfg.Limits.MaxPriceChange = file.Limits.MaxPriceChange
	}
	if file.Limits.MaxVolatility != 0 {
		cfg.Limits.MaxVolatility = file.Limits.MaxVolatility
	}
	if file.MetricsAddr != "" {
		cfg.MetricsAddr = file.MetricsAddr
	}

	return cfg, nil
}

// UniverseConfig maps the loaded config onto a universe initialization.
func (c *Config) UniverseConfig() universe.Config {
	return universe.Config{
		Symbols:         c.Symbols,
		Venues:          c.Venues,
		BasePrices:      c.BasePrices,
		TickMultipliers: c.TickMultipliers,
	}
}
