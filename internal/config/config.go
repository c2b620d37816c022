// Package config loads handlecalc settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"handlecalc/internal/diagram"
	"handlecalc/internal/layout"
)

// Config holds start-up settings for the calculator.
type Config struct {
	Unit         string `env:"HANDLECALC_UNIT" envDefault:"mm"`
	Precision    int    `env:"HANDLECALC_PRECISION" envDefault:"1"`
	OutputDir    string `env:"HANDLECALC_OUTPUT_DIR" envDefault:"."`
	DiagramScale int    `env:"HANDLECALC_DIAGRAM_SCALE" envDefault:"3"`
	LogFile      string `env:"HANDLECALC_LOG_FILE"`
}

const maxDiagramScale = 8

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := layout.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("HANDLECALC_UNIT: %w", err)
	}
	if c.Precision < 0 || c.Precision > layout.MaxPrecision {
		return fmt.Errorf("HANDLECALC_PRECISION: must be between 0 and %d, got %d", layout.MaxPrecision, c.Precision)
	}
	if c.DiagramScale < 1 || c.DiagramScale > maxDiagramScale {
		return fmt.Errorf("HANDLECALC_DIAGRAM_SCALE: must be between 1 and %d, got %d", maxDiagramScale, c.DiagramScale)
	}
	return nil
}

// DisplayUnit returns the configured unit, falling back to millimetres.
func (c Config) DisplayUnit() layout.Unit {
	u, _ := layout.ParseUnit(c.Unit)
	return u
}

// DiagramOptions returns the raster settings for exported strips.
func (c Config) DiagramOptions() diagram.Options {
	return diagram.Options{Scale: c.DiagramScale}
}
