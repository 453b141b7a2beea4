package trayicon

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/liubquanti/trayicon/utils"
)

// Mode selects which glyph sets a run generates.
type Mode string

const (
	ModeSVG    Mode = "svg"
	ModeDigits Mode = "digits"
	ModeAll    Mode = "all"
)

// ErrUnknownMode is returned for a mode other than svg, digits or all.
var ErrUnknownMode = errors.New("unknown mode")

// Config holds the generator settings. Every field has a default, so the
// generator runs with neither flags nor environment variables.
type Config struct {
	Mode    Mode   `env:"TRAYICON_MODE" envDefault:"all"`
	OutDir  string `env:"TRAYICON_OUT_DIR" envDefault:"assets/tray"`
	SVGList string `env:"TRAYICON_SVG_LIST" envDefault:"assets/scripts/svg.txt"`
	Font    string `env:"TRAYICON_FONT" envDefault:"arial.ttf"`
	Backend string `env:"TRAYICON_BACKEND" envDefault:"oksvg"`
	Debug   bool   `env:"TRAYICON_DEBUG" envDefault:"false"`
}

// ParseEnv loads the configuration defaults and the TRAYICON_* environment overrides.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if !utils.Contains([]Mode{ModeSVG, ModeDigits, ModeAll}, c.Mode) {
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if !utils.Contains([]string{BackendOksvg, BackendInkscape}, c.Backend) {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.OutDir == "" {
		return errors.New("output directory is empty")
	}
	return nil
}
