package trayicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Mode:    ModeAll,
		OutDir:  "assets/tray",
		SVGList: "assets/scripts/svg.txt",
		Font:    "arial.ttf",
		Backend: BackendOksvg,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRAYICON_MODE", "digits")
	t.Setenv("TRAYICON_OUT_DIR", "build/icons")
	t.Setenv("TRAYICON_SVG_LIST", "icons.txt")
	t.Setenv("TRAYICON_FONT", "DejaVuSans.ttf")
	t.Setenv("TRAYICON_BACKEND", "inkscape")
	t.Setenv("TRAYICON_DEBUG", "true")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Mode:    ModeDigits,
		OutDir:  "build/icons",
		SVGList: "icons.txt",
		Font:    "DejaVuSans.ttf",
		Backend: BackendInkscape,
		Debug:   true,
	}, cfg)
}

func TestConfig_BadBool(t *testing.T) {
	t.Setenv("TRAYICON_DEBUG", "sometimes")

	_, err := ParseEnv()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Mode: ModeSVG, OutDir: "out", Backend: BackendOksvg}

	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"unknown mode", func(c *Config) { c.Mode = "icons" }, ErrUnknownMode},
		{"unknown backend", func(c *Config) { c.Backend = "cairo" }, ErrUnknownBackend},
		{"empty output", func(c *Config) { c.OutDir = "" }, nil},
	}

	assert.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
