package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/kaleidoscope"
	"github.com/opd-ai/kaleidoscope/codec"
	"github.com/opd-ai/kaleidoscope/limits"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Sectors)
	assert.Equal(t, 40, cfg.DimFactor)
	assert.Equal(t, "run", cfg.Smoothing)
	assert.Equal(t, 92, cfg.Quality)
	assert.False(t, cfg.InPlace)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, kaleidoscope.DefaultParams(), p)
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
sectors: 6
smoothing: cross
in_place: true
max_dimension: 1024
log_level: DEBUG
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Sectors)
	assert.Equal(t, 40, cfg.DimFactor, "missing keys keep defaults")
	assert.Equal(t, "cross", cfg.Smoothing)
	assert.True(t, cfg.InPlace)
	assert.Equal(t, 1024, cfg.MaxDimension)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, kaleidoscope.SmoothCross, p.Smoothing)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"zero sectors", "sectors: 0", kaleidoscope.ErrInvalidSectors},
		{"dim too large", "dim_factor: 300", kaleidoscope.ErrInvalidDimFactor},
		{"unknown smoothing", "smoothing: blur", kaleidoscope.ErrInvalidSmoothing},
		{"brightness", "brightness: -300", ErrInvalidBrightness},
		{"quality", "quality: 0", codec.ErrInvalidQuality},
		{"max dimension", "max_dimension: -1", ErrInvalidMaxDimension},
		{"raw size", "raw_width: 99999\nraw_height: 16", limits.ErrDimensionTooLarge},
		{"log level", "log_level: loud", ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("sectors: [1, 2"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kaleidoscope.yaml")

	cfg := Default()
	cfg.Sectors = 8
	cfg.Grayscale = true
	data, err := cfg.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRawSize(t *testing.T) {
	cfg := Default()
	cfg.RawWidth, cfg.RawHeight = 320, 240
	assert.Equal(t, codec.RawSize{Width: 320, Height: 240}, cfg.RawSize())
}
