// Package config loads kaleidoscope run settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/kaleidoscope"
	"github.com/opd-ai/kaleidoscope/codec"
	"github.com/opd-ai/kaleidoscope/limits"
)

var (
	// ErrInvalidLogLevel indicates a log level logrus does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidMaxDimension indicates a negative size cap.
	ErrInvalidMaxDimension = errors.New("max dimension cannot be negative")

	// ErrInvalidBrightness indicates a brightness outside -255..255.
	ErrInvalidBrightness = errors.New("brightness must be between -255 and 255")
)

// Config holds every setting of a kaleidoscope run.
type Config struct {
	Sectors      int    `yaml:"sectors"`
	DimFactor    int    `yaml:"dim_factor"`
	Smoothing    string `yaml:"smoothing"`
	Brightness   int    `yaml:"brightness"`
	Grayscale    bool   `yaml:"grayscale"`
	Quality      int    `yaml:"quality"`
	InPlace      bool   `yaml:"in_place"`
	MaxDimension int    `yaml:"max_dimension"`
	RawWidth     int    `yaml:"raw_width"`
	RawHeight    int    `yaml:"raw_height"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() *Config {
	return &Config{
		Sectors:   kaleidoscope.DefaultSectors,
		DimFactor: kaleidoscope.DefaultDimFactor,
		Smoothing: kaleidoscope.SmoothRun.String(),
		Quality:   codec.DefaultQuality,
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":  "config.Parse",
		"sectors":   cfg.Sectors,
		"dim":       cfg.DimFactor,
		"smoothing": cfg.Smoothing,
	}).Debug("Configuration loaded")

	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.Brightness < -255 || c.Brightness > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidBrightness, c.Brightness)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: got %d", codec.ErrInvalidQuality, c.Quality)
	}
	if c.MaxDimension < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxDimension, c.MaxDimension)
	}
	if c.RawWidth != 0 || c.RawHeight != 0 {
		if err := limits.ValidateDimensions(c.RawWidth, c.RawHeight); err != nil {
			return err
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Params returns the validated transform parameters.
func (c *Config) Params() (kaleidoscope.Params, error) {
	smoothing, err := kaleidoscope.ParseSmoothing(c.Smoothing)
	if err != nil {
		return kaleidoscope.Params{}, err
	}
	p := kaleidoscope.Params{
		Sectors:   c.Sectors,
		DimFactor: c.DimFactor,
		Smoothing: smoothing,
	}
	if err := p.Validate(); err != nil {
		return kaleidoscope.Params{}, err
	}
	return p, nil
}

// RawSize returns the dimensions used for headerless inputs.
func (c *Config) RawSize() codec.RawSize {
	return codec.RawSize{Width: c.RawWidth, Height: c.RawHeight}
}

// Level parses LogLevel (case-insensitive; "warn" and "WARNING" both work).
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
