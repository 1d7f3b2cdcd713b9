// Package main provides the command-line interface for the kaleidoscope
// effect.
//
// It reads a JPEG or raw I420 frame, runs it through the effect pipeline
// and writes the result in the format implied by the output extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/kaleidoscope/codec"
	"github.com/opd-ai/kaleidoscope/config"
	"github.com/opd-ai/kaleidoscope/video"
)

// CLI configuration
type CLIConfig struct {
	configFile   string
	sectors      int
	dimFactor    int
	smoothing    string
	brightness   int
	grayscale    bool
	quality      int
	inPlace      bool
	maxDimension int
	rawWidth     int
	rawHeight    int
	logLevel     string
	help         bool

	input  string
	output string

	// set records the flags given explicitly on the command line.
	set map[string]bool
}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags(fs *flag.FlagSet, args []string) (*CLIConfig, error) {
	defaults := config.Default()
	cli := &CLIConfig{set: make(map[string]bool)}

	// Configuration file
	fs.StringVar(&cli.configFile, "config", "", "YAML configuration file")

	// Transform parameters
	fs.IntVar(&cli.sectors, "sectors", defaults.Sectors, "Number of kaleidoscope sectors")
	fs.IntVar(&cli.dimFactor, "dim", defaults.DimFactor, "Luma dim factor (0-255, wraps)")
	fs.StringVar(&cli.smoothing, "smoothing", defaults.Smoothing, "Smoothing pattern (run, cross, none)")
	fs.BoolVar(&cli.inPlace, "inplace", defaults.InPlace, "Transform the decoded frame in place")

	// Extra effects
	fs.IntVar(&cli.brightness, "brightness", defaults.Brightness, "Brightness adjustment applied before the transform (-255 to 255)")
	fs.BoolVar(&cli.grayscale, "grayscale", defaults.Grayscale, "Neutralise chroma before the transform")

	// I/O
	fs.IntVar(&cli.quality, "quality", defaults.Quality, "JPEG output quality (1-100)")
	fs.IntVar(&cli.maxDimension, "max-size", defaults.MaxDimension, "Downscale so neither side exceeds this (0 = off)")
	fs.IntVar(&cli.rawWidth, "raw-width", defaults.RawWidth, "Width of raw I420 input")
	fs.IntVar(&cli.rawHeight, "raw-height", defaults.RawHeight, "Height of raw I420 input")

	// Logging configuration
	fs.StringVar(&cli.logLevel, "log-level", defaults.LogLevel, "Log level (DEBUG, INFO, WARN, ERROR)")

	// Help
	fs.BoolVar(&cli.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		cli.set[f.Name] = true
	})

	if rest := fs.Args(); len(rest) >= 2 {
		cli.input, cli.output = rest[0], rest[1]
	}
	return cli, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Kaleidoscope")
	fmt.Fprintln(w, "============")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Applies an N-fold radial kaleidoscope effect to a single frame.")
	fmt.Fprintln(w, "Supported formats: .jpg/.jpeg, .yuv/.i420 (raw I420), and .yuv.zst/.i420.zst.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options] <input> <output>\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  # Six sectors, default dimming\n")
	fmt.Fprintf(w, "  %s -sectors 6 in.jpg out.jpg\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  # Raw 1280x720 input, compressed raw output\n")
	fmt.Fprintf(w, "  %s -raw-width 1280 -raw-height 720 in.yuv out.yuv.zst\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  # Settings from a file, sector count overridden\n")
	fmt.Fprintf(w, "  %s -config kaleidoscope.yaml -sectors 12 in.jpg out.jpg\n", fs.Name())
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(cli *CLIConfig) error {
	if cli.input == "" || cli.output == "" {
		return fmt.Errorf("input and output paths are required")
	}
	if _, err := codec.DetectFormat(cli.input); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if _, err := codec.DetectFormat(cli.output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// createConfig loads the configuration file, if any, and applies the flags
// given explicitly on the command line over it.
func createConfig(cli *CLIConfig) (*config.Config, error) {
	cfg := config.Default()
	if cli.configFile != "" {
		loaded, err := config.Load(cli.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := map[string]func(){
		"sectors":    func() { cfg.Sectors = cli.sectors },
		"dim":        func() { cfg.DimFactor = cli.dimFactor },
		"smoothing":  func() { cfg.Smoothing = cli.smoothing },
		"brightness": func() { cfg.Brightness = cli.brightness },
		"grayscale":  func() { cfg.Grayscale = cli.grayscale },
		"quality":    func() { cfg.Quality = cli.quality },
		"inplace":    func() { cfg.InPlace = cli.inPlace },
		"max-size":   func() { cfg.MaxDimension = cli.maxDimension },
		"raw-width":  func() { cfg.RawWidth = cli.rawWidth },
		"raw-height": func() { cfg.RawHeight = cli.rawHeight },
		"log-level":  func() { cfg.LogLevel = cli.logLevel },
	}
	for name, apply := range overrides {
		if cli.set[name] {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newProcessor builds the pipeline described by cfg: brightness and
// grayscale first, then the kaleidoscope.
func newProcessor(cfg *config.Config) (*video.Processor, *video.KaleidoscopeEffect, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, nil, err
	}

	processor, err := video.NewProcessor(video.ProcessorConfig{MaxDimension: cfg.MaxDimension})
	if err != nil {
		return nil, nil, err
	}

	chain := processor.GetEffectChain()
	if cfg.Brightness != 0 {
		chain.AddEffect(video.NewBrightnessEffect(cfg.Brightness))
	}
	if cfg.Grayscale {
		chain.AddEffect(video.NewGrayscaleEffect())
	}

	effect, err := video.NewKaleidoscopeEffect(params, cfg.InPlace)
	if err != nil {
		return nil, nil, err
	}
	chain.AddEffect(effect)

	return processor, effect, nil
}

// run executes read → process → write for one frame.
func run(cli *CLIConfig, cfg *config.Config) error {
	logger := logrus.WithFields(logrus.Fields{
		"function": "run",
		"run_id":   uuid.New().String(),
		"input":    cli.input,
		"output":   cli.output,
	})

	processor, effect, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	in, err := codec.ReadFile(cli.input, cfg.RawSize())
	if err != nil {
		logger.WithError(err).Error("Failed to read input")
		return err
	}
	decoded := time.Since(start)

	out, err := processor.Process(in)
	if err != nil {
		logger.WithError(err).Error("Failed to process frame")
		return err
	}
	processed := time.Since(start) - decoded

	if err := codec.WriteFile(cli.output, out, cfg.Quality); err != nil {
		logger.WithError(err).Error("Failed to write output")
		return err
	}

	stats := effect.LastStats()
	logger.WithFields(logrus.Fields{
		"width":        out.Width,
		"height":       out.Height,
		"sectors":      cfg.Sectors,
		"effects":      processor.GetEffectChain().GetEffectNames(),
		"wedge_pixels": stats.WedgePixels,
		"writes":       stats.Writes,
		"clipped":      stats.Clipped,
		"decode_time":  decoded,
		"process_time": processed,
		"total_time":   time.Since(start),
	}).Info("Kaleidoscope complete")

	return nil
}

// main is the entry point for the kaleidoscope command.
func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Usage = func() { printUsage(os.Stderr, fs) }

	// Parse command-line flags
	cli, err := parseCLIFlags(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Show help if requested
	if cli.help {
		printUsage(os.Stdout, fs)
		os.Exit(0)
	}

	// Validate configuration
	if err := validateCLIConfig(cli); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	cfg, err := createConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Configure logging
	level, _ := cfg.Level()
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(cli, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Kaleidoscope failed: %v\n", err)
		os.Exit(1)
	}
}
