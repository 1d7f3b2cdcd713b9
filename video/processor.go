package video

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/kaleidoscope/frame"
	"github.com/opd-ai/kaleidoscope/limits"
)

// ProcessorConfig configures a Processor.
type ProcessorConfig struct {
	// MaxDimension caps the longest side of a frame before effects run.
	// Zero disables downscaling.
	MaxDimension int
}

// Processor manages the frame processing pipeline:
//
//	I420 Input → Validation → Downscaling → Effects → I420 Output
type Processor struct {
	config  ProcessorConfig
	scaler  *frame.Scaler
	effects *EffectChain
}

// NewProcessor creates a processor with an empty effect chain.
func NewProcessor(config ProcessorConfig) (*Processor, error) {
	if config.MaxDimension < 0 {
		return nil, fmt.Errorf("max dimension cannot be negative: %d", config.MaxDimension)
	}
	if config.MaxDimension > 0 {
		if err := limits.ValidateDimensions(config.MaxDimension, config.MaxDimension); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":      "NewProcessor",
		"max_dimension": config.MaxDimension,
	}).Debug("Creating frame processor")

	return &Processor{
		config:  config,
		scaler:  frame.NewScaler(),
		effects: NewEffectChain(),
	}, nil
}

// Process runs a frame through the pipeline. The input frame is never
// modified; the returned frame may have smaller dimensions when
// MaxDimension applies.
func (p *Processor) Process(f *frame.Frame) (*frame.Frame, error) {
	// Step 1: Validate frame and dimensions
	if err := p.validateFrame(f); err != nil {
		return nil, err
	}

	// Step 2: Downscale if needed
	processed, err := p.applyScaling(f)
	if err != nil {
		return nil, err
	}

	// Step 3: Apply effects chain
	processed, err = p.applyEffects(processed)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Processor.Process",
		"in_width":   f.Width,
		"in_height":  f.Height,
		"out_width":  processed.Width,
		"out_height": processed.Height,
		"effects":    p.effects.GetEffectCount(),
	}).Debug("Frame processed")

	return processed, nil
}

// validateFrame checks the frame layout and the global size limits.
func (p *Processor) validateFrame(f *frame.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return limits.ValidateFrameSize(f.Size())
}

// applyScaling downscales the frame when it exceeds MaxDimension.
// Returns the original frame if no scaling is needed.
func (p *Processor) applyScaling(f *frame.Frame) (*frame.Frame, error) {
	w, h := frame.FitWithin(f.Width, f.Height, p.config.MaxDimension)
	if !p.scaler.IsScalingRequired(f.Width, f.Height, w, h) {
		return f, nil
	}

	scaled, err := p.scaler.Scale(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("scaling failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Processor.applyScaling",
		"src_width":  f.Width,
		"src_height": f.Height,
		"dst_width":  w,
		"dst_height": h,
	}).Info("Frame downscaled")

	return scaled, nil
}

// applyEffects runs the effect chain. With no effects the frame is
// returned unchanged.
func (p *Processor) applyEffects(f *frame.Frame) (*frame.Frame, error) {
	if p.effects.GetEffectCount() == 0 {
		return f, nil
	}

	result, err := p.effects.Apply(f)
	if err != nil {
		return nil, fmt.Errorf("effects processing failed: %w", err)
	}

	return result, nil
}

// GetEffectChain returns the effect chain for configuration.
func (p *Processor) GetEffectChain() *EffectChain {
	return p.effects
}

// GetConfig returns the processor configuration.
func (p *Processor) GetConfig() ProcessorConfig {
	return p.config
}
