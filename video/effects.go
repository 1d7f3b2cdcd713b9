package video

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/kaleidoscope"
	"github.com/opd-ai/kaleidoscope/frame"
)

// Effect represents a video effect that can be applied to frames.
type Effect interface {
	// Apply processes a frame and returns the modified frame
	Apply(f *frame.Frame) (*frame.Frame, error)
	// GetName returns the effect name for identification
	GetName() string
}

// EffectChain manages multiple effects applied in sequence.
type EffectChain struct {
	effects []Effect
}

// NewEffectChain creates a new effect processing chain.
func NewEffectChain() *EffectChain {
	return &EffectChain{
		effects: make([]Effect, 0),
	}
}

// AddEffect adds an effect to the processing chain.
func (ec *EffectChain) AddEffect(effect Effect) {
	ec.effects = append(ec.effects, effect)
}

// Apply processes a frame through all effects in the chain.
// The input frame is never modified.
func (ec *EffectChain) Apply(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	current := f.Clone()
	for i, effect := range ec.effects {
		result, err := effect.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("effect %d (%s) failed: %w", i, effect.GetName(), err)
		}
		current = result
	}

	return current, nil
}

// GetEffectCount returns the number of effects in the chain.
func (ec *EffectChain) GetEffectCount() int {
	return len(ec.effects)
}

// GetEffectNames returns the names of the effects in chain order.
func (ec *EffectChain) GetEffectNames() []string {
	names := make([]string, len(ec.effects))
	for i, effect := range ec.effects {
		names[i] = effect.GetName()
	}
	return names
}

// Clear removes all effects from the chain.
func (ec *EffectChain) Clear() {
	ec.effects = ec.effects[:0]
}

// KaleidoscopeEffect applies the radial kaleidoscope transform.
type KaleidoscopeEffect struct {
	params    kaleidoscope.Params
	inPlace   bool
	lastStats kaleidoscope.Stats
}

// NewKaleidoscopeEffect creates a kaleidoscope effect. With inPlace the
// transform writes back into the frame it is given; otherwise a new frame
// is allocated for the result.
func NewKaleidoscopeEffect(params kaleidoscope.Params, inPlace bool) (*KaleidoscopeEffect, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &KaleidoscopeEffect{
		params:  params,
		inPlace: inPlace,
	}, nil
}

// Apply runs the transform.
func (ke *KaleidoscopeEffect) Apply(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	out := f
	if !ke.inPlace {
		var err error
		out, err = frame.New(f.Width, f.Height)
		if err != nil {
			return nil, err
		}
	}

	stats, err := kaleidoscope.Apply(f, out, ke.params)
	if err != nil {
		return nil, err
	}
	ke.lastStats = stats

	logrus.WithFields(logrus.Fields{
		"function":     "KaleidoscopeEffect.Apply",
		"in_place":     ke.inPlace,
		"wedge_pixels": stats.WedgePixels,
		"writes":       stats.Writes,
		"clipped":      stats.Clipped,
	}).Debug("Kaleidoscope effect applied")

	return out, nil
}

// LastStats returns the statistics of the most recent Apply.
func (ke *KaleidoscopeEffect) LastStats() kaleidoscope.Stats {
	return ke.lastStats
}

// GetName returns the effect name.
func (ke *KaleidoscopeEffect) GetName() string {
	return fmt.Sprintf("Kaleidoscope(%d,-%d,%s)", ke.params.Sectors, ke.params.DimFactor, ke.params.Smoothing)
}

// BrightnessEffect adjusts the brightness of video frames.
// Unlike the kaleidoscope dim pass it clamps instead of wrapping.
type BrightnessEffect struct {
	adjustment int // -255 to +255
}

// NewBrightnessEffect creates a brightness adjustment effect.
// adjustment: -255 (darkest) to +255 (brightest), 0 = no change
func NewBrightnessEffect(adjustment int) *BrightnessEffect {
	if adjustment < -255 {
		adjustment = -255
	}
	if adjustment > 255 {
		adjustment = 255
	}

	return &BrightnessEffect{
		adjustment: adjustment,
	}
}

// Apply adjusts the Y (luminance) plane in place.
func (be *BrightnessEffect) Apply(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	y := f.Y()
	for i, pixel := range y {
		newValue := int(pixel) + be.adjustment

		if newValue < 0 {
			newValue = 0
		} else if newValue > 255 {
			newValue = 255
		}

		y[i] = byte(newValue)
	}

	return f, nil
}

// GetName returns the effect name.
func (be *BrightnessEffect) GetName() string {
	return fmt.Sprintf("Brightness(%+d)", be.adjustment)
}

// GrayscaleEffect converts frames to grayscale by neutralising chroma.
type GrayscaleEffect struct{}

// NewGrayscaleEffect creates a grayscale conversion effect.
func NewGrayscaleEffect() *GrayscaleEffect {
	return &GrayscaleEffect{}
}

// Apply sets U and V to neutral in place.
func (ge *GrayscaleEffect) Apply(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	u, v := f.U(), f.V()
	for i := range u {
		u[i] = 128
		v[i] = 128
	}

	return f, nil
}

// GetName returns the effect name.
func (ge *GrayscaleEffect) GetName() string {
	return "Grayscale"
}
