package kaleidoscope

import "errors"

// Sentinel errors for transform parameter validation.
// Frame-level violations are reported with the frame package sentinels.
var (
	// ErrInvalidSectors indicates a sector count below one.
	ErrInvalidSectors = errors.New("sector count must be at least 1")

	// ErrInvalidDimFactor indicates a dim factor outside 0..255.
	ErrInvalidDimFactor = errors.New("dim factor must be between 0 and 255")

	// ErrInvalidSmoothing indicates an unknown smoothing pattern.
	ErrInvalidSmoothing = errors.New("unknown smoothing pattern")
)
