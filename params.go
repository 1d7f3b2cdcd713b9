package kaleidoscope

import (
	"fmt"
	"strings"

	"github.com/opd-ai/kaleidoscope/limits"
)

const (
	// DefaultSectors is the sector count used by Kaleidoscope.
	DefaultSectors = 10

	// DefaultDimFactor is the luma reduction used by Kaleidoscope.
	DefaultDimFactor = 40
)

// Smoothing selects the neighbourhood written around each rotated pixel.
type Smoothing int

const (
	// SmoothRun writes a short diagonal run: the pixel, its upper-left
	// neighbour and the pixel two columns to the left.
	SmoothRun Smoothing = iota
	// SmoothCross writes the pixel and its four axis neighbours.
	SmoothCross
	// SmoothNone writes only the rotated pixel.
	SmoothNone
)

type offset struct {
	dh, dw int
}

var smoothingOffsets = map[Smoothing][]offset{
	SmoothRun:   {{0, 0}, {-1, -1}, {0, -2}},
	SmoothCross: {{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	SmoothNone:  {{0, 0}},
}

var smoothingNames = map[Smoothing]string{
	SmoothRun:   "run",
	SmoothCross: "cross",
	SmoothNone:  "none",
}

// String returns the pattern name.
func (s Smoothing) String() string {
	if name, ok := smoothingNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Smoothing(%d)", int(s))
}

// ParseSmoothing converts a pattern name ("run", "cross", "none") to a Smoothing.
func ParseSmoothing(name string) (Smoothing, error) {
	for s, n := range smoothingNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSmoothing, name)
}

// Params are the per-call transform parameters.
type Params struct {
	// Sectors is the number of angular copies of the wedge, including the
	// wedge itself.
	Sectors int
	// DimFactor is subtracted from every luma sample with uint8 wraparound.
	DimFactor int
	// Smoothing selects the neighbour pattern for rotated writes.
	Smoothing Smoothing
}

// DefaultParams returns DefaultSectors, DefaultDimFactor and SmoothRun.
func DefaultParams() Params {
	return Params{
		Sectors:   DefaultSectors,
		DimFactor: DefaultDimFactor,
		Smoothing: SmoothRun,
	}
}

// Validate checks every parameter.
func (p Params) Validate() error {
	if p.Sectors < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSectors, p.Sectors)
	}
	if err := limits.ValidateSectors(p.Sectors); err != nil {
		return err
	}
	if p.DimFactor < 0 || p.DimFactor > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimFactor, p.DimFactor)
	}
	if _, ok := smoothingOffsets[p.Smoothing]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidSmoothing, int(p.Smoothing))
	}
	return nil
}
