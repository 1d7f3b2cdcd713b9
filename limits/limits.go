// Package limits provides centralized size limits for frames and transform
// parameters. This ensures consistent validation across different components.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxDimension is the largest accepted frame width or height in pixels.
	MaxDimension = 16384

	// MaxFrameBytes is the largest packed I420 frame the transform will
	// snapshot. A 16384x16384 frame is 384MB, so this cap is reached first
	// for very large but otherwise valid dimensions.
	MaxFrameBytes = 256 * 1024 * 1024

	// MaxSectors bounds the per-pixel clone loop.
	MaxSectors = 4096
)

var (
	// ErrDimensionTooLarge indicates a width or height above MaxDimension
	ErrDimensionTooLarge = errors.New("dimension too large")

	// ErrFrameTooLarge indicates a frame whose packed size exceeds MaxFrameBytes
	ErrFrameTooLarge = errors.New("frame too large")

	// ErrTooManySectors indicates a sector count above MaxSectors
	ErrTooManySectors = errors.New("too many sectors")
)

// ValidateDimensions checks width and height against MaxDimension.
// Zero, negative and odd values are the frame package's concern.
func ValidateDimensions(width, height int) error {
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds limit %d", ErrDimensionTooLarge, width, height, MaxDimension)
	}
	return nil
}

// ValidateFrameSize validates a packed frame size against MaxFrameBytes.
func ValidateFrameSize(size int) error {
	if size > MaxFrameBytes {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrFrameTooLarge, size, MaxFrameBytes)
	}
	return nil
}

// ValidateSectors validates a sector count against MaxSectors.
func ValidateSectors(sectors int) error {
	if sectors > MaxSectors {
		return fmt.Errorf("%w: %d exceeds limit %d", ErrTooManySectors, sectors, MaxSectors)
	}
	return nil
}
