package frame

import "errors"

// Sentinel errors for frame construction and validation.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrOddDimensions indicates a width or height that is not even.
	// I420 chroma addressing is only exact for even dimensions.
	ErrOddDimensions = errors.New("frame dimensions must be even for I420")

	// ErrBufferTooSmall indicates a buffer shorter than width*height*3/2.
	ErrBufferTooSmall = errors.New("frame buffer too small")

	// ErrDimensionMismatch indicates two frames that must share dimensions do not.
	ErrDimensionMismatch = errors.New("frame dimensions mismatch")

	// ErrNilFrame indicates a nil frame was supplied.
	ErrNilFrame = errors.New("frame cannot be nil")
)
