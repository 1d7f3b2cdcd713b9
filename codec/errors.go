package codec

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no known codec.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrRawSizeRequired indicates a raw frame read without dimensions.
	ErrRawSizeRequired = errors.New("raw frames require width and height")

	// ErrEmptyImage indicates a decoded image with no even-sized area.
	ErrEmptyImage = errors.New("image too small for I420")

	// ErrInvalidQuality indicates a JPEG quality outside 1..100.
	ErrInvalidQuality = errors.New("jpeg quality must be between 1 and 100")
)
