package codec

import (
	"fmt"
	"image/jpeg"
	"io"

	"github.com/opd-ai/kaleidoscope/frame"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 92

// DecodeJPEG decodes a JPEG stream into an I420 frame.
func DecodeJPEG(r io.Reader) (*frame.Frame, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("jpeg decode failed: %w", err)
	}
	return FromImage(img)
}

// EncodeJPEG encodes f as a 4:2:0 JPEG at the given quality (1..100).
func EncodeJPEG(w io.Writer, f *frame.Frame, quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if err := jpeg.Encode(w, f.YCbCr(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("jpeg encode failed: %w", err)
	}
	return nil
}
