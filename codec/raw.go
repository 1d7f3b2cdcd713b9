package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/opd-ai/kaleidoscope/frame"
)

// RawSize carries the dimensions of a raw I420 stream, which has no header.
type RawSize struct {
	Width  int
	Height int
}

// ReadRaw reads exactly one packed I420 frame.
func ReadRaw(r io.Reader, size RawSize) (*frame.Frame, error) {
	if size.Width == 0 || size.Height == 0 {
		return nil, ErrRawSizeRequired
	}
	f, err := frame.New(size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, f.Data); err != nil {
		return nil, fmt.Errorf("raw frame read failed: %w", err)
	}
	return f, nil
}

// WriteRaw writes the packed I420 bytes of f.
func WriteRaw(w io.Writer, f *frame.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if _, err := w.Write(f.Data[:f.Size()]); err != nil {
		return fmt.Errorf("raw frame write failed: %w", err)
	}
	return nil
}

// ReadRawZstd reads one zstd-compressed packed I420 frame.
func ReadRawZstd(r io.Reader, size RawSize) (*frame.Frame, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	return ReadRaw(dec, size)
}

// WriteRawZstd writes f as a zstd-compressed packed I420 frame.
func WriteRawZstd(w io.Writer, f *frame.Frame) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err := WriteRaw(enc, f); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd flush failed: %w", err)
	}
	return nil
}
