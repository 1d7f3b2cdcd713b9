package codec

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/kaleidoscope/frame"
)

// Format identifies a frame file encoding.
type Format int

const (
	// FormatJPEG is a baseline JPEG file.
	FormatJPEG Format = iota
	// FormatRaw is a headerless packed I420 file.
	FormatRaw
	// FormatRawZstd is a zstd-compressed packed I420 file.
	FormatRawZstd
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatRaw:
		return "raw"
	case FormatRawZstd:
		return "raw+zstd"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))

	compressed := strings.HasSuffix(name, ".zst")
	if compressed {
		name = strings.TrimSuffix(name, ".zst")
	}

	switch filepath.Ext(name) {
	case ".jpg", ".jpeg":
		if !compressed {
			return FormatJPEG, nil
		}
	case ".yuv", ".i420":
		if compressed {
			return FormatRawZstd, nil
		}
		return FormatRaw, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ReadFile decodes the frame stored at path. size is only used for raw formats.
func ReadFile(path string, size RawSize) (*frame.Frame, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)

	var f *frame.Frame
	switch format {
	case FormatJPEG:
		f, err = DecodeJPEG(r)
	case FormatRaw:
		f, err = ReadRaw(r, size)
	case FormatRawZstd:
		f, err = ReadRawZstd(r, size)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ReadFile",
			"path":     path,
			"format":   format.String(),
			"error":    err.Error(),
		}).Error("Failed to decode frame")
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "ReadFile",
		"path":     path,
		"format":   format.String(),
		"width":    f.Width,
		"height":   f.Height,
	}).Debug("Frame decoded")

	return f, nil
}

// WriteFile encodes f to path. quality is only used for JPEG.
func WriteFile(path string, f *frame.Frame, quality int) (err error) {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	switch format {
	case FormatJPEG:
		err = EncodeJPEG(w, f, quality)
	case FormatRaw:
		err = WriteRaw(w, f)
	case FormatRawZstd:
		err = WriteRawZstd(w, f)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "WriteFile",
			"path":     path,
			"format":   format.String(),
			"error":    err.Error(),
		}).Error("Failed to encode frame")
		return fmt.Errorf("write %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "WriteFile",
		"path":     path,
		"format":   format.String(),
		"width":    f.Width,
		"height":   f.Height,
	}).Debug("Frame encoded")

	return nil
}
