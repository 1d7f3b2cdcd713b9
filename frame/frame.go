package frame

import (
	"fmt"
	"image"

	"github.com/opd-ai/kaleidoscope/limits"
)

// Pixel is one luma sample together with the chroma pair covering it.
type Pixel struct {
	Y, U, V uint8
}

// Frame is a packed I420 image.
//
// Data holds at least Size() bytes; bytes past Size() are never touched.
type Frame struct {
	Width  int
	Height int
	Data   []byte
}

// Size returns the packed I420 size for the given dimensions.
func Size(width, height int) int {
	return width*height + 2*(width/2)*(height/2)
}

// ValidateDimensions checks that width and height describe a valid I420 frame.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrOddDimensions, width, height)
	}
	if err := limits.ValidateDimensions(width, height); err != nil {
		return err
	}
	return limits.ValidateFrameSize(Size(width, height))
}

// New allocates a zeroed frame.
func New(width, height int) (*Frame, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Frame{
		Width:  width,
		Height: height,
		Data:   make([]byte, Size(width, height)),
	}, nil
}

// Wrap creates a frame over an existing buffer without copying it.
// The buffer may be longer than required.
func Wrap(data []byte, width, height int) (*Frame, error) {
	f := &Frame{Width: width, Height: height, Data: data}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks dimensions and buffer length.
func (f *Frame) Validate() error {
	if f == nil {
		return ErrNilFrame
	}
	if err := ValidateDimensions(f.Width, f.Height); err != nil {
		return err
	}
	if len(f.Data) < f.Size() {
		return fmt.Errorf("%w: got %d, expected %d", ErrBufferTooSmall, len(f.Data), f.Size())
	}
	return nil
}

// Size returns the number of bytes the frame occupies in Data.
func (f *Frame) Size() int {
	return Size(f.Width, f.Height)
}

// UBase is the offset of the U plane.
func (f *Frame) UBase() int {
	return f.Width * f.Height
}

// VBase is the offset of the V plane.
func (f *Frame) VBase() int {
	return f.UBase() + (f.Width/2)*(f.Height/2)
}

// LumaOffset returns the Y plane offset of (row, col). No bounds checking.
func (f *Frame) LumaOffset(row, col int) int {
	return row*f.Width + col
}

// ChromaOffset returns the offset of (row, col) inside either chroma plane.
// No bounds checking.
func (f *Frame) ChromaOffset(row, col int) int {
	return (row/2)*(f.Width/2) + (col / 2)
}

// Y returns the luma plane.
func (f *Frame) Y() []byte {
	return f.Data[:f.UBase()]
}

// U returns the U chroma plane.
func (f *Frame) U() []byte {
	return f.Data[f.UBase():f.VBase()]
}

// V returns the V chroma plane.
func (f *Frame) V() []byte {
	return f.Data[f.VBase():f.Size()]
}

// Contains reports whether (row, col) lies inside the frame.
func (f *Frame) Contains(row, col int) bool {
	return row >= 0 && row < f.Height && col >= 0 && col < f.Width
}

// At returns the pixel at (row, col). ok is false outside the frame.
func (f *Frame) At(row, col int) (p Pixel, ok bool) {
	if !f.Contains(row, col) {
		return Pixel{}, false
	}
	c := f.ChromaOffset(row, col)
	return Pixel{
		Y: f.Data[f.LumaOffset(row, col)],
		U: f.Data[f.UBase()+c],
		V: f.Data[f.VBase()+c],
	}, true
}

// Set writes p at (row, col). Writes outside the frame are skipped and
// reported by a false return.
func (f *Frame) Set(row, col int, p Pixel) bool {
	if !f.Contains(row, col) {
		return false
	}
	c := f.ChromaOffset(row, col)
	f.Data[f.LumaOffset(row, col)] = p.Y
	f.Data[f.UBase()+c] = p.U
	f.Data[f.VBase()+c] = p.V
	return true
}

// Clone returns a deep copy backed by a new buffer of exactly Size() bytes.
func (f *Frame) Clone() *Frame {
	data := make([]byte, f.Size())
	copy(data, f.Data[:f.Size()])
	return &Frame{
		Width:  f.Width,
		Height: f.Height,
		Data:   data,
	}
}

// CopyFrom overwrites f with the contents of src. Both frames must share
// dimensions. Overlapping buffers are handled by copy's memmove semantics.
func (f *Frame) CopyFrom(src *Frame) error {
	if src == nil {
		return ErrNilFrame
	}
	if f.Width != src.Width || f.Height != src.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			f.Width, f.Height, src.Width, src.Height)
	}
	copy(f.Data[:f.Size()], src.Data[:src.Size()])
	return nil
}

// SharesBuffer reports whether f and other use the same backing memory
// for their first byte.
func (f *Frame) SharesBuffer(other *Frame) bool {
	if f == nil || other == nil || len(f.Data) == 0 || len(other.Data) == 0 {
		return false
	}
	return &f.Data[0] == &other.Data[0]
}

// YCbCr returns a 4:2:0 image view over the frame's planes. The view
// shares memory with the frame.
func (f *Frame) YCbCr() *image.YCbCr {
	return &image.YCbCr{
		Y:              f.Y(),
		Cb:             f.U(),
		Cr:             f.V(),
		YStride:        f.Width,
		CStride:        f.Width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, f.Width, f.Height),
	}
}
