package codec

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/opd-ai/kaleidoscope/frame"
)

// FromImage converts any image to an I420 frame, cropping odd dimensions.
func FromImage(img image.Image) (*frame.Frame, error) {
	b := img.Bounds()
	width, height := b.Dx()&^1, b.Dy()&^1
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}

	f, err := frame.New(width, height)
	if err != nil {
		return nil, err
	}

	if ycc, ok := img.(*image.YCbCr); ok && ycc.SubsampleRatio == image.YCbCrSubsampleRatio420 {
		copyYCbCr420(f, ycc)
		return f, nil
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(canvas, canvas.Bounds(), img, b.Min, xdraw.Src)
	rgbaToI420(f, canvas)
	return f, nil
}

// copyYCbCr420 copies planes row by row; decoder strides are usually padded
// to the block size.
func copyYCbCr420(f *frame.Frame, src *image.YCbCr) {
	minX, minY := src.Rect.Min.X, src.Rect.Min.Y

	y := f.Y()
	for row := 0; row < f.Height; row++ {
		off := src.YOffset(minX, minY+row)
		copy(y[row*f.Width:(row+1)*f.Width], src.Y[off:off+f.Width])
	}

	cw := f.Width / 2
	u, v := f.U(), f.V()
	for row := 0; row < f.Height/2; row++ {
		off := src.COffset(minX, minY+2*row)
		copy(u[row*cw:(row+1)*cw], src.Cb[off:off+cw])
		copy(v[row*cw:(row+1)*cw], src.Cr[off:off+cw])
	}
}

// rgbaToI420 converts with full-resolution luma and 2x2-averaged chroma.
func rgbaToI420(f *frame.Frame, src *image.RGBA) {
	cw := f.Width / 2
	y, u, v := f.Y(), f.U(), f.V()

	for row := 0; row < f.Height; row += 2 {
		for col := 0; col < f.Width; col += 2 {
			var cbSum, crSum int
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					c := src.RGBAAt(col+dx, row+dy)
					yy, cb, cr := color.RGBToYCbCr(c.R, c.G, c.B)
					y[(row+dy)*f.Width+col+dx] = yy
					cbSum += int(cb)
					crSum += int(cr)
				}
			}
			ci := (row/2)*cw + col/2
			u[ci] = uint8((cbSum + 2) / 4)
			v[ci] = uint8((crSum + 2) / 4)
		}
	}
}
