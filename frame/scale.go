package frame

import (
	"fmt"
)

// Scaler provides I420 frame scaling.
//
// Implements plane-by-plane bilinear interpolation. Chroma planes are
// scaled at half resolution so the result keeps the 4:2:0 layout.
type Scaler struct {
	// No fields needed for stateless scaling operations
}

// NewScaler creates a new frame scaler.
func NewScaler() *Scaler {
	return &Scaler{}
}

// Scale resizes an I420 frame to the specified dimensions.
//
// Parameters:
//   - src: Source frame to scale
//   - targetWidth: Target width (must be even and positive)
//   - targetHeight: Target height (must be even and positive)
//
// Returns:
//   - *Frame: Scaled frame, always backed by a new buffer
//   - error: Any error that occurred during scaling
func (s *Scaler) Scale(src *Frame, targetWidth, targetHeight int) (*Frame, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source frame: %w", err)
	}

	result, err := New(targetWidth, targetHeight)
	if err != nil {
		return nil, fmt.Errorf("invalid target dimensions: %w", err)
	}

	// If dimensions are the same, return a copy
	if !s.IsScalingRequired(src.Width, src.Height, targetWidth, targetHeight) {
		copy(result.Data, src.Data[:src.Size()])
		return result, nil
	}

	s.scalePlane(src.Y(), src.Width, src.Height, result.Y(), targetWidth, targetHeight)

	srcUVWidth, srcUVHeight := src.Width/2, src.Height/2
	dstUVWidth, dstUVHeight := targetWidth/2, targetHeight/2
	s.scalePlane(src.U(), srcUVWidth, srcUVHeight, result.U(), dstUVWidth, dstUVHeight)
	s.scalePlane(src.V(), srcUVWidth, srcUVHeight, result.V(), dstUVWidth, dstUVHeight)

	return result, nil
}

// scalePlane scales a single tightly packed plane using bilinear interpolation.
func (s *Scaler) scalePlane(src []byte, srcWidth, srcHeight int, dst []byte, dstWidth, dstHeight int) {
	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for y := 0; y < dstHeight; y++ {
		srcY := float64(y) * yRatio
		y1 := int(srcY)
		y2 := y1 + 1
		if y2 >= srcHeight {
			y2 = srcHeight - 1
		}
		fy := srcY - float64(y1)

		for x := 0; x < dstWidth; x++ {
			srcX := float64(x) * xRatio
			x1 := int(srcX)
			x2 := x1 + 1
			if x2 >= srcWidth {
				x2 = srcWidth - 1
			}
			fx := srcX - float64(x1)

			p11 := float64(src[y1*srcWidth+x1])
			p12 := float64(src[y1*srcWidth+x2])
			p21 := float64(src[y2*srcWidth+x1])
			p22 := float64(src[y2*srcWidth+x2])

			top := p11*(1-fx) + p12*fx
			bottom := p21*(1-fx) + p22*fx
			pixel := top*(1-fy) + bottom*fy

			dst[y*dstWidth+x] = byte(pixel + 0.5) // Round to nearest
		}
	}
}

// GetScaleFactors calculates the scaling factors for given dimensions.
func (s *Scaler) GetScaleFactors(srcWidth, srcHeight, dstWidth, dstHeight int) (xFactor, yFactor float64) {
	xFactor = float64(dstWidth) / float64(srcWidth)
	yFactor = float64(dstHeight) / float64(srcHeight)
	return
}

// IsScalingRequired checks if scaling is needed for given dimensions.
func (s *Scaler) IsScalingRequired(srcWidth, srcHeight, dstWidth, dstHeight int) bool {
	return srcWidth != dstWidth || srcHeight != dstHeight
}

// FitWithin returns the largest even dimensions no greater than maxDimension
// on either axis that preserve the aspect ratio of width x height.
// A non-positive maxDimension, or a frame already inside the cap, returns
// the input unchanged.
func FitWithin(width, height, maxDimension int) (int, int) {
	if maxDimension <= 0 || (width <= maxDimension && height <= maxDimension) {
		return width, height
	}

	longest := width
	if height > longest {
		longest = height
	}
	ratio := float64(maxDimension) / float64(longest)

	w := int(float64(width)*ratio) &^ 1
	h := int(float64(height)*ratio) &^ 1
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return w, h
}
