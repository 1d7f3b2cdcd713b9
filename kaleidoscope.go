package kaleidoscope

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/kaleidoscope/frame"
)

// halfBaseEpsilon keeps h*tan(angle) from flooring one pixel short when the
// tangent is a hair below an exact value, e.g. tan(pi/4).
const halfBaseEpsilon = 1e-9

// Stats summarises the writes issued by one transform call.
type Stats struct {
	// WedgePixels is the number of source pixels placed into the wedge.
	WedgePixels int
	// Writes counts pixel writes that landed inside the frame, wedge
	// placements included.
	Writes int
	// Clipped counts rotated or smoothing writes skipped because they fell
	// outside the frame.
	Clipped int
}

// Kaleidoscope applies the effect to raw I420 buffers with DefaultDimFactor
// and SmoothRun. in and out may be the same slice; in is never modified
// unless it aliases out.
func Kaleidoscope(in []byte, width, height int, out []byte, sectors int) error {
	src, err := frame.Wrap(in, width, height)
	if err != nil {
		return fmt.Errorf("invalid input frame: %w", err)
	}
	dst, err := frame.Wrap(out, width, height)
	if err != nil {
		return fmt.Errorf("invalid output frame: %w", err)
	}

	p := DefaultParams()
	p.Sectors = sectors
	_, err = Apply(src, dst, p)
	return err
}

// Apply dims in into out and overlays the rotated wedge.
//
// Pipeline:
//  1. Validate parameters and frames
//  2. Snapshot in, then copy it into out
//  3. Dim the luma plane of out
//  4. Walk the source triangle bottom-up, placing each sampled pixel into
//     the half-size wedge below the centre and cloning it into every other
//     sector
//
// out may share its buffer with in. Nothing is written when an error is
// returned.
func Apply(in, out *frame.Frame, p Params) (Stats, error) {
	if err := validate(in, out, p); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Apply",
			"error":    err.Error(),
		}).Error("Kaleidoscope parameter validation failed")
		return Stats{}, err
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Apply",
		"width":      in.Width,
		"height":     in.Height,
		"sectors":    p.Sectors,
		"dim_factor": p.DimFactor,
		"smoothing":  p.Smoothing.String(),
		"in_place":   in.SharesBuffer(out),
	}).Debug("Applying kaleidoscope")

	// The wedge is read from positions the same pass overwrites, so reads
	// always come from a private copy.
	snapshot := in.Clone()
	if err := out.CopyFrom(snapshot); err != nil {
		return Stats{}, err
	}

	dimLuma(out.Y(), p.DimFactor)

	t := newTransform(snapshot, out, p)
	t.buildWedge()

	logrus.WithFields(logrus.Fields{
		"function":     "Apply",
		"wedge_pixels": t.stats.WedgePixels,
		"writes":       t.stats.Writes,
		"clipped":      t.stats.Clipped,
	}).Debug("Kaleidoscope applied")

	return t.stats, nil
}

func validate(in, out *frame.Frame, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid input frame: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("invalid output frame: %w", err)
	}
	if in.Width != out.Width || in.Height != out.Height {
		return fmt.Errorf("%w: input %dx%d, output %dx%d", frame.ErrDimensionMismatch,
			in.Width, in.Height, out.Width, out.Height)
	}
	return nil
}

// transform holds the per-call state of one Apply.
type transform struct {
	src     *frame.Frame
	dst     *frame.Frame
	sectors int
	fi      float64 // sector angle
	midH    int
	midW    int
	offsets []offset
	stats   Stats
}

func newTransform(src, dst *frame.Frame, p Params) *transform {
	return &transform{
		src:     src,
		dst:     dst,
		sectors: p.Sectors,
		fi:      2 * math.Pi / float64(p.Sectors),
		midH:    src.Height / 2,
		midW:    src.Width / 2,
		offsets: smoothingOffsets[p.Smoothing],
	}
}

// buildWedge samples every second row and column of the isosceles triangle
// whose apex is the top centre of the source and whose half angle is half
// the sector angle. Sampled pixels land at half their distance from the
// centre column, below the centre row.
func (t *transform) buildWedge() {
	tanHalf := math.Tan(t.fi / 2)

	for h := t.src.Height - 1; h >= 0; h -= 2 {
		halfBase := t.halfBase(h, tanHalf)
		hDst := t.midH + h/2

		first, last := t.midW-halfBase, t.midW+halfBase
		if first < 0 {
			first += (1 - first) / 2 * 2 // keep column parity
		}
		if last > t.src.Width-1 {
			last = t.src.Width - 1
		}

		for w := first; w <= last; w += 2 {
			px, _ := t.src.At(h, w)
			wDst := t.midW + (w-t.midW)/2

			t.put(hDst, wDst, px)
			t.stats.WedgePixels++
			t.clone(hDst, wDst, px)
		}
	}
}

// halfBase returns floor(h*tan(angle/2)) clamped to [0, width].
func (t *transform) halfBase(h int, tanHalf float64) int {
	v := float64(h)*tanHalf + halfBaseEpsilon
	if v < 0 {
		return 0
	}
	if v > float64(t.src.Width) {
		return t.src.Width
	}
	return int(math.Floor(v))
}

// put writes one pixel, clipping outside the frame.
func (t *transform) put(h, w int, px frame.Pixel) {
	if t.dst.Set(h, w, px) {
		t.stats.Writes++
	} else {
		t.stats.Clipped++
	}
}
