// Package kaleidoscope implements a radial kaleidoscope effect for planar
// YUV 4:2:0 (I420) frames.
//
// The effect dims the source image, samples a wedge-shaped slice of it at
// half resolution and replicates that wedge by rotation around the frame
// centre, giving the output N-fold radial symmetry.
//
// # Getting Started
//
// Apply the effect between two frames of the same size:
//
//	in, err := frame.Wrap(buf, width, height)
//	if err != nil {
//	    return err
//	}
//	out, err := frame.New(width, height)
//	if err != nil {
//	    return err
//	}
//
//	stats, err := kaleidoscope.Apply(in, out, kaleidoscope.Params{
//	    Sectors:   6,
//	    DimFactor: 40,
//	    Smoothing: kaleidoscope.SmoothRun,
//	})
//
// Or on raw buffers, with the default dim factor and smoothing:
//
//	err := kaleidoscope.Kaleidoscope(in, width, height, out, 10)
//
// # Pipeline
//
// Each call runs these steps in order:
//
//   - Snapshot: the input is copied into a private buffer used for every
//     read, then copied into the output. Passing the same frame as input and
//     output is therefore safe.
//   - Dim: DimFactor is subtracted from every luma sample of the output with
//     uint8 wraparound. Chroma is untouched.
//   - Wedge: rows of the source are visited bottom-up, every second row.
//     For row h the triangle spans h*tan(pi/Sectors) columns either side of
//     the centre column, sampled every second column. Each sample lands at
//     (height/2 + h/2, width/2 + (w-width/2)/2), a half-size wedge hanging
//     below the centre.
//   - Clone: each placed pixel is converted to polar coordinates around the
//     centre and rotated into the remaining Sectors-1 sectors, alternating
//     direction (+1, -1, +2, -2, ... sector widths).
//
// # Smoothing
//
// Rotating integer coordinates leaves small gaps, so every rotated write is
// accompanied by a fixed neighbour pattern:
//
//   - [SmoothRun]: the pixel, (-1,-1) and (0,-2). The default.
//   - [SmoothCross]: the pixel and its four axis neighbours.
//   - [SmoothNone]: the rotated pixel only.
//
// Overlapping writes resolve as last write wins.
//
// # Bounds
//
// Every write goes through frame.Frame.Set and is skipped when it falls
// outside the frame. [Stats] reports how many writes landed and how many
// were clipped.
//
// # Errors
//
// Invalid parameters or frames are reported before anything is written:
//
//   - [ErrInvalidSectors], [ErrInvalidDimFactor], [ErrInvalidSmoothing]
//   - frame.ErrOddDimensions, frame.ErrBufferTooSmall,
//     frame.ErrDimensionMismatch and the other frame sentinels
//   - limits.ErrTooManySectors, limits.ErrFrameTooLarge
//
// All are wrapped with context and can be tested with errors.Is.
package kaleidoscope
