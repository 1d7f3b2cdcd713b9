// Package limits provides centralized size constants and validation functions
// for frames and transform parameters.
//
// # Limits
//
//   - MaxDimension (16384): the largest accepted frame width or height.
//
//   - MaxFrameBytes (256MB): the largest packed I420 frame. The transform
//     always takes a private snapshot of its input, so this bounds the extra
//     allocation made per call.
//
//   - MaxSectors (4096): the largest sector count. Each wedge pixel is cloned
//     once per sector, so this bounds the inner loop.
//
// # Validation Functions
//
//	if err := limits.ValidateDimensions(width, height); err != nil {
//	    // errors.Is(err, limits.ErrDimensionTooLarge)
//	}
//
//	if err := limits.ValidateFrameSize(size); err != nil {
//	    // errors.Is(err, limits.ErrFrameTooLarge)
//	}
//
// All errors wrap a package sentinel and carry the offending value and the
// limit in their message.
package limits
