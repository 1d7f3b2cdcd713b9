// Package frame provides the packed I420 frame buffer used throughout the
// kaleidoscope pipeline.
//
// # Layout
//
// A frame is a single byte slice of width*height*3/2 bytes:
//
//	[ Y: width*height ][ U: (width/2)*(height/2) ][ V: (width/2)*(height/2) ]
//
// Luma is addressed at row*width+col. Both chroma planes share the offset
// (row/2)*(width/2)+(col/2) and differ only by their plane base:
//
//	f, err := frame.New(640, 480)
//	if err != nil {
//	    return err
//	}
//	y := f.Data[f.LumaOffset(10, 20)]
//	u := f.Data[f.UBase()+f.ChromaOffset(10, 20)]
//
// Width and height must be even and positive.
//
// # Bounds
//
// The offset helpers are pure arithmetic and do not validate their input.
// At, Set and Contains check (row, col) against the frame; Set is a no-op
// outside the frame and reports whether it wrote.
//
// # Scaling
//
// Scale resizes a frame plane by plane with bilinear interpolation and
// FitWithin computes even target dimensions for a size cap.
package frame
