// Package codec reads and writes I420 frames.
//
// Supported files, chosen by extension:
//
//	.jpg, .jpeg            JPEG (image/jpeg)
//	.yuv, .i420            raw packed I420, dimensions supplied by the caller
//	.yuv.zst, .i420.zst    raw packed I420 compressed with zstd
//
// Decoded JPEGs that are already 4:2:0 are copied plane by plane. Any other
// layout (grayscale, 4:4:4, 4:2:2, CMYK) is drawn onto an RGBA canvas and
// converted, averaging chroma over each 2x2 block. Odd widths or heights lose
// their last column or row.
package codec
