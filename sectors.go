package kaleidoscope

import (
	"math"

	"github.com/opd-ai/kaleidoscope/frame"
)

// sectorStep maps the clone index s (1..sectors-1) to a signed sector
// offset alternating in direction: +1, -1, +2, -2, ...
// Over 1..n-1 every other sector is visited exactly once.
func sectorStep(s int) int {
	if s%2 != 0 {
		return (s + 1) / 2
	}
	return -(s / 2)
}

// clone rotates the wedge pixel at (h, w) around the centre into every
// other sector. Sector 0 is the wedge itself and is left alone.
func (t *transform) clone(h, w int, px frame.Pixel) {
	hr := float64(h - t.midH)
	wr := float64(w - t.midW)

	r := math.Sqrt(wr*wr + hr*hr)
	theta := math.Atan2(hr, wr)

	for s := 1; s < t.sectors; s++ {
		sin, cos := math.Sincos(theta + float64(sectorStep(s))*t.fi)
		hDst := int(math.Round(r*sin)) + t.midH
		wDst := int(math.Round(r*cos)) + t.midW

		for _, o := range t.offsets {
			t.put(hDst+o.dh, wDst+o.dw, px)
		}
	}
}
