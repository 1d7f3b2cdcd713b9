package kaleidoscope

// dimLuma subtracts factor from every luma sample with uint8 wraparound.
// No clamping.
func dimLuma(y []byte, factor int) {
	d := byte(factor)
	if d == 0 {
		return
	}
	for i := range y {
		y[i] -= d
	}
}
