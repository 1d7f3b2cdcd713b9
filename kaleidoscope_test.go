package kaleidoscope

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/kaleidoscope/frame"
	"github.com/opd-ai/kaleidoscope/limits"
)

// createTestFrame builds a frame with constant luma and neutral chroma.
func createTestFrame(t testing.TB, width, height int, luma byte) *frame.Frame {
	t.Helper()
	f, err := frame.New(width, height)
	require.NoError(t, err)

	for i := range f.Y() {
		f.Y()[i] = luma
	}
	for i := range f.U() {
		f.U()[i] = 128
		f.V()[i] = 128
	}
	return f
}

// createGradientFrame builds a frame whose luma depends on position.
func createGradientFrame(t testing.TB, width, height int) *frame.Frame {
	t.Helper()
	f := createTestFrame(t, width, height, 0)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			f.Data[f.LumaOffset(row, col)] = byte(row*7 + col*3)
		}
	}
	for i := range f.U() {
		f.U()[i] = byte(i)
		f.V()[i] = byte(255 - i%256)
	}
	return f
}

func createRandomFrame(t testing.TB, rng *rand.Rand, width, height int) *frame.Frame {
	t.Helper()
	f, err := frame.New(width, height)
	require.NoError(t, err)
	rng.Read(f.Data)
	return f
}

func TestApply_SixSectorScenario(t *testing.T) {
	const size = 64
	in := createTestFrame(t, size, size, 200)
	out, err := frame.New(size, size)
	require.NoError(t, err)

	stats, err := Apply(in, out, Params{Sectors: 6, DimFactor: 40, Smoothing: SmoothRun})
	require.NoError(t, err)
	assert.Greater(t, stats.WedgePixels, 0)
	assert.Greater(t, stats.Writes, stats.WedgePixels)

	// Sizes are untouched
	assert.Len(t, out.Data, len(in.Data))
	assert.Len(t, out.U(), (size/2)*(size/2))
	assert.Len(t, out.V(), (size/2)*(size/2))

	// Corners lie outside every sector and only see the dim pass
	for _, rc := range [][2]int{{0, 0}, {0, size - 1}, {size - 1, 0}, {size - 1, size - 1}} {
		px, ok := out.At(rc[0], rc[1])
		require.True(t, ok)
		assert.Equal(t, uint8(160), px.Y, "corner %v", rc)
	}

	// Six rays at radius 20 carry the undimmed wedge value
	fi := 2 * math.Pi / 6
	for k := 0; k < 6; k++ {
		theta := math.Pi/2 + float64(k)*fi
		row := int(math.Round(20*math.Sin(theta))) + size/2
		col := int(math.Round(20*math.Cos(theta))) + size/2

		px, ok := out.At(row, col)
		require.True(t, ok)
		assert.Equal(t, uint8(200), px.Y, "ray %d at (%d, %d)", k, row, col)
		assert.Equal(t, uint8(128), px.U)
		assert.Equal(t, uint8(128), px.V)
	}
}

func TestApply_SingleSectorWithoutDimIsCopyOutsideWedge(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := createRandomFrame(t, rng, 48, 32)
	out, err := frame.New(48, 32)
	require.NoError(t, err)

	stats, err := Apply(in, out, Params{Sectors: 1, DimFactor: 0, Smoothing: SmoothRun})
	require.NoError(t, err)

	midH, midW := in.Height/2, in.Width/2
	assert.Equal(t, in.Height/2, stats.WedgePixels)
	assert.Equal(t, stats.WedgePixels, stats.Writes)
	assert.Zero(t, stats.Clipped)

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			if col == midW {
				continue
			}
			assert.Equal(t, in.Data[in.LumaOffset(row, col)], out.Data[out.LumaOffset(row, col)],
				"luma (%d, %d)", row, col)
			if col/2 != midW/2 {
				c := in.ChromaOffset(row, col)
				assert.Equal(t, in.Data[in.UBase()+c], out.Data[out.UBase()+c])
				assert.Equal(t, in.Data[in.VBase()+c], out.Data[out.VBase()+c])
			}
		}
	}

	// The lower half of the centre column holds every second source row
	for j := 0; j < in.Height/2; j++ {
		want, _ := in.At(2*j+1, midW)
		got, _ := out.At(midH+j, midW)
		assert.Equal(t, want.Y, got.Y, "row %d", midH+j)
	}
}

func TestApply_FourSectorRadialSymmetry(t *testing.T) {
	const size = 64
	in := createGradientFrame(t, size, size)
	out, err := frame.New(size, size)
	require.NoError(t, err)

	_, err = Apply(in, out, Params{Sectors: 4, DimFactor: 40, Smoothing: SmoothNone})
	require.NoError(t, err)

	luma := func(hr, wr int) byte {
		px, ok := out.At(hr+size/2, wr+size/2)
		require.True(t, ok)
		return px.Y
	}

	// Interior of the base wedge: h' > 0 and |w'| < h'
	for hr := 2; hr <= 14; hr++ {
		for wr := -(hr - 1); wr <= hr-1; wr++ {
			base := luma(hr, wr)
			assert.Equal(t, base, luma(wr, -hr), "+90 at (%d, %d)", hr, wr)
			assert.Equal(t, base, luma(-wr, hr), "-90 at (%d, %d)", hr, wr)
			assert.Equal(t, base, luma(-hr, -wr), "180 at (%d, %d)", hr, wr)
		}
	}
}

func TestApply_WedgeSamplesUndimmedSource(t *testing.T) {
	in := createGradientFrame(t, 64, 64)
	out, err := frame.New(64, 64)
	require.NoError(t, err)

	_, err = Apply(in, out, Params{Sectors: 4, DimFactor: 40, Smoothing: SmoothNone})
	require.NoError(t, err)

	// Source column 33 is the last to land on the centre column, so it wins
	for j := 1; j < 16; j++ {
		want, _ := in.At(2*j+1, 33)
		got, _ := out.At(32+j, 32)
		assert.Equal(t, want.Y, got.Y, "row %d", 32+j)
	}
}

func TestApply_InPlaceMatchesOutOfPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, smoothing := range []Smoothing{SmoothRun, SmoothCross, SmoothNone} {
		for _, sectors := range []int{1, 2, 3, 6, 10, 17} {
			in := createRandomFrame(t, rng, 64, 48)
			p := Params{Sectors: sectors, DimFactor: 40, Smoothing: smoothing}

			separate, err := frame.New(in.Width, in.Height)
			require.NoError(t, err)
			require.NoError(t, separate.CopyFrom(in))
			_, err = Apply(in.Clone(), separate, p)
			require.NoError(t, err)

			aliased := in.Clone()
			_, err = Apply(aliased, aliased, p)
			require.NoError(t, err)

			assert.Equal(t, separate.Data, aliased.Data, "smoothing %s sectors %d", smoothing, sectors)
		}
	}
}

func TestApply_InputUnmodified(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := createRandomFrame(t, rng, 32, 32)
	original := append([]byte(nil), in.Data...)

	out, err := frame.New(32, 32)
	require.NoError(t, err)
	_, err = Apply(in, out, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, original, in.Data)
}

func TestApply_NoWritesOutsideBuffer(t *testing.T) {
	const guardSize = 64
	rng := rand.New(rand.NewSource(99))
	smoothings := []Smoothing{SmoothRun, SmoothCross, SmoothNone}

	for i := 0; i < 200; i++ {
		width := 2 * (1 + rng.Intn(20))
		height := 2 * (1 + rng.Intn(20))
		sectors := 1 + rng.Intn(300)
		smoothing := smoothings[rng.Intn(len(smoothings))]

		in := createRandomFrame(t, rng, width, height)

		buf := make([]byte, frame.Size(width, height)+guardSize)
		for j := range buf {
			buf[j] = 0xAB
		}
		out, err := frame.Wrap(buf, width, height)
		require.NoError(t, err)

		require.NotPanics(t, func() {
			_, err = Apply(in, out, Params{Sectors: sectors, DimFactor: rng.Intn(256), Smoothing: smoothing})
		}, "%dx%d sectors %d", width, height, sectors)
		require.NoError(t, err)

		for j, b := range buf[frame.Size(width, height):] {
			require.Equal(t, byte(0xAB), b, "guard byte %d for %dx%d sectors %d", j, width, height, sectors)
		}
	}
}

func TestApply_ClipsLargeRadii(t *testing.T) {
	// A tall, narrow frame: rotating the deep wedge by 90 degrees leaves it
	in := createTestFrame(t, 16, 64, 100)
	out, err := frame.New(16, 64)
	require.NoError(t, err)

	stats, err := Apply(in, out, Params{Sectors: 4, DimFactor: 0, Smoothing: SmoothNone})
	require.NoError(t, err)
	assert.Greater(t, stats.Clipped, 0)
}

func TestApply_Validation(t *testing.T) {
	good := createTestFrame(t, 16, 16, 10)

	tests := []struct {
		name    string
		in, out *frame.Frame
		params  Params
		wantErr error
	}{
		{"zero sectors", good, good.Clone(), Params{Sectors: 0}, ErrInvalidSectors},
		{"negative sectors", good, good.Clone(), Params{Sectors: -3}, ErrInvalidSectors},
		{"too many sectors", good, good.Clone(), Params{Sectors: limits.MaxSectors + 1}, limits.ErrTooManySectors},
		{"negative dim", good, good.Clone(), Params{Sectors: 4, DimFactor: -1}, ErrInvalidDimFactor},
		{"dim above byte", good, good.Clone(), Params{Sectors: 4, DimFactor: 256}, ErrInvalidDimFactor},
		{"unknown smoothing", good, good.Clone(), Params{Sectors: 4, Smoothing: Smoothing(99)}, ErrInvalidSmoothing},
		{"nil input", nil, good.Clone(), DefaultParams(), frame.ErrNilFrame},
		{"odd input", &frame.Frame{Width: 15, Height: 16, Data: make([]byte, 1024)}, good.Clone(), DefaultParams(), frame.ErrOddDimensions},
		{"short output", good, &frame.Frame{Width: 16, Height: 16, Data: make([]byte, 100)}, DefaultParams(), frame.ErrBufferTooSmall},
		{"mismatch", good, createTestFrame(t, 32, 16, 0), DefaultParams(), frame.ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before []byte
			if tt.out != nil {
				before = append([]byte(nil), tt.out.Data...)
			}

			_, err := Apply(tt.in, tt.out, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.out != nil {
				assert.Equal(t, before, tt.out.Data, "output must not be written on error")
			}
		})
	}
}

func TestKaleidoscope_RawBuffers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	width, height := 40, 30
	buf := make([]byte, frame.Size(width, height))
	rng.Read(buf)
	original := append([]byte(nil), buf...)

	out := make([]byte, len(buf))
	require.NoError(t, Kaleidoscope(buf, width, height, out, 10))
	assert.Equal(t, original, buf, "input must be left unmodified")

	// Same slice for input and output
	require.NoError(t, Kaleidoscope(buf, width, height, buf, 10))
	assert.Equal(t, out, buf)

	// Dimming uses the default factor
	corner := original[0] - DefaultDimFactor
	assert.Equal(t, corner, out[0])
}

func TestKaleidoscope_Errors(t *testing.T) {
	buf := make([]byte, frame.Size(16, 16))

	assert.ErrorIs(t, Kaleidoscope(buf, 15, 16, buf, 4), frame.ErrOddDimensions)
	assert.ErrorIs(t, Kaleidoscope(buf[:10], 16, 16, buf, 4), frame.ErrBufferTooSmall)
	assert.ErrorIs(t, Kaleidoscope(buf, 16, 16, buf[:10], 4), frame.ErrBufferTooSmall)
	assert.ErrorIs(t, Kaleidoscope(buf, 16, 16, buf, 0), ErrInvalidSectors)
}

func BenchmarkApply(b *testing.B) {
	in := createGradientFrame(b, 640, 480)
	out, err := frame.New(640, 480)
	require.NoError(b, err)
	p := DefaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Apply(in, out, p); err != nil {
			b.Fatal(err)
		}
	}
}
