package compositor

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func pattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestSelfCopyReadsSnapshot(t *testing.T) {
	tests := []struct {
		name string
		src  image.Rectangle
		dp   image.Point
	}{
		{"strip shifted right", image.Rect(0, 4, 32, 6), image.Pt(3, 4)},
		{"strip shifted left", image.Rect(0, 4, 32, 6), image.Pt(-5, 4)},
		{"tile overlapping itself", image.Rect(4, 4, 14, 14), image.Pt(7, 9)},
		{"tile onto itself", image.Rect(10, 10, 20, 20), image.Pt(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := pattern(32, 24)
			before := pattern(32, 24)

			SelfCopy(img, tt.src, tt.dp)

			want := pattern(32, 24)
			for y := tt.src.Min.Y; y < tt.src.Max.Y; y++ {
				for x := tt.src.Min.X; x < tt.src.Max.X; x++ {
					p := image.Pt(x, y).Sub(tt.src.Min).Add(tt.dp)
					if p.In(want.Rect) {
						want.SetRGBA(p.X, p.Y, before.RGBAAt(x, y))
					}
				}
			}
			if diff := cmp.Diff(want.Pix, img.Pix); diff != "" {
				t.Errorf("self copy mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShiftChannels(t *testing.T) {
	buf := []uint8{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}
	orig := append([]uint8(nil), buf...)

	assert.Equal(t, buf, ShiftChannels(buf, 0))

	got := ShiftChannels(buf, 1)
	want := []uint8{
		1, 2, 7, 4,
		1, 6, 11, 8,
		5, 10, 11, 12,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shift mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, orig, buf, "input must not be modified")

	// Shifting past the buffer leaves every channel alone.
	assert.Equal(t, orig, ShiftChannels(buf, 5))
}

func TestChromaticShiftIdentityAtZero(t *testing.T) {
	img := pattern(16, 16)
	f := &Frame{Surface: img, Bounds: img.Rect, C: 0.05, Stats: &Stats{}}

	ChromaticShift(f)

	assert.Zero(t, f.Stats.Shift)
	if diff := cmp.Diff(pattern(16, 16).Pix, img.Pix); diff != "" {
		t.Errorf("surface changed (-want +got):\n%s", diff)
	}
}

func TestChromaticShiftOnSubImage(t *testing.T) {
	parent := pattern(20, 20)
	sub := parent.SubImage(image.Rect(5, 5, 15, 15)).(*image.RGBA)
	outside := parent.RGBAAt(2, 2)

	f := &Frame{Surface: sub, Bounds: sub.Rect, C: 0.2, Stats: &Stats{}}
	ChromaticShift(f)

	assert.Equal(t, 2, f.Stats.Shift)
	assert.Equal(t, outside, parent.RGBAAt(2, 2))
	assert.Equal(t, pattern(20, 20).RGBAAt(5, 6).R, sub.RGBAAt(7, 6).R)
}

func TestGlitchBlocksDrawOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	// width, height, x, y, color, alpha
	rnd := &seq{values: []float64{0, 0, 0.5, 0.5, 0.99, 1}}
	f := &Frame{Surface: img, Bounds: img.Rect, C: 1, Rand: rnd, Stats: &Stats{}}

	GlitchBlocks(BlockStyle{
		Palette: []color.RGBA{Pink, Cyan},
		Count:   func(float64) int { return 1 },
		Alpha:   func(u, _ float64) float64 { return u },
		MinW:    10,
		SpanW:   10,
		MinH:    4,
		SpanH:   4,
	})(f)

	assert.Equal(t, 1, f.Stats.Blocks)
	assert.Equal(t, 6, rnd.calls)
	assert.Equal(t, Cyan, img.RGBAAt(55, 52))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(60, 52))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(55, 54))
}

func TestNoiseKeepsAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for i := range img.Pix {
		img.Pix[i] = 250
	}
	// every pixel is hit, with a delta of 25
	rnd := &seq{values: []float64{0, 0.5, 0, 0.5, 0, 0.5, 0, 0.5}}
	f := &Frame{Surface: img, Bounds: img.Rect, C: 1, Rand: rnd, Stats: &Stats{}}

	Noise(f)

	assert.Equal(t, 4, f.Stats.NoisyPixels)
	for x := 0; x < 4; x++ {
		assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 250}, img.RGBAAt(x, 0))
	}
}
