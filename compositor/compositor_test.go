package compositor

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/ultimomeme/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq replays fixed draws and then repeats the last one.
type seq struct {
	values []float64
	calls  int
}

func (s *seq) Float64() float64 {
	v := s.values[min(s.calls, len(s.values)-1)]
	s.calls++
	return v
}

func newCompositor(t *testing.T, profile Profile) *Compositor {
	t.Helper()
	faces, err := fonts.NewFaces()
	require.NoError(t, err)
	c := New(profile, faces)
	c.Rand = rand.New(rand.NewPCG(7, 11))
	return c
}

func requireOpaque(t *testing.T, img *image.RGBA) {
	t.Helper()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xFF {
			p := i / 4
			t.Fatalf("pixel (%d,%d) has alpha %d", p%img.Rect.Dx(), p/img.Rect.Dx(), img.Pix[i])
		}
	}
}

func TestRenderLevelZero(t *testing.T) {
	c := newCompositor(t, Restoration())
	surface := image.NewRGBA(image.Rect(0, 0, 600, 400))

	c.Render(surface, 0, false)

	s := c.Stats()
	assert.Equal(t, 1, s.Frames)
	assert.Zero(t, s.Blocks)
	assert.Zero(t, s.SmearedStrips)
	assert.Zero(t, s.MoshedTiles)
	assert.Zero(t, s.Shift)
	assert.False(t, s.ErrorOverlay)
	assert.Equal(t, len(MemeFragments), s.VisibleFragments)

	// Scanline rows are darker than the rows between them.
	assert.Less(t, surface.RGBAAt(5, 0).R, surface.RGBAAt(5, 1).R)
	assert.Equal(t, Void, surface.RGBAAt(5, 1))

	// The frame stroke runs down x=90 at full clarity.
	assert.Greater(t, surface.RGBAAt(90, 200).R, Void.R)
	requireOpaque(t, surface)
}

func TestRenderLevelHundred(t *testing.T) {
	c := newCompositor(t, Restoration())
	surface := image.NewRGBA(image.Rect(0, 0, 600, 400))

	c.Render(surface, 100, true)

	s := c.Stats()
	assert.Equal(t, 50, s.Blocks)
	assert.Equal(t, 10, s.Shift)
	assert.Zero(t, s.VisibleFragments)
	assert.True(t, s.ErrorOverlay)
	assert.Positive(t, s.SmearedStrips)
	assert.Positive(t, s.MoshedTiles)
	requireOpaque(t, surface)
}

func TestRenderClampsLevel(t *testing.T) {
	tests := []struct {
		name   string
		level  float64
		blocks int
		shift  int
	}{
		{"above range", 250, 50, 10},
		{"below range", -5, 0, 0},
		{"not a number", math.NaN(), 0, 0},
		{"half", 50, 25, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCompositor(t, Restoration())
			c.Render(image.NewRGBA(image.Rect(0, 0, 120, 80)), tt.level, false)
			assert.Equal(t, tt.blocks, c.Stats().Blocks)
			assert.Equal(t, tt.shift, c.Stats().Shift)
		})
	}
}

func TestRenderSkipsMissingSurface(t *testing.T) {
	c := newCompositor(t, Restoration())

	assert.NotPanics(t, func() {
		c.Render(nil, 50, true)
		c.Render(image.NewRGBA(image.Rectangle{}), 50, true)
	})
	assert.Zero(t, c.Stats().Frames)
}

func TestRenderWithoutFaces(t *testing.T) {
	c := New(Restoration(), nil)
	surface := image.NewRGBA(image.Rect(0, 0, 200, 100))

	assert.NotPanics(t, func() { c.Render(surface, 90, true) })
	assert.Zero(t, c.Stats().VisibleFragments)
	requireOpaque(t, surface)
}

func TestSustainedHighCorruption(t *testing.T) {
	c := newCompositor(t, Restoration())
	surface := image.NewRGBA(image.Rect(0, 0, 600, 400))

	for i := 0; i < 50; i++ {
		c.Render(surface, 95, true)
		require.True(t, c.Stats().ErrorOverlay)
	}
	assert.Equal(t, 50, c.Stats().Frames)
	requireOpaque(t, surface)
}

func TestRevealProfile(t *testing.T) {
	c := newCompositor(t, Reveal())
	surface := image.NewRGBA(image.Rect(0, 0, 500, 400))

	c.Render(surface, 0, false)
	s := c.Stats()
	assert.Equal(t, 20, s.Blocks)
	assert.Zero(t, s.Bars)
	assert.Zero(t, s.NoisyPixels)

	c.Render(surface, 100, false)
	s = c.Stats()
	assert.Equal(t, 20, s.Blocks)
	assert.Equal(t, 10, s.Bars)
	assert.Positive(t, s.NoisyPixels)
	requireOpaque(t, surface)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, Fraction(-1))
	assert.Equal(t, 0.0, Fraction(math.NaN()))
	assert.Equal(t, 0.42, Fraction(42))
	assert.Equal(t, 1.0, Fraction(math.Inf(1)))
}

func TestHexCode(t *testing.T) {
	assert.Equal(t, "00000000", HexCode(&seq{values: []float64{0}}))
	assert.Equal(t, "80000000", HexCode(&seq{values: []float64{0.5}}))
	assert.Equal(t, "FFFFFFFF", HexCode(&seq{values: []float64{1}}))
}
