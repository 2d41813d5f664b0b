package compositor

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragmentVisibility(t *testing.T) {
	tests := []struct {
		index   int
		level   float64
		visible bool
	}{
		{0, 79.9, true},
		{0, 80.1, false},
		{1, 66.6, true},
		{1, 66.7, false},
		{2, 57.1, true},
		{2, 57.2, false},
		{3, 49.9, true},
		{3, 50.1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.visible, FragmentVisible(Fraction(tt.level), tt.index),
			"fragment %d at level %.1f", tt.index, tt.level)
	}
}

func TestRenderCountsVisibleFragments(t *testing.T) {
	c := newCompositor(t, Restoration())
	surface := image.NewRGBA(image.Rect(0, 0, 300, 200))

	c.Render(surface, 49, false)
	assert.Equal(t, 4, c.Stats().VisibleFragments)

	c.Render(surface, 60, false)
	assert.Equal(t, 2, c.Stats().VisibleFragments)

	c.Render(surface, 85, false)
	assert.Zero(t, c.Stats().VisibleFragments)
}

func TestRedactBelowThreshold(t *testing.T) {
	rnd := &seq{values: []float64{0}}

	assert.Equal(t, "ISSO FOI", Redact("ISSO FOI", 0.3, rnd))
	assert.Zero(t, rnd.calls)
}

func TestRedactKeepsSpaces(t *testing.T) {
	rnd := &seq{values: []float64{0}}

	got := Redact("ISSO FOI LONGE", 0.9, rnd)

	assert.Equal(t, "████ ███ █████", got)
	assert.Equal(t, 12, rnd.calls, "spaces draw no randomness")
}

func TestRedactIsMonotoneInCorruption(t *testing.T) {
	draws := []float64{0.05, 0.2, 0.3, 0.45, 0.1, 0.6, 0.35, 0.25}
	text := "DEMAIS ?"

	prev := 0
	for _, tc := range []float64{0.31, 0.5, 0.7, 0.9, 1.0} {
		got := Redact(text, tc, &seq{values: draws})
		n := strings.Count(got, string(BlockGlyph))
		assert.GreaterOrEqual(t, n, prev, "tc %.2f", tc)
		prev = n
	}
	assert.Equal(t, 6, prev)
}

func TestRedactIsPerRune(t *testing.T) {
	rnd := &seq{values: []float64{0.9, 0.1, 0.9, 0.1}}

	assert.Equal(t, "L█N█", Redact("LONG", 0.8, rnd))
}
