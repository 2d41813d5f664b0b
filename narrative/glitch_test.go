package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScramble(t *testing.T) {
	assert.Equal(t, "!!!! !!!", Scramble("ISSO FOI", 0, constRand(0)))
	assert.Equal(t, "ISS! !!!", Scramble("ISSO FOI", 3, constRand(0)))
	assert.Equal(t, "ISSO FOI", Scramble("ISSO FOI", 8, constRand(0)))
	assert.Equal(t, "MÓD___", Scramble("MÓDULO", 3, constRand(0.99)))
}

func TestGlitchTextBurst(t *testing.T) {
	g := NewGlitchText("O ÚLTIMO", IntensityLow, constRand(0))
	assert.Equal(t, "O ÚLTIMO", g.String())

	g.Update(8 * time.Second)
	assert.True(t, g.Glitching())
	assert.Equal(t, "O ÚLTIMO", g.String())

	g.Update(GlitchStep)
	assert.Equal(t, "! !!!!!!", g.String())

	g.Update(2 * GlitchStep)
	assert.Equal(t, "O !!!!!!", g.String(), "space at index 1 never scrambles")

	g.Update(3 * GlitchStep)
	assert.False(t, g.Glitching())
	assert.Equal(t, "O ÚLTIMO", g.String())
}

func TestIntensityTable(t *testing.T) {
	assert.Equal(t, 8*time.Second, IntensityLow.Interval())
	assert.Equal(t, 4*time.Second, IntensityMedium.Interval())
	assert.Equal(t, 2*time.Second, IntensityHigh.Interval())
	assert.Equal(t, []int{5, 10, 15}, []int{
		IntensityLow.Iterations(),
		IntensityMedium.Iterations(),
		IntensityHigh.Iterations(),
	})
}

func TestCRT(t *testing.T) {
	c := NewCRT(DefaultCRTConfig(), constRand(0))
	c.Update(500 * time.Millisecond)
	assert.True(t, c.Flickering())
	c.Update(100 * time.Millisecond)
	assert.False(t, c.Flickering())

	c.Update(1400 * time.Millisecond)
	assert.True(t, c.Noisy())
	c.Update(200 * time.Millisecond)
	assert.False(t, c.Noisy())

	c.Update(1800 * time.Millisecond)
	assert.InDelta(t, 0.5, c.Sweep(), 1e-9)

	calm := NewCRT(DefaultCRTConfig(), constRand(0.5))
	calm.Update(time.Minute)
	assert.False(t, calm.Flickering())
	assert.False(t, calm.Noisy())
}
