package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealTimeline(t *testing.T) {
	rv := NewReveal(DefaultRevealConfig())
	assert.Equal(t, RevealStatic, rv.Phase())
	assert.False(t, rv.ShowMeme())

	rv.Update(2999 * time.Millisecond)
	assert.Equal(t, RevealStatic, rv.Phase())
	rv.Update(time.Millisecond)
	assert.Equal(t, RevealNarration, rv.Phase())
	assert.Equal(t, FinalNarration[0], rv.Narration())

	rv.Update(3 * time.Second)
	assert.Equal(t, 1, rv.Line())

	// last line at 3s + 20*3s, then the check at 66s, then 2s more
	rv.Update(57 * time.Second)
	assert.Equal(t, len(FinalNarration)-1, rv.Line())
	rv.Update(4999 * time.Millisecond)
	assert.Equal(t, RevealNarration, rv.Phase())
	rv.Update(time.Millisecond)
	require.Equal(t, RevealShowing, rv.Phase())
	assert.True(t, rv.ShowMeme())
	assert.Zero(t, rv.Intensity())
	assert.Empty(t, rv.Cryptic())
}

func TestRevealIntensityAndEnd(t *testing.T) {
	rv := NewReveal(DefaultRevealConfig())
	rv.Update(68 * time.Second)
	require.Equal(t, RevealShowing, rv.Phase())

	rv.Update(time.Second)
	assert.Equal(t, 20.0, rv.Intensity())
	assert.Equal(t, CrypticMessages[:1], rv.Cryptic())

	assert.False(t, rv.Restart(), "restart waits for the end")

	rv.Update(4 * time.Second)
	assert.Equal(t, 100.0, rv.Intensity())
	assert.Equal(t, CrypticMessages, rv.Cryptic())

	rv.Update(3099 * time.Millisecond)
	assert.Equal(t, RevealShowing, rv.Phase())
	rv.Update(time.Millisecond)
	assert.Equal(t, RevealEnd, rv.Phase())
	assert.True(t, rv.ShowMeme())

	assert.True(t, rv.Restart())
	assert.True(t, rv.RestartRequested())
}

func TestRevealPhaseNames(t *testing.T) {
	assert.Equal(t, "static", RevealStatic.String())
	assert.Equal(t, "reveal", RevealShowing.String())
	assert.Equal(t, "end", RevealEnd.String())
}
