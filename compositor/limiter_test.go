package compositor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterCadence(t *testing.T) {
	l := NewLimiter(DefaultInterval)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, l.Ready(start))
	assert.False(t, l.Ready(start.Add(16*time.Millisecond)))
	assert.False(t, l.Ready(start.Add(99*time.Millisecond)))
	assert.True(t, l.Ready(start.Add(100*time.Millisecond)))
	assert.False(t, l.Ready(start.Add(150*time.Millisecond)))

	l.Reset()
	assert.True(t, l.Ready(start.Add(151*time.Millisecond)))
}

func TestRollJitter(t *testing.T) {
	assert.Equal(t, Offset{}, RollJitter(&seq{values: []float64{0}}, false))
	assert.Equal(t, Offset{}, RollJitter(&seq{values: []float64{0.3}}, true))

	o := RollJitter(&seq{values: []float64{0.1, 0.9, 0.1}}, true)
	assert.InDelta(t, 4, o.X, 1e-9)
	assert.InDelta(t, -2, o.Y, 1e-9)
}
