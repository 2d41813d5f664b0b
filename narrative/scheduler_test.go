package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// constRand always draws the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

var epoch = time.Date(2045, 3, 14, 21, 7, 5, 0, time.UTC)

func fixedClock() time.Time { return epoch }

func TestSchedulerAfter(t *testing.T) {
	var s Scheduler
	var firedAt []time.Duration
	s.After(300*time.Millisecond, func() { firedAt = append(firedAt, s.Now()) })

	s.Advance(299 * time.Millisecond)
	assert.Empty(t, firedAt)

	s.Advance(500 * time.Millisecond)
	assert.Equal(t, []time.Duration{300 * time.Millisecond}, firedAt)
	assert.Equal(t, 799*time.Millisecond, s.Now())
	assert.Zero(t, s.Pending())
}

func TestSchedulerEvery(t *testing.T) {
	var s Scheduler
	n := 0
	s.Every(100*time.Millisecond, func() bool {
		n++
		return n < 3
	})

	s.Advance(time.Second)
	assert.Equal(t, 3, n)
	assert.Zero(t, s.Pending())
}

func TestSchedulerOrdersTies(t *testing.T) {
	var s Scheduler
	var order []string
	s.After(time.Second, func() { order = append(order, "first") })
	s.Every(500*time.Millisecond, func() bool {
		order = append(order, "tick")
		return true
	})
	s.After(time.Second, func() { order = append(order, "last") })

	s.Advance(time.Second)
	// a repeating timer rejoins the queue behind timers already due with it
	assert.Equal(t, []string{"tick", "first", "last", "tick"}, order)
}

func TestSchedulerStop(t *testing.T) {
	var s Scheduler
	fired := false
	tm := s.After(time.Second, func() { fired = true })
	tm.Stop()
	var nilTimer *Timer
	nilTimer.Stop()

	s.Advance(2 * time.Second)
	assert.False(t, fired)

	s.Every(time.Millisecond, func() bool { return true })
	s.Stop()
	assert.Zero(t, s.Pending())
}

func TestSchedulerChainsZeroDelay(t *testing.T) {
	var s Scheduler
	var got []time.Duration
	s.After(time.Second, func() {
		s.After(0, func() { got = append(got, s.Now()) })
	})

	s.Advance(time.Second)
	assert.Equal(t, []time.Duration{time.Second}, got)
}
