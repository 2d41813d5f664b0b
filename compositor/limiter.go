package compositor

import "time"

// DefaultInterval is the minimum spacing between two rendered frames.
const DefaultInterval = 100 * time.Millisecond

// Limiter gates rendering to at most one frame per Interval.
type Limiter struct {
	Interval time.Duration

	last   time.Time
	primed bool
}

// NewLimiter creates a limiter with the given interval.
func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{Interval: interval}
}

// Ready reports whether a frame is due at now and, if so, records it.
// The first call is always ready.
func (l *Limiter) Ready(now time.Time) bool {
	if l.primed && now.Sub(l.last) < l.Interval {
		return false
	}
	l.last = now
	l.primed = true
	return true
}

// Reset makes the next call to Ready return true.
func (l *Limiter) Reset() {
	l.primed = false
}
