package narrative

import (
	"time"

	"github.com/automoto/ultimomeme/compositor"
)

// CRTConfig tunes the screen-wide tube effects.
type CRTConfig struct {
	FlickerEvery  time.Duration
	FlickerChance float64
	FlickerFor    time.Duration
	NoiseEvery    time.Duration
	NoiseChance   float64
	NoiseFor      time.Duration
	SweepPeriod   time.Duration
}

// DefaultCRTConfig returns the stock tube effects.
func DefaultCRTConfig() CRTConfig {
	return CRTConfig{
		FlickerEvery:  500 * time.Millisecond,
		FlickerChance: 0.05,
		FlickerFor:    100 * time.Millisecond,
		NoiseEvery:    2 * time.Second,
		NoiseChance:   0.02,
		NoiseFor:      200 * time.Millisecond,
		SweepPeriod:   8 * time.Second,
	}
}

// CRT schedules the random flicker and noise bursts of the overlay and the
// position of the moving scanline.
type CRT struct {
	cfg   CRTConfig
	rnd   compositor.Random
	sched Scheduler

	flicker bool
	noise   bool
}

// NewCRT creates the overlay state. rnd may be nil.
func NewCRT(cfg CRTConfig, rnd compositor.Random) *CRT {
	if rnd == nil {
		rnd = compositor.Ambient
	}
	c := &CRT{cfg: cfg, rnd: rnd}
	c.sched.Every(cfg.FlickerEvery, func() bool {
		if c.rnd.Float64() < cfg.FlickerChance {
			c.flicker = true
			c.sched.After(cfg.FlickerFor, func() { c.flicker = false })
		}
		return true
	})
	c.sched.Every(cfg.NoiseEvery, func() bool {
		if c.rnd.Float64() < cfg.NoiseChance {
			c.noise = true
			c.sched.After(cfg.NoiseFor, func() { c.noise = false })
		}
		return true
	})
	return c
}

// Update advances the overlay timers by dt.
func (c *CRT) Update(dt time.Duration) {
	c.sched.Advance(dt)
}

// Flickering reports whether the picture is dimmed this frame.
func (c *CRT) Flickering() bool {
	return c.flicker
}

// Noisy reports whether a noise burst is showing.
func (c *CRT) Noisy() bool {
	return c.noise
}

// Sweep is the moving scanline position as a fraction of one period.
func (c *CRT) Sweep() float64 {
	if c.cfg.SweepPeriod <= 0 {
		return 0
	}
	return float64(c.sched.Now()%c.cfg.SweepPeriod) / float64(c.cfg.SweepPeriod)
}
