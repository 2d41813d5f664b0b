// Package tone synthesizes the low sine drone that plays under the final
// reveal.
package tone

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Drone is a sine tone held at Gain for Hold, then ramped exponentially down
// to FadeTo over Fade, after which the stream ends.
type Drone struct {
	Rate      beep.SampleRate
	Frequency float64
	Gain      float64
	FadeTo    float64
	Hold      time.Duration
	Fade      time.Duration

	pos   int
	phase float64
}

// NewDrone returns the 80 Hz reveal drone.
func NewDrone(rate beep.SampleRate) *Drone {
	return &Drone{
		Rate:      rate,
		Frequency: 80,
		Gain:      0.05,
		FadeTo:    0.001,
		Hold:      5 * time.Second,
		Fade:      2 * time.Second,
	}
}

// Len is the total number of samples the drone produces.
func (d *Drone) Len() int {
	return d.Rate.N(d.Hold + d.Fade)
}

// GainAt returns the envelope at t from the start of the tone.
func (d *Drone) GainAt(t time.Duration) float64 {
	switch {
	case t < 0:
		return 0
	case t < d.Hold:
		return d.Gain
	case t < d.Hold+d.Fade && d.Gain > 0 && d.FadeTo > 0:
		progress := float64(t-d.Hold) / float64(d.Fade)
		return d.Gain * math.Pow(d.FadeTo/d.Gain, progress)
	default:
		return 0
	}
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	total := d.Len()
	for i := range samples {
		if d.pos >= total {
			return i, i > 0
		}
		t := time.Duration(float64(d.pos) / float64(d.Rate) * float64(time.Second))
		v := math.Sin(2*math.Pi*d.phase) * d.GainAt(t)
		samples[i][0] = v
		samples[i][1] = v

		d.phase += d.Frequency / float64(d.Rate)
		d.phase -= math.Floor(d.phase)
		d.pos++
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
