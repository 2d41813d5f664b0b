package narrative

import (
	"time"

	"github.com/automoto/ultimomeme/compositor"
)

// GlitchChars replace unrevealed runes during a scramble.
var GlitchChars = []rune(`!<>-_\/[]{}—=+*^?#________`)

// Intensity selects how often a GlitchText scrambles and for how long.
type Intensity int

const (
	IntensityLow Intensity = iota
	IntensityMedium
	IntensityHigh
)

// Interval is the pause between scramble bursts.
func (i Intensity) Interval() time.Duration {
	switch i {
	case IntensityHigh:
		return 2 * time.Second
	case IntensityMedium:
		return 4 * time.Second
	default:
		return 8 * time.Second
	}
}

// Iterations is the number of scramble steps of one burst.
func (i Intensity) Iterations() int {
	switch i {
	case IntensityHigh:
		return 15
	case IntensityMedium:
		return 10
	default:
		return 5
	}
}

// GlitchStep is the spacing of scramble steps within a burst.
const GlitchStep = 30 * time.Millisecond

// Scramble returns text with its first revealed runes intact and the rest
// replaced by random glitch characters. Spaces always survive.
func Scramble(text string, revealed int, rnd compositor.Random) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == ' ' || i < revealed {
			continue
		}
		runes[i] = GlitchChars[pick(rnd.Float64(), len(GlitchChars))]
	}
	return string(runes)
}

// GlitchText is a label that periodically scrambles and resolves itself
// from left to right.
type GlitchText struct {
	Text string

	intensity Intensity
	rnd       compositor.Random
	sched     Scheduler
	display   string
	glitching bool
}

// NewGlitchText creates a label. rnd may be nil.
func NewGlitchText(text string, intensity Intensity, rnd compositor.Random) *GlitchText {
	if rnd == nil {
		rnd = compositor.Ambient
	}
	g := &GlitchText{Text: text, intensity: intensity, rnd: rnd, display: text}
	g.sched.Every(intensity.Interval(), func() bool {
		g.burst()
		return true
	})
	return g
}

func (g *GlitchText) burst() {
	g.glitching = true
	iterations := 0
	g.sched.Every(GlitchStep, func() bool {
		g.display = Scramble(g.Text, iterations, g.rnd)
		iterations++
		if iterations > g.intensity.Iterations() {
			g.display = g.Text
			g.glitching = false
			return false
		}
		return true
	})
}

// Update advances the label timers by dt.
func (g *GlitchText) Update(dt time.Duration) {
	g.sched.Advance(dt)
}

// String returns the text as currently displayed.
func (g *GlitchText) String() string {
	return g.display
}

// Glitching reports whether a burst is in progress.
func (g *GlitchText) Glitching() bool {
	return g.glitching
}
