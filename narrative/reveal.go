package narrative

import (
	"math"
	"time"
)

// RevealPhase is the visible stage of the final reveal.
type RevealPhase int

const (
	RevealStatic RevealPhase = iota
	RevealNarration
	RevealShowing
	RevealEnd
)

func (p RevealPhase) String() string {
	switch p {
	case RevealNarration:
		return "narration"
	case RevealShowing:
		return "reveal"
	case RevealEnd:
		return "end"
	default:
		return "static"
	}
}

// RevealConfig holds the final reveal timings.
type RevealConfig struct {
	StaticFor      time.Duration
	LineEvery      time.Duration
	RevealDelay    time.Duration
	IntensityEvery time.Duration
	IntensityStep  float64
	EndDelay       time.Duration
}

// DefaultRevealConfig returns the stock reveal timings.
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{
		StaticFor:      3 * time.Second,
		LineEvery:      3 * time.Second,
		RevealDelay:    2 * time.Second,
		IntensityEvery: 100 * time.Millisecond,
		IntensityStep:  2,
		EndDelay:       3 * time.Second,
	}
}

// Reveal sequences the static screen, the historian's narration, the
// corrupted meme and the closing question.
type Reveal struct {
	cfg   RevealConfig
	sched Scheduler

	phase     RevealPhase
	line      int
	intensity float64
	restart   bool
}

// NewReveal starts on the static screen.
func NewReveal(cfg RevealConfig) *Reveal {
	rv := &Reveal{cfg: cfg}
	rv.sched.After(cfg.StaticFor, rv.startNarration)
	return rv
}

func (rv *Reveal) startNarration() {
	rv.phase = RevealNarration
	rv.sched.Every(rv.cfg.LineEvery, func() bool {
		if rv.line < len(FinalNarration)-1 {
			rv.line++
			return true
		}
		rv.sched.After(rv.cfg.RevealDelay, rv.startReveal)
		return false
	})
}

func (rv *Reveal) startReveal() {
	rv.phase = RevealShowing
	rv.sched.Every(rv.cfg.IntensityEvery, func() bool {
		if rv.intensity < 100 {
			rv.intensity = math.Min(100, rv.intensity+rv.cfg.IntensityStep)
			return true
		}
		rv.sched.After(rv.cfg.EndDelay, func() { rv.phase = RevealEnd })
		return false
	})
}

// Update advances the reveal timers by dt.
func (rv *Reveal) Update(dt time.Duration) {
	rv.sched.Advance(dt)
}

// Phase returns the current stage.
func (rv *Reveal) Phase() RevealPhase {
	return rv.phase
}

// Line returns the index of the narration line on screen.
func (rv *Reveal) Line() int {
	return rv.line
}

// Narration returns the narration line on screen.
func (rv *Reveal) Narration() string {
	return FinalNarration[rv.line]
}

// Intensity is the glitch intensity of the final canvas, 0 to 100.
func (rv *Reveal) Intensity() float64 {
	return rv.intensity
}

// ShowMeme reports whether the final canvas is on screen.
func (rv *Reveal) ShowMeme() bool {
	return rv.phase >= RevealShowing
}

// Cryptic returns the header messages unveiled at the current intensity.
func (rv *Reveal) Cryptic() []string {
	n := min(int(rv.intensity/12), len(CrypticMessages))
	return CrypticMessages[:n]
}

// Restart asks to go back to the intro. Only honored once the reveal ended.
func (rv *Reveal) Restart() bool {
	if rv.phase != RevealEnd {
		return false
	}
	rv.restart = true
	return true
}

// RestartRequested reports whether Restart was accepted.
func (rv *Reveal) RestartRequested() bool {
	return rv.restart
}
