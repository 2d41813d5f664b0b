package narrative

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/ultimomeme/compositor"
	"github.com/google/uuid"
)

// DriftBias is the range one restoration tick may move the corruption level.
// The normal bias leans upward.
type DriftBias struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Step maps a uniform draw onto [Min, Max).
func (b DriftBias) Step(u float64) float64 {
	return b.Min + u*(b.Max-b.Min)
}

// RestorationConfig holds the tuning of the restoration phase.
type RestorationConfig struct {
	StartLevel float64
	MinLevel   float64
	MaxLevel   float64

	Normal        DriftBias
	Archaeologist DriftBias

	TickInterval    time.Duration
	RestoreDuration time.Duration
	ErrorChance     float64

	RevealBelow         float64
	RevealAfterAttempts int

	DefragGain  float64
	DefragDelay time.Duration

	AnalyzeDelay   time.Duration
	AnalyzeSpacing time.Duration

	StartMetric       Metric
	MetricInterval    time.Duration
	QuoteInterval     time.Duration
	QuoteChance       float64
	QuoteFor          time.Duration
	IndicatorInterval time.Duration
}

// DefaultRestorationConfig returns the stock restoration tuning.
func DefaultRestorationConfig() RestorationConfig {
	return RestorationConfig{
		StartLevel: 95,
		MinLevel:   5,
		MaxLevel:   99,

		Normal:        DriftBias{Min: -2, Max: 6},
		Archaeologist: DriftBias{Min: -8, Max: 2},

		TickInterval:    500 * time.Millisecond,
		RestoreDuration: 5 * time.Second,
		ErrorChance:     0.3,

		RevealBelow:         20,
		RevealAfterAttempts: 10,

		DefragGain:  5,
		DefragDelay: 2 * time.Second,

		AnalyzeDelay:   time.Second,
		AnalyzeSpacing: 800 * time.Millisecond,

		StartMetric:       Metric{Label: PseudoScientificTerms[0], Value: 34},
		MetricInterval:    3 * time.Second,
		QuoteInterval:     15 * time.Second,
		QuoteChance:       0.3,
		QuoteFor:          5 * time.Second,
		IndicatorInterval: 100 * time.Millisecond,
	}
}

// Restoration is the interactive middle phase: an artifact whose corruption
// level the player nudges, mostly in the wrong direction.
type Restoration struct {
	cfg   RestorationConfig
	rnd   compositor.Random
	sched Scheduler
	log   *TerminalLog

	konami  Konami
	session string

	level         float64
	restoring     bool
	attempts      int
	archaeologist bool

	metric    Metric
	quote     string
	showQuote bool
	net       bool

	finalWarning    bool
	revealRequested bool
}

// NewRestoration creates the phase. rnd and clock may be nil.
func NewRestoration(cfg RestorationConfig, rnd compositor.Random, clock func() time.Time) *Restoration {
	if rnd == nil {
		rnd = compositor.Ambient
	}
	r := &Restoration{
		cfg:     cfg,
		rnd:     rnd,
		log:     NewTerminalLog(clock, SeedLog...),
		session: uuid.NewString(),
		level:   clamp(cfg.StartLevel, cfg.MinLevel, cfg.MaxLevel),
		metric:  cfg.StartMetric,
		quote:   HistorianQuotes[0],
	}

	r.sched.Every(cfg.MetricInterval, func() bool {
		r.metric = Metric{
			Label: PseudoScientificTerms[pick(r.rnd.Float64(), len(PseudoScientificTerms))],
			Value: int(math.Floor(r.rnd.Float64()*60)) + 20,
		}
		return true
	})
	r.sched.Every(cfg.QuoteInterval, func() bool {
		if r.rnd.Float64() < cfg.QuoteChance {
			r.quote = HistorianQuotes[pick(r.rnd.Float64(), len(HistorianQuotes))]
			r.showQuote = true
			r.sched.After(cfg.QuoteFor, func() { r.showQuote = false })
		}
		return true
	})
	r.sched.Every(cfg.IndicatorInterval, func() bool {
		r.net = r.rnd.Float64() > 0.5
		return true
	})
	return r
}

// Update advances the phase timers by dt.
func (r *Restoration) Update(dt time.Duration) {
	r.sched.Advance(dt)
}

// Restore starts a restoration attempt. It is refused while one is running.
func (r *Restoration) Restore() bool {
	if r.restoring {
		return false
	}
	r.restoring = true
	r.attempts++
	r.log.Add(fmt.Sprintf(LogRestoreStart, r.attempts))

	var ticker *Timer
	r.sched.After(r.cfg.RestoreDuration, func() {
		ticker.Stop()
		r.finishRestore()
	})
	ticker = r.sched.Every(r.cfg.TickInterval, func() bool {
		r.drift()
		return true
	})
	return true
}

func (r *Restoration) drift() {
	bias := r.cfg.Normal
	if r.archaeologist {
		bias = r.cfg.Archaeologist
	}
	r.level = clamp(r.level+bias.Step(r.rnd.Float64()), r.cfg.MinLevel, r.cfg.MaxLevel)

	if r.rnd.Float64() < r.cfg.ErrorChance {
		r.log.Add(ErrorMessages[pick(r.rnd.Float64(), len(ErrorMessages))])
	}
}

func (r *Restoration) finishRestore() {
	r.restoring = false
	if r.level < r.cfg.RevealBelow || r.attempts > r.cfg.RevealAfterAttempts {
		r.finalWarning = true
		return
	}
	r.log.Add(LogRestorePart)
}

// Defrag nudges the level up a little and reports failure later.
func (r *Restoration) Defrag() bool {
	if r.restoring {
		return false
	}
	r.log.Add(LogDefragStart)
	r.level = math.Min(r.cfg.MaxLevel, r.level+r.rnd.Float64()*r.cfg.DefragGain)
	r.sched.After(r.cfg.DefragDelay, func() { r.log.Add(LogDefragFail) })
	return true
}

// Analyze logs the analysis results one after another.
func (r *Restoration) Analyze() bool {
	if r.restoring {
		return false
	}
	r.log.Add(LogAnalyzeStart)
	r.sched.After(r.cfg.AnalyzeDelay, func() {
		for i, msg := range AnalysisResults {
			r.sched.After(time.Duration(i)*r.cfg.AnalyzeSpacing, func() { r.log.Add(msg) })
		}
	})
	return true
}

// Key feeds a key press to the konami detector. The archaeologist mode
// switches on the first time the sequence completes.
func (r *Restoration) Key(k Key) {
	if r.konami.Push(k) && !r.archaeologist {
		r.archaeologist = true
		r.log.Add(LogKonami)
	}
}

// DismissWarning closes the final warning and keeps restoring.
func (r *Restoration) DismissWarning() {
	r.finalWarning = false
}

// RequestReveal accepts the final warning.
func (r *Restoration) RequestReveal() {
	if r.finalWarning {
		r.revealRequested = true
	}
}

func (r *Restoration) Level() float64         { return r.level }
func (r *Restoration) Restoring() bool        { return r.restoring }
func (r *Restoration) Attempts() int          { return r.attempts }
func (r *Restoration) Archaeologist() bool    { return r.archaeologist }
func (r *Restoration) Log() *TerminalLog      { return r.log }
func (r *Restoration) Metric() Metric         { return r.metric }
func (r *Restoration) FinalWarning() bool     { return r.finalWarning }
func (r *Restoration) RevealRequested() bool  { return r.revealRequested }
func (r *Restoration) Session() string        { return r.session }
func (r *Restoration) Status() Status         { return StatusFor(r.level) }
func (r *Restoration) Indicators() Indicators { return IndicatorsFor(r.level, r.net) }

// Integrity is the complement of the corruption level, in percent.
func (r *Restoration) Integrity() float64 {
	return 100 - r.level
}

// Quote returns the current historian quote and whether it is showing.
func (r *Restoration) Quote() (string, bool) {
	return r.quote, r.showQuote
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func pick(u float64, n int) int {
	i := int(u * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
