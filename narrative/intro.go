package narrative

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IntroPhase is the visible stage of the intro.
type IntroPhase int

const (
	IntroBoot IntroPhase = iota
	IntroWarning
	IntroDone
)

// SubmitResult is the outcome of an access code submission.
type SubmitResult int

const (
	SubmitIgnored SubmitResult = iota
	SubmitRejected
	SubmitAccepted
	SubmitSecret
)

// IntroConfig holds the intro timings.
type IntroConfig struct {
	BootInterval  time.Duration
	CompleteDelay time.Duration
	WarningDelay  time.Duration
	SecretFor     time.Duration
	ErrorFor      time.Duration
	MinCodeLength int
}

// DefaultIntroConfig returns the stock intro timings.
func DefaultIntroConfig() IntroConfig {
	return IntroConfig{
		BootInterval:  800 * time.Millisecond,
		CompleteDelay: 500 * time.Millisecond,
		WarningDelay:  1500 * time.Millisecond,
		SecretFor:     2 * time.Second,
		ErrorFor:      time.Second,
		MinCodeLength: 3,
	}
}

var upper = cases.Upper(language.BrazilianPortuguese)

// NormalizeCode upper-cases an access code with Portuguese casing rules.
func NormalizeCode(code string) string {
	return upper.String(code)
}

// Intro is the boot log followed by the classified warning and access code.
type Intro struct {
	cfg   IntroConfig
	sched Scheduler

	phase        IntroPhase
	shown        int
	bootComplete bool
	accessError  bool
	secret       bool
	errorTimer   *Timer
}

// NewIntro starts the boot sequence with the first message visible.
func NewIntro(cfg IntroConfig) *Intro {
	in := &Intro{cfg: cfg, shown: 1}
	in.sched.Every(cfg.BootInterval, in.bootTick)
	return in
}

func (in *Intro) bootTick() bool {
	if in.shown < len(BootMessages) {
		in.shown++
		return true
	}
	in.sched.After(in.cfg.CompleteDelay, func() { in.bootComplete = true })
	in.sched.After(in.cfg.WarningDelay, func() { in.phase = IntroWarning })
	return false
}

// Update advances the intro timers by dt.
func (in *Intro) Update(dt time.Duration) {
	in.sched.Advance(dt)
}

// Phase returns the current stage.
func (in *Intro) Phase() IntroPhase {
	return in.phase
}

// BootLines returns the boot messages revealed so far.
func (in *Intro) BootLines() []string {
	return BootMessages[:in.shown]
}

// BootComplete reports whether the loading footer should be visible.
func (in *Intro) BootComplete() bool {
	return in.bootComplete
}

// AccessError reports whether the too-short message is showing.
func (in *Intro) AccessError() bool {
	return in.accessError
}

// ShowingSecret reports whether the secret overlay is up.
func (in *Intro) ShowingSecret() bool {
	return in.secret
}

// Done reports whether the restoration phase may begin.
func (in *Intro) Done() bool {
	return in.phase == IntroDone
}

// Submit evaluates an access code. The secret code shows its overlay before
// completing; any other code of the minimum length completes at once.
func (in *Intro) Submit(code string) SubmitResult {
	if in.phase != IntroWarning || in.secret {
		return SubmitIgnored
	}

	code = NormalizeCode(code)
	switch {
	case code == SecretCode:
		in.secret = true
		in.sched.After(in.cfg.SecretFor, func() {
			in.secret = false
			in.phase = IntroDone
		})
		return SubmitSecret
	case utf8.RuneCountInString(code) >= in.cfg.MinCodeLength:
		in.phase = IntroDone
		return SubmitAccepted
	default:
		in.accessError = true
		in.errorTimer.Stop()
		in.errorTimer = in.sched.After(in.cfg.ErrorFor, func() { in.accessError = false })
		return SubmitRejected
	}
}
