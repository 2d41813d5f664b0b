package narrative

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastLine(r *Restoration) string {
	entries := r.Log().Entries()
	return entries[len(entries)-1].Text
}

func konami(r *Restoration) {
	for _, k := range KonamiSequence {
		r.Key(k)
	}
}

func TestRestorationStartsCorrupted(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0.5), fixedClock)

	assert.Equal(t, 95.0, r.Level())
	assert.Equal(t, StatusCritical, r.Status())
	assert.Equal(t, len(SeedLog), r.Log().Len())
	assert.Equal(t, Metric{Label: "Ressonância Semântica Digital", Value: 34}, r.Metric())
	assert.InDelta(t, 5, r.Integrity(), 1e-9)

	_, err := uuid.Parse(r.Session())
	require.NoError(t, err)
}

func TestRestoreDriftsUpward(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0.5), fixedClock)

	require.True(t, r.Restore())
	assert.True(t, r.Restoring())
	assert.Equal(t, 1, r.Attempts())
	assert.Equal(t, "[PROCESSO] Iniciando tentativa de restauração #1...", lastLine(r))
	assert.False(t, r.Restore(), "only one attempt at a time")
	assert.False(t, r.Defrag())
	assert.False(t, r.Analyze())

	r.Update(4999 * time.Millisecond)
	assert.True(t, r.Restoring())

	r.Update(time.Millisecond)
	assert.False(t, r.Restoring())
	assert.Equal(t, 99.0, r.Level(), "drift is clamped at the top")
	assert.Equal(t, LogRestorePart, lastLine(r))
	assert.False(t, r.FinalWarning())
}

func TestRestoreTickCount(t *testing.T) {
	cfg := DefaultRestorationConfig()
	cfg.StartLevel = 50
	r := NewRestoration(cfg, constRand(0.5), fixedClock)

	r.Restore()
	r.Update(10 * time.Second)

	// nine ticks of +2 before the attempt closes at 5s
	assert.InDelta(t, 68, r.Level(), 1e-9)
}

func TestArchaeologistModeRestores(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0), fixedClock)
	konami(r)
	require.True(t, r.Archaeologist())
	assert.Equal(t, LogKonami, lastLine(r))

	konami(r)
	secrets := 0
	for _, e := range r.Log().Entries() {
		if e.Kind == KindSecret {
			secrets++
		}
	}
	assert.Equal(t, 1, secrets)

	r.Restore()
	r.Update(5 * time.Second)
	assert.InDelta(t, 23, r.Level(), 1e-9)
	assert.False(t, r.FinalWarning())

	r.Restore()
	r.Update(5 * time.Second)
	assert.Equal(t, 5.0, r.Level(), "drift is clamped at the bottom")
	assert.True(t, r.FinalWarning())
}

func TestFinalWarningAfterManyAttempts(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0.5), fixedClock)

	for i := 1; i <= 10; i++ {
		require.True(t, r.Restore())
		r.Update(5 * time.Second)
		require.False(t, r.FinalWarning(), "attempt %d", i)
	}
	r.Restore()
	r.Update(5 * time.Second)
	assert.True(t, r.FinalWarning())

	r.DismissWarning()
	assert.False(t, r.FinalWarning())
	r.RequestReveal()
	assert.False(t, r.RevealRequested(), "reveal needs the warning open")

	r.Restore()
	r.Update(5 * time.Second)
	r.RequestReveal()
	assert.True(t, r.RevealRequested())
}

func TestRestoreLogsErrors(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0.1), fixedClock)
	r.Restore()
	r.Update(5 * time.Second)

	errors := 0
	for _, e := range r.Log().Entries() {
		if e.Text == ErrorMessages[0] {
			errors++
		}
	}
	assert.Equal(t, 9, errors)
}

func TestDefrag(t *testing.T) {
	cfg := DefaultRestorationConfig()
	cfg.StartLevel = 50
	r := NewRestoration(cfg, constRand(0.5), fixedClock)

	require.True(t, r.Defrag())
	assert.InDelta(t, 52.5, r.Level(), 1e-9)
	assert.Equal(t, LogDefragStart, lastLine(r))

	r.Update(1999 * time.Millisecond)
	assert.Equal(t, LogDefragStart, lastLine(r))
	r.Update(time.Millisecond)
	assert.Equal(t, LogDefragFail, lastLine(r))

	capped := NewRestoration(DefaultRestorationConfig(), constRand(0.99), fixedClock)
	for i := 0; i < 5; i++ {
		capped.Defrag()
	}
	assert.Equal(t, 99.0, capped.Level())
}

func TestAnalyze(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0.5), fixedClock)
	require.True(t, r.Analyze())
	assert.Equal(t, LogAnalyzeStart, lastLine(r))

	r.Update(time.Second)
	assert.Equal(t, AnalysisResults[0], lastLine(r))

	r.Update(2400 * time.Millisecond)
	assert.Equal(t, AnalysisResults[3], lastLine(r))

	r.Update(800 * time.Millisecond)
	assert.Equal(t, AnalysisResults[4], lastLine(r))
}

func TestMetricCycles(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0.5), fixedClock)
	r.Update(3 * time.Second)

	assert.Equal(t, Metric{Label: PseudoScientificTerms[4], Value: 50}, r.Metric())
}

func TestQuotes(t *testing.T) {
	r := NewRestoration(DefaultRestorationConfig(), constRand(0), fixedClock)
	_, showing := r.Quote()
	assert.False(t, showing)

	r.Update(15 * time.Second)
	quote, showing := r.Quote()
	assert.True(t, showing)
	assert.Equal(t, HistorianQuotes[0], quote)

	r.Update(5 * time.Second)
	_, showing = r.Quote()
	assert.False(t, showing)

	quiet := NewRestoration(DefaultRestorationConfig(), constRand(0.5), fixedClock)
	quiet.Update(time.Minute)
	_, showing = quiet.Quote()
	assert.False(t, showing)
}

func TestStatusAndIndicators(t *testing.T) {
	tests := []struct {
		level  float64
		status string
		mem    bool
		cpu    bool
	}{
		{95, "CRÍTICO", true, true},
		{80, "INSTÁVEL", true, true},
		{65, "INSTÁVEL", false, true},
		{50, "PARCIAL", false, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(tt.level).String())
			ind := IndicatorsFor(tt.level, true)
			assert.Equal(t, Indicators{MEM: tt.mem, CPU: tt.cpu, NET: true}, ind)
		})
	}
}

func TestDriftBiasStep(t *testing.T) {
	cfg := DefaultRestorationConfig()
	assert.Equal(t, -2.0, cfg.Normal.Step(0))
	assert.Equal(t, 2.0, cfg.Normal.Step(0.5))
	assert.Equal(t, -8.0, cfg.Archaeologist.Step(0))
	assert.Equal(t, -3.0, cfg.Archaeologist.Step(0.5))
}
