package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/ultimomeme/narrative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, 720, C.Height)
	assert.Equal(t, 600, RestorationCanvas.Width)
	assert.Equal(t, 400, RestorationCanvas.Height)
	assert.Equal(t, 500, RevealCanvas.Width)
	assert.Equal(t, 100*time.Millisecond, RevealCanvas.Interval)
	assert.Equal(t, 95.0, Restoration.StartLevel)
	assert.Equal(t, narrative.DriftBias{Min: -8, Max: 2}, Restoration.Archaeologist)

	// restoration canvas fits between the side panels
	assert.Less(t, Layout.LeftX+Layout.LeftW, RestorationCanvas.X)
	assert.LessOrEqual(t, RestorationCanvas.X+float64(RestorationCanvas.Width), Layout.RightX)

	for id := ActionRestore; id < ActionCount; id++ {
		assert.NotEmpty(t, Input.Bindings[id], "action %d has no keys", id)
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range Phases {
		got, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePhase("credits")
	assert.ErrorContains(t, err, "unknown phase")
}

func TestParseResolution(t *testing.T) {
	r, err := ParseResolution(" 1920X1080 ")
	require.NoError(t, err)
	assert.Equal(t, 1920, r.Width)
	assert.Equal(t, 1080, r.Height)

	_, err = ParseResolution("800x600")
	assert.ErrorContains(t, err, "1280x720")
}

func TestParseOverrides(t *testing.T) {
	o, err := ParseOverrides([]byte(`
window: 1600x900
tps: 30
phase: restoration
audio:
  volume: 0.5
canvas:
  interval: 50ms
restoration:
  start_level: 80
  normal_drift: {min: -1, max: 1}
  restore_duration: 2s
bindings:
  restore: [Space]
`))
	require.NoError(t, err)
	assert.Equal(t, "1600x900", o.Window)
	assert.Equal(t, 30, *o.TPS)
	assert.Equal(t, 50*time.Millisecond, *o.Canvas.Interval)
	assert.Equal(t, 2*time.Second, *o.Restoration.RestoreDuration)
	assert.Equal(t, narrative.DriftBias{Min: -1, Max: 1}, *o.Restoration.Normal)
	assert.Nil(t, o.Restoration.Archaeologist)
	assert.Nil(t, o.Fullscreen)
}

func TestParseOverridesEmpty(t *testing.T) {
	o, err := ParseOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, &Overrides{}, o)
}

func TestParseOverridesRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "colour: red", "colour"},
		{"bad window", "window: 10x10", "unsupported window size"},
		{"bad phase", "phase: credits", "unknown phase"},
		{"tps", "tps: 1000", "tps"},
		{"volume", "audio: {volume: 2}", "volume"},
		{"interval", "canvas: {interval: 0s}", "interval"},
		{"bias", "restoration: {normal_drift: {min: 3, max: 1}}", "normal_drift"},
		{"action", "bindings: {jump: [Space]}", "jump"},
		{"duration", "restoration: {restore_duration: soon}", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	savedC, savedWindow, savedRest := *C, Window, Restoration
	savedCanvas, savedReveal := RestorationCanvas, RevealCanvas
	savedPhase, savedAudio := StartPhase, Audio
	savedBinding := Input.Bindings[ActionRestore]
	t.Cleanup(func() {
		*C, Window, Restoration = savedC, savedWindow, savedRest
		RestorationCanvas, RevealCanvas = savedCanvas, savedReveal
		StartPhase, Audio = savedPhase, savedAudio
		Input.Bindings[ActionRestore] = savedBinding
	})

	o, err := ParseOverrides([]byte(`
window: 2560x1440
tps: 120
phase: final
audio: {muted: true}
canvas: {interval: 40ms}
restoration:
  start_level: 60
  archaeologist_drift: {min: -20, max: 0}
  reveal_after_attempts: 3
bindings:
  restore: [Space]
`))
	require.NoError(t, err)
	o.Apply()

	assert.Equal(t, 2560, Window.Width)
	assert.Equal(t, 120, C.TPS)
	assert.Equal(t, PhaseFinal, StartPhase)
	assert.True(t, Audio.Muted)
	assert.Equal(t, 1.0, Audio.Volume)
	assert.Equal(t, 40*time.Millisecond, RestorationCanvas.Interval)
	assert.Equal(t, 40*time.Millisecond, RevealCanvas.Interval)
	assert.Equal(t, 60.0, Restoration.StartLevel)
	assert.Equal(t, narrative.DriftBias{Min: -20, Max: 0}, Restoration.Archaeologist)
	assert.Equal(t, narrative.DriftBias{Min: -2, Max: 6}, Restoration.Normal)
	assert.Equal(t, 3, Restoration.RevealAfterAttempts)
	assert.Equal(t, []string{"Space"}, Input.Bindings[ActionRestore])
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ultimomeme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tps: 30\n"), 0o600))

	o, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, 30, *o.TPS)

	_, err = LoadOverrides(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	require.NoError(t, os.WriteFile(path, []byte("tps: [\n"), 0o600))
	_, err = LoadOverrides(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
