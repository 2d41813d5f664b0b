package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/automoto/ultimomeme/narrative"
	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML file given with --config. Every field is
// optional; absent fields keep their defaults.
type Overrides struct {
	Window      string                `yaml:"window"`
	TPS         *int                  `yaml:"tps"`
	Fullscreen  *bool                 `yaml:"fullscreen"`
	Phase       string                `yaml:"phase"`
	Audio       *AudioOverrides       `yaml:"audio"`
	Canvas      *CanvasOverrides      `yaml:"canvas"`
	Restoration *RestorationOverrides `yaml:"restoration"`
	Bindings    map[string][]string   `yaml:"bindings"`
}

type AudioOverrides struct {
	Volume *float64 `yaml:"volume"`
	Muted  *bool    `yaml:"muted"`
}

type CanvasOverrides struct {
	Interval *time.Duration `yaml:"interval"`
}

type RestorationOverrides struct {
	StartLevel          *float64             `yaml:"start_level"`
	Normal              *narrative.DriftBias `yaml:"normal_drift"`
	Archaeologist       *narrative.DriftBias `yaml:"archaeologist_drift"`
	RestoreDuration     *time.Duration       `yaml:"restore_duration"`
	RevealBelow         *float64             `yaml:"reveal_below"`
	RevealAfterAttempts *int                 `yaml:"reveal_after_attempts"`
}

// LoadOverrides reads and validates an overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return o, nil
}

// ParseOverrides decodes YAML overrides. Unknown keys are rejected.
func ParseOverrides(data []byte) (*Overrides, error) {
	o := &Overrides{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Overrides) validate() error {
	if o.Window != "" {
		if _, err := ParseResolution(o.Window); err != nil {
			return err
		}
	}
	if o.Phase != "" {
		if _, err := ParsePhase(o.Phase); err != nil {
			return err
		}
	}
	if o.TPS != nil && (*o.TPS < 10 || *o.TPS > 240) {
		return fmt.Errorf("tps %d out of range [10, 240]", *o.TPS)
	}
	if o.Audio != nil && o.Audio.Volume != nil && (*o.Audio.Volume < 0 || *o.Audio.Volume > 1) {
		return fmt.Errorf("audio volume %v out of range [0, 1]", *o.Audio.Volume)
	}
	if o.Canvas != nil && o.Canvas.Interval != nil && *o.Canvas.Interval <= 0 {
		return fmt.Errorf("canvas interval must be positive, got %s", *o.Canvas.Interval)
	}
	if r := o.Restoration; r != nil {
		for name, b := range map[string]*narrative.DriftBias{"normal_drift": r.Normal, "archaeologist_drift": r.Archaeologist} {
			if b != nil && b.Min > b.Max {
				return fmt.Errorf("%s: min %v is above max %v", name, b.Min, b.Max)
			}
		}
		if r.RestoreDuration != nil && *r.RestoreDuration <= 0 {
			return fmt.Errorf("restore_duration must be positive, got %s", *r.RestoreDuration)
		}
	}
	for name := range o.Bindings {
		if _, ok := actionNames[name]; !ok {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
	}
	return nil
}

// Apply writes the overrides into the global configuration.
func (o *Overrides) Apply() {
	if o.Window != "" {
		Window, _ = ParseResolution(o.Window)
	}
	if o.TPS != nil {
		C.TPS = *o.TPS
	}
	if o.Fullscreen != nil {
		Fullscreen = *o.Fullscreen
	}
	if o.Phase != "" {
		StartPhase, _ = ParsePhase(o.Phase)
	}
	if a := o.Audio; a != nil {
		if a.Volume != nil {
			Audio.Volume = *a.Volume
		}
		if a.Muted != nil {
			Audio.Muted = *a.Muted
		}
	}
	if c := o.Canvas; c != nil && c.Interval != nil {
		RestorationCanvas.Interval = *c.Interval
		RevealCanvas.Interval = *c.Interval
	}
	if r := o.Restoration; r != nil {
		if r.StartLevel != nil {
			Restoration.StartLevel = *r.StartLevel
		}
		if r.Normal != nil {
			Restoration.Normal = *r.Normal
		}
		if r.Archaeologist != nil {
			Restoration.Archaeologist = *r.Archaeologist
		}
		if r.RestoreDuration != nil {
			Restoration.RestoreDuration = *r.RestoreDuration
		}
		if r.RevealBelow != nil {
			Restoration.RevealBelow = *r.RevealBelow
		}
		if r.RevealAfterAttempts != nil {
			Restoration.RevealAfterAttempts = *r.RevealAfterAttempts
		}
	}
	for name, keys := range o.Bindings {
		Input.Bindings[actionNames[name]] = keys
	}
}
