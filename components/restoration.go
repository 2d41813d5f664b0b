package components

import (
	"github.com/automoto/ultimomeme/narrative"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RestorationData stores the restoration phase and its on-screen animation state
type RestorationData struct {
	Restoration *narrative.Restoration
	Title       *narrative.GlitchText

	Gauge       *gween.Tween // eases the integrity gauge toward the current value
	GaugeValue  float32
	GaugeTarget float32
}

var Restoration = donburi.NewComponentType[RestorationData]()
