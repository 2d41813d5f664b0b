package components

import (
	"github.com/automoto/ultimomeme/narrative"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RevealData stores the final phase
type RevealData struct {
	Reveal  *narrative.Reveal
	Closing *narrative.GlitchText

	MemeScale *gween.Tween
	Scale     float32
	DroneDone bool // drone has been queued for this reveal
}

var Reveal = donburi.NewComponentType[RevealData]()
