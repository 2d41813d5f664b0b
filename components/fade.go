package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData is a full-screen black overlay fading out when a scene starts
type FadeData struct {
	Tween *gween.Tween
	Alpha float32 // 1 is fully black
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
