package components

import (
	"github.com/automoto/ultimomeme/narrative"
	"github.com/yohamta/donburi"
)

// IntroData stores the boot sequence and access-code state
type IntroData struct {
	Intro *narrative.Intro
	Title *narrative.GlitchText
	Code  string // last submitted code, shown back in the error line
}

var Intro = donburi.NewComponentType[IntroData]()
