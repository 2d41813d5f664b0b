package components

import (
	"github.com/automoto/ultimomeme/narrative"
	"github.com/yohamta/donburi"
)

// CRTData drives the monitor overlay drawn on top of every scene
type CRTData struct {
	CRT *narrative.CRT
}

var CRT = donburi.NewComponentType[CRTData]()
