package components

import (
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/yohamta/donburi"
)

// InputData holds which actions are held this tick and the tick before.
type InputData struct {
	Held [cfg.ActionCount]bool
	Prev [cfg.ActionCount]bool
}

// Pressed reports whether id went down this tick.
func (in *InputData) Pressed(id cfg.ActionID) bool {
	return in.Held[id] && !in.Prev[id]
}

var Input = donburi.NewComponentType[InputData]()
