package scenes

import (
	cfg "github.com/automoto/ultimomeme/config"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewPhaseScene creates the scene that opens phase
func NewPhaseScene(sc SceneChanger, phase cfg.Phase) interface{} {
	switch phase {
	case cfg.PhaseRestoration:
		return NewRestorationScene(sc)
	case cfg.PhaseFinal:
		return NewRevealScene(sc)
	default:
		return NewIntroScene(sc)
	}
}
