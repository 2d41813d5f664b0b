package config

import "fmt"

// Phase identifies one of the three linear stages of the experience
type Phase string

const (
	PhaseIntro       Phase = "intro"
	PhaseRestoration Phase = "restoration"
	PhaseFinal       Phase = "final"
)

// Phases lists every phase in playing order
var Phases = []Phase{PhaseIntro, PhaseRestoration, PhaseFinal}

// StartPhase is the phase the game opens on
var StartPhase = PhaseIntro

// ParsePhase validates a phase name
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q (want intro, restoration or final)", s)
}

func (p Phase) String() string {
	return string(p)
}
