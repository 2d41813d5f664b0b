package components

import "github.com/yohamta/donburi"

// SoundID identifies a synthesized sound
type SoundID int

const (
	SoundDrone SoundID = iota
)

// AudioData stores sounds requested this frame (singleton component)
type AudioData struct {
	Pending []SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
