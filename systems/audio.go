package systems

import (
	"sync"

	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/logging"
	"github.com/automoto/ultimomeme/tone"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalDronePlayer  *audio.Player
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio starts the sounds queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, id := range audioData.Pending {
		switch id {
		case components.SoundDrone:
			playDrone()
		}
	}
	audioData.Pending = audioData.Pending[:0]
}

// QueueSound requests a sound for the next audio update
func QueueSound(e *ecs.ECS, id components.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.Pending = append(audioData.Pending, id)
}

// playDrone starts a fresh reveal drone. Failures are logged and ignored.
func playDrone() {
	if cfg.Audio.Muted || cfg.Audio.Volume <= 0 {
		return
	}
	StopDrone()

	drone := tone.NewDrone(beep.SampleRate(cfg.Audio.SampleRate))
	player, err := globalAudioContext.NewPlayer(tone.NewPCM(drone))
	if err != nil {
		logging.Named("audio").Warn("drone unavailable", zap.Error(err))
		return
	}
	player.SetVolume(cfg.Audio.Volume)
	player.Play()
	globalDronePlayer = player
	logging.Named("audio").Debug("drone started",
		zap.Float64("hz", drone.Frequency),
		zap.Int("samples", drone.Len()))
}

// StopDrone silences the drone if it is still playing
func StopDrone() {
	if globalDronePlayer == nil {
		return
	}
	if err := globalDronePlayer.Close(); err != nil {
		logging.Named("audio").Warn("drone close failed", zap.Error(err))
	}
	globalDronePlayer = nil
}
