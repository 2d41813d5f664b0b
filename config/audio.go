package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
	Muted      bool
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     1.0,
	}
}
