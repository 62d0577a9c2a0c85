package audio

import (
	"github.com/lixenwraith/viper/constants"
)

// AudioConfig holds the mixer settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int

	// HitVolume scales the hit effect under the master volume
	HitVolume float64
}

// DefaultAudioConfig returns audio enabled at the default volume and rate
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		HitVolume:    1.0,
	}
}
