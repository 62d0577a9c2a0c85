package constants

import "time"

// Hit Sound Timing
const (
	HitSoundDuration = 250 * time.Millisecond
	HitSoundAttack   = 4 * time.Millisecond
	HitSoundRelease  = 200 * time.Millisecond

	// HitSoundRumbleFreq is the low square layer under the noise burst
	HitSoundRumbleFreq = 55.0
)

// Audio defaults
const (
	DefaultSampleRate   = 48000
	DefaultMasterVolume = 0.5
	SpeakerBuffer       = 100 * time.Millisecond
)
