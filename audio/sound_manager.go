package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/viper/constants"
)

// SoundManager plays fire-and-forget effects through the shared speaker mixer
// Every method is safe before Initialize and after a failed Initialize: sounds are dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	logger      *zap.Logger

	played atomic.Uint64
}

// NewSoundManager creates a sound manager; nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.Named("audio"),
	}
}

// Initialize opens the audio device; a disabled config succeeds without touching hardware
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("speaker ready", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Ready reports whether sounds reach the speaker
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayHit queues the hit effect and returns immediately
func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CreateHitSound(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// Played returns the number of effects handed to the mixer
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Cleanup drops queued sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device silent
	sm.initialized = false
}
