package config

import (
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "VIPER_"

type lookupFunc func(key string) (string, bool)

// applyEnv overrides cfg from VIPER_* variables; unparsable values are ignored
func applyEnv(cfg *Config, lookup lookupFunc) {
	envDuration(lookup, "TICK_INTERVAL", &cfg.Game.TickInterval)
	envInt64(lookup, "SEED", &cfg.Game.Seed)
	envString(lookup, "PHASES_FILE", &cfg.Phases.File)
	envString(lookup, "SPRITE_SHEET", &cfg.Assets.SpriteSheet)

	envBool(lookup, "AUDIO_ENABLED", &cfg.Audio.Enabled)
	// Master volume is given as 0-100
	if v, ok := lookup(EnvPrefix + "MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	if v, ok := lookup(EnvPrefix + "SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.SampleRate = n
		}
	}

	envDuration(lookup, "INPUT_HOLD", &cfg.Input.Hold)
	envString(lookup, "KEYMAP", &cfg.Input.Keymap)

	envString(lookup, "LOG_LEVEL", &cfg.Logging.Level)
	envString(lookup, "LOG_FORMAT", &cfg.Logging.Format)
	envString(lookup, "LOG_FILE", &cfg.Logging.File)

	envBool(lookup, "SPECTATOR_ENABLED", &cfg.Spectator.Enabled)
	envString(lookup, "SPECTATOR_ADDR", &cfg.Spectator.Addr)
}

func envString(lookup lookupFunc, key string, dst *string) {
	if v, ok := lookup(EnvPrefix + key); ok {
		*dst = v
	}
}

func envBool(lookup lookupFunc, key string, dst *bool) {
	if v, ok := lookup(EnvPrefix + key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envInt64(lookup lookupFunc, key string, dst *int64) {
	if v, ok := lookup(EnvPrefix + key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func envDuration(lookup lookupFunc, key string, dst *time.Duration) {
	if v, ok := lookup(EnvPrefix + key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
