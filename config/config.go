package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/viper/constants"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Phases    PhasesConfig    `toml:"phases"`
	Assets    AssetsConfig    `toml:"assets"`
	Audio     AudioConfig     `toml:"audio"`
	Input     InputConfig     `toml:"input"`
	Logging   LoggingConfig   `toml:"logging"`
	Spectator SpectatorConfig `toml:"spectator"`
}

type GameConfig struct {
	TickInterval time.Duration `toml:"tick_interval"`
	Width        float64       `toml:"width"`
	Height       float64       `toml:"height"`
	Seed         int64         `toml:"seed"` // 0 = seeded from the clock at boot
}

type PhasesConfig struct {
	File string `toml:"file"` // empty = embedded default schedule
}

type AssetsConfig struct {
	SpriteSheet string `toml:"sprite_sheet"` // empty = embedded default sheet
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate"`
}

type InputConfig struct {
	Hold   time.Duration `toml:"hold"`
	Keymap string        `toml:"keymap"` // optional key binding overrides
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty disables logging
}

type SpectatorConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Load builds the configuration in layers: defaults, then the TOML file at path,
// then variables from envFile, then VIPER_* process environment
// Empty path skips the file; a missing envFile is not an error
func Load(path, envFile string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env %s: %w", envFile, err)
		}
	}
	applyEnv(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			TickInterval: constants.TickInterval,
			Width:        constants.FieldWidth,
			Height:       constants.FieldHeight,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
		},
		Input: InputConfig{
			Hold: constants.KeyHoldWindow,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "logs/viper.log",
		},
		Spectator: SpectatorConfig{
			Addr: "127.0.0.1:8089",
		},
	}
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Game.TickInterval <= 0:
		return fmt.Errorf("game.tick_interval must be positive, got %s", c.Game.TickInterval)
	case c.Game.Width <= 0 || c.Game.Height <= 0:
		return fmt.Errorf("game field must be positive, got %gx%g", c.Game.Width, c.Game.Height)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("audio.master_volume must be within [0,1], got %g", c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	case c.Input.Hold <= 0:
		return fmt.Errorf("input.hold must be positive, got %s", c.Input.Hold)
	case c.Logging.Format != "console" && c.Logging.Format != "json":
		return fmt.Errorf("logging.format must be 'console' or 'json', got '%s'", c.Logging.Format)
	case c.Spectator.Enabled && c.Spectator.Addr == "":
		return errors.New("spectator.addr is required when the spectator is enabled")
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
