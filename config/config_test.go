package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, 600.0, cfg.Game.Width)
	assert.Equal(t, 480.0, cfg.Game.Height)
	assert.Equal(t, 120*time.Millisecond, cfg.Input.Hold)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "viper.toml", `
[game]
tick_interval = "16ms"
seed = 42

[phases]
file = "custom.toml"

[audio]
enabled = false

[logging]
level = "debug"
format = "json"

[spectator]
enabled = true
addr = ":9000"
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 16*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "custom.toml", cfg.Phases.File)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Spectator.Enabled)
	assert.Equal(t, ":9000", cfg.Spectator.Addr)

	// Untouched sections keep their defaults
	assert.Equal(t, 600.0, cfg.Game.Width)
	assert.Equal(t, 0.5, cfg.Audio.MasterVolume)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), "")
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", "[game\n"), "")
	assert.Error(t, err)

	_, err = Load(writeFile(t, "invalid.toml", "[logging]\nformat = \"xml\"\n"), "")
	assert.ErrorContains(t, err, "logging.format")
}

func TestMissingEnvFileIgnored(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestEnvFileOverrides(t *testing.T) {
	const key = "VIPER_SPECTATOR_ADDR"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s set in the environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	env := writeFile(t, ".env", key+"=0.0.0.0:7777\n")
	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7777", cfg.Spectator.Addr)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"VIPER_TICK_INTERVAL":     "33ms",
		"VIPER_SEED":              "7",
		"VIPER_AUDIO_ENABLED":     "false",
		"VIPER_MASTER_VOLUME":     "150",
		"VIPER_SAMPLE_RATE":       "-1",
		"VIPER_INPUT_HOLD":        "not-a-duration",
		"VIPER_LOG_LEVEL":         "warn",
		"VIPER_SPECTATOR_ENABLED": "1",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Defaults()
	applyEnv(cfg, lookup)

	assert.Equal(t, 33*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume, "clamped")
	assert.Equal(t, 48000, cfg.Audio.SampleRate, "rejected value keeps default")
	assert.Equal(t, 120*time.Millisecond, cfg.Input.Hold, "unparsable value keeps default")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Spectator.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero tick", func(c *Config) { c.Game.TickInterval = 0 }},
		{"negative width", func(c *Config) { c.Game.Width = -1 }},
		{"loud", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"no hold", func(c *Config) { c.Input.Hold = 0 }},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"spectator without addr", func(c *Config) { c.Spectator.Enabled = true; c.Spectator.Addr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
