package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/vigil/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 2*time.Minute, cfg.Poll.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Idle.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, 12, cfg.Rain.FPS)
	assert.Greater(t, cfg.Rain.MaxSpeed, cfg.Rain.MinSpeed)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
version: 1
feed:
  components_url: https://status.example.com/api/v2/components.json
  incidents_url: https://status.example.com/api/v2/incidents/unresolved.json
  timeout: 5s
poll:
  interval: 30s
idle:
  timeout: 2m
rain:
  fps: 10
  min_speed: 0.5
  max_speed: 2.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://status.example.com/api/v2/components.json", cfg.Feed.ComponentsURL)
	assert.Equal(t, 5*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 2*time.Minute, cfg.Idle.Timeout)
	assert.Equal(t, 10, cfg.Rain.FPS)
	assert.Equal(t, 0.5, cfg.Rain.MinSpeed)
}

func TestLoad_PartialConfigGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
feed:
  components_url: https://status.example.com/api/v2/components.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// omitted sections fall back to defaults
	assert.Equal(t, 2*time.Minute, cfg.Poll.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Idle.Timeout)
	assert.Equal(t, 12, cfg.Rain.FPS)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "feed: [this is: not valid\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "version: 1\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func validTestConfig() *Config {
	cfg := DefaultConfig()
	cfg.Feed.ComponentsURL = "https://status.example.com/api/v2/components.json"
	return cfg
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validTestConfig()))
}

func TestValidate_MissingComponentsURL(t *testing.T) {
	cfg := DefaultConfig()

	err := Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_BadURLScheme(t *testing.T) {
	cfg := validTestConfig()
	cfg.Feed.ComponentsURL = "ftp://status.example.com/feed"

	assert.Error(t, Validate(cfg))
}

func TestValidate_IntervalTooShort(t *testing.T) {
	cfg := validTestConfig()
	cfg.Poll.Interval = time.Second

	assert.Error(t, Validate(cfg))
}

func TestValidate_IdleTooShort(t *testing.T) {
	cfg := validTestConfig()
	cfg.Idle.Timeout = time.Second

	assert.Error(t, Validate(cfg))
}

func TestValidate_RainBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RainConfig)
	}{
		{"fps zero", func(r *RainConfig) { r.FPS = 0 }},
		{"fps too high", func(r *RainConfig) { r.FPS = 120 }},
		{"min speed zero", func(r *RainConfig) { r.MinSpeed = 0 }},
		{"speed inverted", func(r *RainConfig) { r.MaxSpeed = r.MinSpeed / 2 }},
		{"trail zero", func(r *RainConfig) { r.MinTrail = 0 }},
		{"trail inverted", func(r *RainConfig) { r.MaxTrail = r.MinTrail - 1 }},
		{"respawn zero", func(r *RainConfig) { r.MaxRespawnDelay = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg.Rain)
			assert.Error(t, Validate(cfg))
		})
	}
}
