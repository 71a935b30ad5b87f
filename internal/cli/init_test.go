package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/vigil/internal/config"
)

func TestValidateFeedURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "https url", input: "https://status.example.com/api/v2/components.json", wantErr: false},
		{name: "http url", input: "http://localhost:8080/components.json", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "missing scheme", input: "status.example.com/components.json", wantErr: true},
		{name: "wrong scheme", input: "ftp://status.example.com", wantErr: true},
		{name: "scheme only", input: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFeedURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDuration(t *testing.T) {
	v := validateDuration(config.MinPollInterval)

	assert.NoError(t, v("2m"))
	assert.NoError(t, v(" 30s "))
	assert.Error(t, v("1s"), "below the minimum")
	assert.Error(t, v("soon"))
	assert.Error(t, v(""))
}

func TestDeriveIncidentsURL(t *testing.T) {
	assert.Equal(t,
		"https://status.example.com/api/v2/incidents/unresolved.json",
		deriveIncidentsURL("https://status.example.com/api/v2/components.json"))

	assert.Empty(t, deriveIncidentsURL("https://status.example.com/feed.json"),
		"non-statuspage layouts get no guessed incidents URL")
}

func TestInit_WritesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(origWd) }()

	err = Init(InitOptions{
		ComponentsURL: "https://status.example.com/api/v2/components.json",
	})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "components_url: https://status.example.com/api/v2/components.json")
	assert.Contains(t, string(data), "incidents/unresolved.json",
		"statuspage-style URLs get the incidents endpoint derived")

	// the written file round-trips through the loader
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
}

func TestInit_ExistingConfigWithForce(t *testing.T) {
	dir := t.TempDir()
	origWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(origWd) }()

	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	err = Init(InitOptions{
		ComponentsURL: "https://status.example.com/api/v2/components.json",
		Overwrite:     true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "components_url")
}

func TestInit_RejectsInvalidURLFlag(t *testing.T) {
	dir := t.TempDir()
	origWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(origWd) }()

	err = Init(InitOptions{ComponentsURL: "not-a-url"})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, config.ConfigFileName))
	assert.True(t, os.IsNotExist(statErr), "no file is written on validation failure")
}
