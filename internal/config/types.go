package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .vigil.yaml configuration file.
type Config struct {
	Version int        `yaml:"version" mapstructure:"version"`
	Feed    FeedConfig `yaml:"feed" mapstructure:"feed"`
	Poll    PollConfig `yaml:"poll" mapstructure:"poll"`
	Idle    IdleConfig `yaml:"idle" mapstructure:"idle"`
	Rain    RainConfig `yaml:"rain" mapstructure:"rain"`
}

// FeedConfig points at the remote status feed.
type FeedConfig struct {
	// ComponentsURL is the status feed's component list endpoint
	// (statuspage.io shape: /api/v2/components.json).
	ComponentsURL string `yaml:"components_url" mapstructure:"components_url"`

	// IncidentsURL is the unresolved-incidents endpoint. Optional; when
	// empty, incident presence never contributes to severity.
	IncidentsURL string `yaml:"incidents_url" mapstructure:"incidents_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// PollConfig controls the background polling cadence.
type PollConfig struct {
	// Interval between poll cycles. The poller never retries faster than
	// this, even after a failed cycle.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// IdleConfig controls when the screensaver takes over.
type IdleConfig struct {
	// Timeout is how long without keyboard/mouse input before the
	// screensaver activates.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// RainConfig tunes the screensaver animation.
type RainConfig struct {
	// FPS is the approximate animation frame rate.
	FPS int `yaml:"fps" mapstructure:"fps"`

	// MinSpeed and MaxSpeed bound the per-column fall speed in rows per tick.
	MinSpeed float64 `yaml:"min_speed" mapstructure:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" mapstructure:"max_speed"`

	// MinTrail and MaxTrail bound the randomized trail length in cells.
	MinTrail int `yaml:"min_trail" mapstructure:"min_trail"`
	MaxTrail int `yaml:"max_trail" mapstructure:"max_trail"`

	// MaxRespawnDelay bounds the tick countdown before an expired column
	// re-enters from the top.
	MaxRespawnDelay int `yaml:"max_respawn_delay" mapstructure:"max_respawn_delay"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Feed: FeedConfig{
			Timeout: 10 * time.Second,
		},
		Poll: PollConfig{
			Interval: 2 * time.Minute,
		},
		Idle: IdleConfig{
			Timeout: 5 * time.Minute,
		},
		Rain: RainConfig{
			FPS:             12,
			MinSpeed:        0.3,
			MaxSpeed:        1.2,
			MinTrail:        4,
			MaxTrail:        16,
			MaxRespawnDelay: 60,
		},
	}
}
