package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rileyhilliard/vigil/internal/errors"
)

// Minimum bounds that keep the poller and animation from thrashing.
const (
	MinPollInterval = 5 * time.Second
	MinIdleTimeout  = 10 * time.Second
	MaxFPS          = 30
)

// Validate checks the config for values the runtime cannot work with.
func Validate(cfg *Config) error {
	if cfg.Feed.ComponentsURL == "" {
		return errors.New(errors.ErrConfig,
			"No components feed URL configured",
			"Set feed.components_url in .vigil.yaml, or run 'vigil init'")
	}

	if err := validateURL(cfg.Feed.ComponentsURL, "feed.components_url"); err != nil {
		return err
	}
	if cfg.Feed.IncidentsURL != "" {
		if err := validateURL(cfg.Feed.IncidentsURL, "feed.incidents_url"); err != nil {
			return err
		}
	}

	if cfg.Feed.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"feed.timeout must be positive",
			"Use a duration like 10s")
	}

	if cfg.Poll.Interval < MinPollInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("poll.interval %s is too short", cfg.Poll.Interval),
			fmt.Sprintf("Minimum interval is %s to avoid hammering the feed", MinPollInterval))
	}

	if cfg.Idle.Timeout < MinIdleTimeout {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("idle.timeout %s is too short", cfg.Idle.Timeout),
			fmt.Sprintf("Minimum idle timeout is %s", MinIdleTimeout))
	}

	return validateRain(&cfg.Rain)
}

func validateURL(raw, field string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s is not a valid http(s) URL: %s", field, raw),
			"Use a full URL like https://status.example.com/api/v2/components.json")
	}
	return nil
}

func validateRain(r *RainConfig) error {
	if r.FPS < 1 || r.FPS > MaxFPS {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("rain.fps %d is out of range", r.FPS),
			fmt.Sprintf("Use a value between 1 and %d", MaxFPS))
	}
	if r.MinSpeed <= 0 || r.MaxSpeed < r.MinSpeed {
		return errors.New(errors.ErrConfig,
			"rain speed bounds are invalid",
			"min_speed must be > 0 and max_speed >= min_speed")
	}
	if r.MinTrail < 1 || r.MaxTrail < r.MinTrail {
		return errors.New(errors.ErrConfig,
			"rain trail bounds are invalid",
			"min_trail must be >= 1 and max_trail >= min_trail")
	}
	if r.MaxRespawnDelay < 1 {
		return errors.New(errors.ErrConfig,
			"rain.max_respawn_delay must be at least 1",
			"Use a small tick count like 60")
	}
	return nil
}
