package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/vigil/internal/config"
	"github.com/rileyhilliard/vigil/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	ComponentsURL string // Pre-specified feed URL; skips the prompt
	Overwrite     bool   // Overwrite existing config without asking
}

// Init creates a new .vigil.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	componentsURL := opts.ComponentsURL
	var incidentsURL string
	pollStr := "2m"
	idleStr := "5m"

	if componentsURL == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Components feed URL").
					Description("The statuspage-style components endpoint").
					Placeholder("https://status.example.com/api/v2/components.json").
					Value(&componentsURL).
					Validate(validateFeedURL),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Incidents feed URL (optional)").
					Description("The unresolved-incidents endpoint; leave empty to skip").
					Placeholder("https://status.example.com/api/v2/incidents/unresolved.json").
					Value(&incidentsURL),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Poll interval").
					Description("How often to fetch the feed (minimum 5s)").
					Value(&pollStr).
					Validate(validateDuration(config.MinPollInterval)),
				huh.NewInput().
					Title("Idle timeout").
					Description("Input-free time before the screensaver starts (minimum 10s)").
					Value(&idleStr).
					Validate(validateDuration(config.MinIdleTimeout)),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or pass --url instead")
		}
	} else if derived := deriveIncidentsURL(componentsURL); derived != "" {
		incidentsURL = derived
	}

	// Build config
	cfg := config.DefaultConfig()
	cfg.Feed.ComponentsURL = strings.TrimSpace(componentsURL)
	cfg.Feed.IncidentsURL = strings.TrimSpace(incidentsURL)
	// validated by the form; defaults are always parseable
	if d, err := time.ParseDuration(strings.TrimSpace(pollStr)); err == nil {
		cfg.Poll.Interval = d
	}
	if d, err := time.ParseDuration(strings.TrimSpace(idleStr)); err == nil {
		cfg.Idle.Timeout = d
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(renderConfig(cfg))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# vigil configuration
# Run 'vigil watch' to start the dashboard
# See: https://github.com/rileyhilliard/vigil for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  vigil check   - Verify the feed is reachable")
	fmt.Println("  vigil watch   - Start the dashboard")

	return nil
}

// fileConfig mirrors Config for serialization, with durations as strings
// ("10s", "2m") instead of raw nanosecond integers.
type fileConfig struct {
	Version int `yaml:"version"`
	Feed    struct {
		ComponentsURL string `yaml:"components_url"`
		IncidentsURL  string `yaml:"incidents_url,omitempty"`
		Timeout       string `yaml:"timeout"`
	} `yaml:"feed"`
	Poll struct {
		Interval string `yaml:"interval"`
	} `yaml:"poll"`
	Idle struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"idle"`
	Rain config.RainConfig `yaml:"rain"`
}

func renderConfig(cfg *config.Config) fileConfig {
	var out fileConfig
	out.Version = cfg.Version
	out.Feed.ComponentsURL = cfg.Feed.ComponentsURL
	out.Feed.IncidentsURL = cfg.Feed.IncidentsURL
	out.Feed.Timeout = cfg.Feed.Timeout.String()
	out.Poll.Interval = cfg.Poll.Interval.String()
	out.Idle.Timeout = cfg.Idle.Timeout.String()
	out.Rain = cfg.Rain
	return out
}

// validateFeedURL rejects anything that is not an absolute http(s) URL.
func validateFeedURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("feed URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("enter a full http(s) URL")
	}
	return nil
}

// validateDuration builds a form validator that accepts Go duration
// strings at or above the given minimum.
func validateDuration(min time.Duration) func(string) error {
	return func(s string) error {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a duration like 30s or 2m")
		}
		if d < min {
			return fmt.Errorf("minimum is %s", min)
		}
		return nil
	}
}

// deriveIncidentsURL guesses the unresolved-incidents endpoint from a
// statuspage-style components URL. Returns empty when the URL doesn't
// follow that convention.
func deriveIncidentsURL(componentsURL string) string {
	const suffix = "/components.json"
	if !strings.HasSuffix(componentsURL, suffix) {
		return ""
	}
	return strings.TrimSuffix(componentsURL, suffix) + "/incidents/unresolved.json"
}

// initCommand is the implementation called by the cobra command.
func initCommand(urlFlag string, force bool) error {
	return Init(InitOptions{
		ComponentsURL: urlFlag,
		Overwrite:     force,
	})
}
