package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/vigil/internal/errors"
)

// Command-specific flags
var (
	initURLFlag   string
	initForce     bool
	checkURLFlag  string
	checkJSONFlag bool
)

// watchCmd starts the full-screen dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Start the full-screen status dashboard",
	Long: `Start the interactive dashboard showing live component health.

The feed is polled in the background on the configured interval. After
the idle timeout without keyboard or mouse input, the dashboard gives
way to a matrix-rain screensaver colored by overall severity. Any input
wakes it; so does any change in the feed.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh the display
  s           Toggle the screensaver

Examples:
  vigil watch
  vigil watch --config ./team-status.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(configFlag)
	},
}

// checkCmd performs a one-shot status check
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single status check and print the result",
	Long: `Fetch the status feed once and print component health to stdout.

Exits non-zero when the feed is unreachable, so it slots into scripts
and cron jobs. Use --json for machine-readable output.

Examples:
  vigil check
  vigil check --json
  vigil check --url https://status.example.com/api/v2/components.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(configFlag, checkURLFlag, checkJSONFlag)
	},
}

// initCmd creates a new .vigil.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .vigil.yaml configuration",
	Long: `Initialize a new vigil configuration file.

Creates a .vigil.yaml in the current directory with sensible defaults.
Prompts for the status feed URLs interactively unless --url is given.

Examples:
  vigil init
  vigil init --url https://status.example.com/api/v2/components.json
  vigil init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initURLFlag, initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for vigil.

Examples:
  # Bash
  vigil completion bash > /etc/bash_completion.d/vigil

  # Zsh
  vigil completion zsh > "${fpath[1]}/_vigil"

  # Fish
  vigil completion fish > ~/.config/fish/completions/vigil.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().StringVar(&initURLFlag, "url", "", "pre-specify the components feed URL")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// check command flags
	checkCmd.Flags().StringVar(&checkURLFlag, "url", "", "check this components feed URL instead of the configured one")
	checkCmd.Flags().BoolVar(&checkJSONFlag, "json", false, "machine-readable JSON output")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
