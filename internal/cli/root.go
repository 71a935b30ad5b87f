package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/vigil/internal/errors"
)

// configFlag is the --config persistent flag value.
var configFlag string

// rootCmd is the base command for vigil.
var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "Watch a status feed from your terminal",
	Long: `vigil keeps an eye on a statuspage-style feed and shows component
health in a full-screen terminal dashboard.

Leave it running: after a period of no input it switches to a matrix-rain
screensaver whose color tracks overall severity, and any change in the
feed (or any keypress) brings the dashboard straight back.

Get started:
  vigil init    - create a .vigil.yaml pointing at your status page
  vigil watch   - start the dashboard
  vigil check   - one-shot check, good for scripts and cron`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Execute runs the root command and exits non-zero on error.
// Exit codes: 1 for general errors and critical status, 2 when the feed
// itself could not be fetched, so scripts can tell "things are down"
// from "the check didn't run".
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, errCriticalStatus) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.IsCode(err, errors.ErrFeed) || errors.IsCode(err, errors.ErrDecode) {
		return 2
	}
	return 1
}
