package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/rileyhilliard/vigil/internal/config"
	"github.com/rileyhilliard/vigil/internal/dashboard"
	"github.com/rileyhilliard/vigil/internal/errors"
	"github.com/rileyhilliard/vigil/internal/logger"
	"github.com/rileyhilliard/vigil/internal/status"
)

// checkCommand runs one poll cycle and prints the result.
func checkCommand(configPath, urlOverride string, asJSON bool) error {
	cfg, err := checkConfig(configPath, urlOverride)
	if err != nil {
		if asJSON {
			_ = WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	client := status.NewClient(cfg.Feed, logger.Default())
	poller := status.NewPoller(client, status.NewMailbox(), cfg.Poll.Interval, logger.Default())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Feed.Timeout+5*time.Second)
	defer cancel()

	snap := poller.RunOnce(ctx)
	if !snap.Valid {
		err := checkFailureError(snap)
		if asJSON {
			_ = WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	if asJSON {
		if err := WriteJSONSuccess(os.Stdout, snapshotJSON(snap)); err != nil {
			return err
		}
	} else {
		printSnapshot(os.Stdout, snap)
	}

	if snap.WorstSeverity == status.SeverityCritical {
		return errCriticalStatus
	}
	return nil
}

// errCriticalStatus makes 'vigil check' exit non-zero on critical health
// without printing anything beyond the report itself.
var errCriticalStatus = stderrors.New("critical status reported")

// checkFailureError surfaces the cause behind an invalid snapshot. The
// poller's original error is preferred so HTTP status codes and the
// transport/decode distinction survive into --json output.
func checkFailureError(snap status.Snapshot) error {
	if snap.Err != nil {
		return snap.Err
	}
	return errors.New(errors.ErrFeed,
		"Status check failed: "+snap.StatusLine,
		"Check your network connection and the feed URL")
}

// checkConfig resolves the feed configuration for a one-shot check.
// With --url there is no need for a config file at all.
func checkConfig(configPath, urlOverride string) (*config.Config, error) {
	if urlOverride != "" {
		cfg := config.DefaultConfig()
		cfg.Feed.ComponentsURL = urlOverride
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return loadConfig(configPath)
}

// printSnapshot writes the human-readable report. Styling is skipped when
// stdout is not a terminal so piped output stays clean.
func printSnapshot(w io.Writer, snap status.Snapshot) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	badge := dashboard.SeverityBadge(snap.WorstSeverity)
	if styled {
		badge = dashboard.SeverityStyle(snap.WorstSeverity).Render(badge)
	}
	fmt.Fprintln(w, badge)
	if snap.HasUnresolvedIncidents {
		fmt.Fprintln(w, "unresolved incident reported")
	}
	fmt.Fprintln(w)

	for _, c := range snap.Components {
		glyph := dashboard.StateGlyph(c.State)
		if styled {
			glyph = dashboard.StateStyle(c.State).Render(glyph)
		}
		fmt.Fprintf(w, "%s %-*s %s\n", glyph, status.MaxNameLen, c.Name, stateWord(c.State))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, snap.StatusLine)
}

func stateWord(s status.ComponentState) string {
	switch s {
	case status.StateOperational:
		return "operational"
	case status.StateDegraded:
		return "degraded"
	case status.StatePartialOutage:
		return "partial outage"
	case status.StateMajorOutage:
		return "major outage"
	default:
		return "unknown"
	}
}

// checkResult is the --json data payload.
type checkResult struct {
	AllOperational         bool             `json:"all_operational"`
	Severity               string           `json:"severity"`
	HasUnresolvedIncidents bool             `json:"has_unresolved_incidents"`
	Components             []checkComponent `json:"components"`
	StatusLine             string           `json:"status_line"`
}

type checkComponent struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

func snapshotJSON(snap status.Snapshot) checkResult {
	out := checkResult{
		AllOperational:         snap.AllOperational,
		Severity:               severityWord(snap.WorstSeverity),
		HasUnresolvedIncidents: snap.HasUnresolvedIncidents,
		Components:             make([]checkComponent, 0, len(snap.Components)),
		StatusLine:             snap.StatusLine,
	}
	for _, c := range snap.Components {
		out.Components = append(out.Components, checkComponent{
			Name:  c.Name,
			State: stateWord(c.State),
		})
	}
	return out
}

func severityWord(s status.Severity) string {
	switch s {
	case status.SeverityCritical:
		return "critical"
	case status.SeverityWarning:
		return "warning"
	default:
		return "none"
	}
}
