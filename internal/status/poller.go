package status

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rileyhilliard/vigil/internal/errors"
	"github.com/rileyhilliard/vigil/internal/logger"

	stderrors "errors"
)

// nonComponentPrefix marks feed entries that are links rather than
// components ("Visit www.example-status.com for more information").
const nonComponentPrefix = "Visit"

// Poller fetches the status feed once per interval and publishes a fresh
// Snapshot into the mailbox. It runs on its own goroutine and never
// touches the rendering side directly.
type Poller struct {
	feed     Feed
	mailbox  *Mailbox
	interval time.Duration
	log      logger.Logger

	// now is swappable so tests can pin the status line clock.
	now func() time.Time

	// prev holds the per-index states of the last *published* valid
	// snapshot. Only this goroutine reads or writes it.
	prev    []ComponentState
	hasPrev bool
}

// NewPoller creates a poller. It does nothing until Run is called.
func NewPoller(feed Feed, mailbox *Mailbox, interval time.Duration, log logger.Logger) *Poller {
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		feed:     feed,
		mailbox:  mailbox,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Run polls until the context is cancelled. The first cycle fires
// immediately so the dashboard is not blank for a whole interval after
// startup; after that the ticker is the only pacing. Failed cycles are
// never retried early.
func (p *Poller) Run(ctx context.Context) {
	p.RunOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single fetch-classify-publish cycle and returns the
// snapshot it produced. Exported for the one-shot 'vigil check' command.
func (p *Poller) RunOnce(ctx context.Context) Snapshot {
	s := p.cycle(ctx)

	if !p.mailbox.Publish(s) {
		// Bounded lock attempt failed; drop this snapshot and let the
		// next cycle supersede it. prev stays untouched so the change
		// comparison remains anchored to what was actually published.
		p.log.Warn("mailbox busy, snapshot dropped until next cycle")
		return s
	}

	if s.Valid {
		states := make([]ComponentState, len(s.Components))
		for i, c := range s.Components {
			states[i] = c.State
		}
		p.prev = states
		p.hasPrev = true
	}
	return s
}

// cycle builds one Snapshot entirely in private storage. The mailbox lock
// is never held across fetch or decode work.
func (p *Poller) cycle(ctx context.Context) Snapshot {
	raw, err := p.feed.Components(ctx)
	if err != nil {
		p.log.Warn("components fetch failed: %v", err)
		return p.failureSnapshot(err)
	}

	incidents, err := p.feed.UnresolvedIncidents(ctx)
	if err != nil {
		// A flaky incidents feed must not raise severity on its own:
		// prefer a false negative over a false alarm.
		p.log.Warn("incidents fetch failed, assuming none: %v", err)
		incidents = false
	}

	components := filterComponents(raw)
	worst, allOK := Classify(components, incidents)

	s := Snapshot{
		Valid:                  true,
		Components:             components,
		AllOperational:         allOK,
		WorstSeverity:          worst,
		HasUnresolvedIncidents: incidents,
		ChangedFromPrevious:    p.changed(components),
		StatusLine:             "Updated: " + p.now().Format("15:04:05"),
	}
	p.log.Debug("cycle complete: %d components, severity=%s, changed=%v",
		len(components), worst, s.ChangedFromPrevious)
	return s
}

// failureSnapshot maps a fetch error to an invalid Snapshot whose status
// line carries the reason. Severity fields are deliberately left at their
// zero values; consumers must not treat an invalid snapshot as a health
// update.
func (p *Poller) failureSnapshot(err error) Snapshot {
	line := "network unavailable"

	var sce *StatusCodeError
	switch {
	case stderrors.As(err, &sce):
		line = fmt.Sprintf("HTTP %d", sce.Code)
	case errors.IsCode(err, errors.ErrDecode):
		line = "bad feed payload"
	}

	return Snapshot{
		Valid:      false,
		StatusLine: line,
		Err:        err,
	}
}

// changed reports whether any per-index state differs from the last
// published snapshot. Index is identity here: a feed reordering reads as
// a same-index status change, an accepted approximation. Before the first
// publish there is nothing to compare, so nothing has "changed".
func (p *Poller) changed(components []ComponentStatus) bool {
	if !p.hasPrev {
		return false
	}
	if len(components) != len(p.prev) {
		return true
	}
	for i, c := range components {
		if c.State != p.prev[i] {
			return true
		}
	}
	return false
}

// filterComponents applies the feed hygiene rules: link pseudo-entries
// are dropped, hidden components only appear once degraded, names are
// capped at MaxNameLen bytes, and the list is truncated to MaxComponents
// preserving feed order.
func filterComponents(raw []FeedComponent) []ComponentStatus {
	out := make([]ComponentStatus, 0, MaxComponents)
	for _, fc := range raw {
		if len(out) == MaxComponents {
			break
		}
		if strings.HasPrefix(fc.Name, nonComponentPrefix) {
			continue
		}
		if fc.Hidden && fc.State == StateOperational {
			continue
		}
		out = append(out, ComponentStatus{
			Name:  truncateName(fc.Name),
			State: fc.State,
		})
	}
	return out
}

// truncateName caps a name at MaxNameLen bytes without splitting a rune.
func truncateName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	b := name[:MaxNameLen]
	for len(b) > 0 && !utf8.ValidString(b) {
		b = b[:len(b)-1]
	}
	return b
}
