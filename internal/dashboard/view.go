package dashboard

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/vigil/internal/status"
)

// renderDashboard draws the live status view: header with severity badge,
// the component list, the status line, and the footer hints.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if !m.haveSnapshot {
		b.WriteString(fmt.Sprintf("  %s %s\n", m.spin.View(),
			StatusLineStyle.Render("waiting for first status check...")))
	} else {
		b.WriteString(m.renderComponents())
	}

	b.WriteString("\n")
	b.WriteString("  " + StatusLineStyle.Render(m.statusLine))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("VIGIL")

	badge := ""
	if m.haveSnapshot {
		sev := m.snapshot.WorstSeverity
		badge = SeverityStyle(sev).Render(SeverityBadge(sev))
		if m.snapshot.HasUnresolvedIncidents {
			badge += StateTextStyle.Render("  (open incident)")
		}
	}

	line := title
	if badge != "" {
		line += "  " + badge
	}
	return HeaderStyle.Render(line)
}

func (m Model) renderComponents() string {
	rows := make([]string, 0, len(m.snapshot.Components))
	for _, c := range m.snapshot.Components {
		glyph := StateStyle(c.State).Render(StateGlyph(c.State))
		name := ComponentNameStyle.Render(padName(c.Name))
		state := StateTextStyle.Render(stateLabel(c.State))
		rows = append(rows, fmt.Sprintf("%s %s %s", glyph, name, state))
	}
	if len(rows) == 0 {
		rows = append(rows, StateTextStyle.Render("no components reported"))
	}
	return ListStyle.Render(strings.Join(rows, "\n")) + "\n"
}

func (m Model) renderFooter() string {
	hints := []string{"q quit", "r refresh", "s screensaver"}
	return FooterStyle.Render(strings.Join(hints, "  •  "))
}

// renderScreensaver draws the rain frame. Each line already carries its
// own ANSI sequences; joining is all that's left.
func (m Model) renderScreensaver() string {
	return strings.Join(m.rain.FrameLines(), "\n")
}

// padName left-aligns component names into a fixed column so the state
// labels line up. Names are already capped upstream.
func padName(name string) string {
	return fmt.Sprintf("%-*s", status.MaxNameLen, name)
}

func stateLabel(s status.ComponentState) string {
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
