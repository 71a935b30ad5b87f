package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/vigil/internal/status"
)

// Dashboard color palette
const (
	ColorSurfaceBg = lipgloss.Color("#12121A") // dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // glass border (purple tint)

	// Semantic colors shared with the rain palette
	ColorHealthy  = lipgloss.Color("#39FF14") // neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // electric amber
	ColorCritical = lipgloss.Color("#FF0055") // hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97") // neon pink
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	ComponentNameStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary)

	StateTextStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// State indicator glyphs
const (
	GlyphOperational   = "◉" // filled target
	GlyphDegraded      = "◐" // half filled
	GlyphPartialOutage = "◒" // partially filled
	GlyphMajorOutage   = "◌" // dashed circle
	GlyphUnknown       = "·"
)

// StateGlyph returns the indicator character for a component state.
func StateGlyph(s status.ComponentState) string {
	switch s {
	case status.StateOperational:
		return GlyphOperational
	case status.StateDegraded:
		return GlyphDegraded
	case status.StatePartialOutage:
		return GlyphPartialOutage
	case status.StateMajorOutage:
		return GlyphMajorOutage
	default:
		return GlyphUnknown
	}
}

// StateStyle returns the color style for a component state glyph.
func StateStyle(s status.ComponentState) lipgloss.Style {
	switch s {
	case status.StateOperational:
		return lipgloss.NewStyle().Foreground(ColorHealthy)
	case status.StateDegraded, status.StatePartialOutage:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case status.StateMajorOutage:
		return lipgloss.NewStyle().Foreground(ColorCritical)
	default:
		return lipgloss.NewStyle().Foreground(ColorTextMuted)
	}
}

// SeverityStyle returns the color style for an overall severity badge.
func SeverityStyle(s status.Severity) lipgloss.Style {
	switch s {
	case status.SeverityCritical:
		return lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	case status.SeverityWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorHealthy).Bold(true)
	}
}

// SeverityBadge returns the header badge text for an overall severity.
func SeverityBadge(s status.Severity) string {
	switch s {
	case status.SeverityCritical:
		return "CRITICAL"
	case status.SeverityWarning:
		return "WARNING"
	default:
		return "ALL SYSTEMS GO"
	}
}
