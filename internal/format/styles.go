package format

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// ANSI color numbers shared with the TUI.
const (
	ColorGreen  = "2"
	ColorYellow = "3"
	ColorBlue   = "4"
	ColorRed    = "1"
	ColorCyan   = "6"
	ColorMuted  = "241"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBlue))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))

	tierStyles = map[domain.ScoreTier]lipgloss.Style{
		domain.TierExcellent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorGreen)),
		domain.TierGood:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
		domain.TierFair:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		domain.TierLow:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}

	toneStyles = map[domain.StatusTone]lipgloss.Style{
		domain.TonePositive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		domain.ToneNegative: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
)

// ScoreStyle returns the style of a score's tier.
func ScoreStyle(score *float64) lipgloss.Style {
	if style, ok := tierStyles[domain.ScoreTierFor(score)]; ok {
		return style
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
}

// StatusStyle returns the style of a status's tone.
func StatusStyle(status string) lipgloss.Style {
	if style, ok := toneStyles[domain.StatusToneFor(status)]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
