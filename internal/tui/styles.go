package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	okFg      = lipgloss.Color("#10B981")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentFg).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	strongStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(okFg)
	buttonStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(borderCol).Padding(0, 1)
)
