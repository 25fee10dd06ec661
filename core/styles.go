package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(ColorText)

	headerBarStyle  = lipgloss.NewStyle().Background(colorMantle).Foreground(ColorText)
	headerAppStyle  = lipgloss.NewStyle().Background(colorMantle).Foreground(ColorAccent).Bold(true).Padding(0, 1)
	headerPageStyle = lipgloss.NewStyle().Background(colorSurface0).Foreground(ColorMuted).Padding(0, 1)

	statusBarStyle    = lipgloss.NewStyle().Background(colorSurface0).Foreground(ColorSuccess)
	statusErrBarStyle = lipgloss.NewStyle().Background(colorSurface0).Foreground(ColorError).Bold(true)

	footerStyle   = lipgloss.NewStyle().Background(colorMantle)
	helpKeyStyle  = lipgloss.NewStyle().Background(colorMantle).Foreground(ColorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(ColorMuted)
)
