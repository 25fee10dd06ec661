package core

import "github.com/charmbracelet/lipgloss"

// Palette shared by pages and screens.
var (
	ColorText     lipgloss.Color = "#e0f7fa"
	ColorMuted    lipgloss.Color = "#80cbc4"
	ColorBorder   lipgloss.Color = "#4f6f6b"
	ColorAccent   lipgloss.Color = "#26a69a"
	ColorStrong   lipgloss.Color = "#00796b"
	ColorSuccess  lipgloss.Color = "#a5d6a7"
	ColorError    lipgloss.Color = "#e53935"
	ColorDotOff   lipgloss.Color = "#5f6b6a"
	colorMantle   lipgloss.Color = "#0b2a27"
	colorSurface0 lipgloss.Color = "#123d39"
)
