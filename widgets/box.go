package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a rounded frame with an optional title line.
type Box struct {
	Title   string
	Content string
	Border  lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height)
	if b.Border != nil {
		style = style.BorderForeground(b.Border)
	}
	body := b.Content
	if b.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(b.Title) + "\n" + body
	}
	return style.Render(clipLines(body, max(1, width-4), height-2))
}
