package widgets

import "github.com/charmbracelet/lipgloss"

// Field is a labelled form row. Value is usually a textinput view.
type Field struct {
	Label   string
	Value   string
	Focused bool
	Accent  lipgloss.TerminalColor
}

func (f Field) Render(width, height int) string {
	label := lipgloss.NewStyle().Width(14)
	marker := "  "
	if f.Focused {
		label = label.Bold(true)
		if f.Accent != nil {
			label = label.Foreground(f.Accent)
		}
		marker = "> "
	}
	return clipLines(marker+label.Render(f.Label)+f.Value, width, max(1, height))
}
