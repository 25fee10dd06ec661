package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupBorder is the border colour of popups rendered by RenderPopup.
var PopupBorder lipgloss.TerminalColor = lipgloss.Color("#89b4fa")

// RenderPopup draws popup in a bordered card centred over base. Base rows
// the card does not cover stay visible.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PopupBorder).
		Padding(1, 2).
		MaxWidth(width).
		Render(popup)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	return composite(fitBlock(base, width, height), fitBlock(placed, width, height), width, height)
}

// composite replaces, line by line, the columns of base that overlay
// actually paints.
func composite(base, overlay string, width, height int) string {
	baseLines := splitToLines(base, height)
	overLines := splitToLines(overlay, height)
	out := make([]string, height)
	for i := range out {
		under := padRight(baseLines[i], width)
		over := padRight(overLines[i], width)
		start, end, ok := paintedSpan(over, width)
		if !ok {
			out[i] = under
			continue
		}
		left := ansi.Truncate(under, start, "")
		mid := ansi.Cut(over, start, end)
		right := ansi.Cut(under, end, width)
		out[i] = padRight(left+mid+right, width)
	}
	return strings.Join(out, "\n")
}

func paintedSpan(line string, width int) (start, end int, ok bool) {
	plain := []rune(ansi.Strip(ansi.Truncate(line, width, "")))
	end = len(plain)
	for end > 0 && plain[end-1] == ' ' {
		end--
	}
	for start < end && plain[start] == ' ' {
		start++
	}
	return start, end, start < end
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
