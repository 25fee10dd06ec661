package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rows stacks widgets vertically. An item with a positive entry in Heights
// gets exactly that many lines; the others share what is left.
type Rows struct {
	Items   []Widget
	Heights []int
	Gap     int
}

func (r Rows) Render(width, height int) string {
	if len(r.Items) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	sizes := share(height-max(0, r.Gap*(len(r.Items)-1)), r.Heights, len(r.Items))
	parts := make([]string, 0, len(r.Items)*2)
	for i, w := range r.Items {
		if i > 0 && r.Gap > 0 {
			parts = append(parts, strings.Repeat("\n", r.Gap-1))
		}
		parts = append(parts, fitBlock(w.Render(width, sizes[i]), width, sizes[i]))
	}
	return strings.Join(parts, "\n")
}

// Cols places widgets side by side, sized like Rows.
type Cols struct {
	Items  []Widget
	Widths []int
	Gap    int
}

func (c Cols) Render(width, height int) string {
	if len(c.Items) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	sizes := share(width-max(0, c.Gap*(len(c.Items)-1)), c.Widths, len(c.Items))
	blocks := make([]string, 0, len(c.Items)*2)
	for i, w := range c.Items {
		if i > 0 && c.Gap > 0 {
			blocks = append(blocks, strings.Repeat(" ", c.Gap))
		}
		blocks = append(blocks, fitBlock(w.Render(sizes[i], height), sizes[i], height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// share splits total between n items. Fixed sizes are honoured first (and
// shrunk when they do not fit); flexible items split the remainder evenly.
func share(total int, fixed []int, n int) []int {
	total = max(0, total)
	out := make([]int, n)
	flex := 0
	used := 0
	for i := range out {
		if i < len(fixed) && fixed[i] > 0 {
			out[i] = min(fixed[i], total-used)
			used += out[i]
			continue
		}
		flex++
	}
	if flex == 0 {
		return out
	}
	rest := total - used
	for i := range out {
		if i < len(fixed) && fixed[i] > 0 {
			continue
		}
		out[i] = (rest + flex - 1) / flex
		rest -= out[i]
		flex--
	}
	return out
}

// fitBlock pads or clips s to exactly width x height cells.
func fitBlock(s string, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func clipLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}
