package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tile is one card in a Carousel.
type Tile struct {
	Title  string
	Lines  []string
	Active bool
}

// Carousel lays tiles out on a horizontal strip and shows the window that
// starts Offset columns into it. The window is padded on the left so the
// tile at Offset sits in the middle.
type Carousel struct {
	Tiles      []Tile
	TileWidth  int
	Spacing    int
	Offset     int
	Accent     lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	EmptyLabel string
}

func (c Carousel) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Tiles) == 0 {
		label := c.EmptyLabel
		if label == "" {
			label = "Nothing here yet"
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label)
	}
	tileW := max(6, c.TileWidth)
	rendered := make([][]string, len(c.Tiles))
	for i, t := range c.Tiles {
		box := Box{Title: t.Title, Content: strings.Join(t.Lines, "\n"), Border: c.Muted}
		if t.Active {
			box.Border = c.Accent
		}
		rendered[i] = splitToLines(box.Render(tileW, height), height)
	}

	lead := strings.Repeat(" ", max(0, (width-tileW)/2))
	gap := strings.Repeat(" ", max(0, c.Spacing))
	out := make([]string, height)
	for row := range out {
		var strip strings.Builder
		strip.WriteString(lead)
		for i := range rendered {
			if i > 0 {
				strip.WriteString(gap)
			}
			strip.WriteString(padRight(rendered[i][row], tileW))
		}
		out[row] = padRight(ansi.Cut(strip.String(), max(0, c.Offset), max(0, c.Offset)+width), width)
	}
	return strings.Join(out, "\n")
}

// Dots renders the page indicator, one dot per card with the active one
// highlighted.
func Dots(active []bool, on, off lipgloss.TerminalColor) string {
	onStyle := lipgloss.NewStyle().Foreground(on)
	offStyle := lipgloss.NewStyle().Foreground(off)
	parts := make([]string, len(active))
	for i, a := range active {
		if a {
			parts[i] = onStyle.Render("●")
		} else {
			parts[i] = offStyle.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
