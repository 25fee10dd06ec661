package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/foodgallery/widgets"
)

const appName = "Food Gallery"

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	header := m.headerView(width)
	status := m.statusView(width)
	footer := m.helpView(width)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	rows := []string{header, status}
	if bodyHeight > 0 {
		rows = append(rows, m.bodyView(width, bodyHeight))
	}
	rows = append(rows, footer)
	return appStyle.Width(width).MaxWidth(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// bodyView renders the active page with the top screen, if any, floating
// over it.
func (m Model) bodyView(width, height int) string {
	inner := max(1, width-2)
	var body string
	if p := m.ActivePage(); p != nil {
		body = p.View(&m, inner, height)
	}
	if top := m.screens.Top(); top != nil {
		popup := top.View(max(20, width-12), max(8, height-6))
		body = widgets.RenderPopup(body, popup, inner, height)
	}
	return fillHeight(body, height)
}

// headerView shows the app name and a breadcrumb of the page and the
// screen on top of it.
func (m Model) headerView(width int) string {
	crumbs := []string{}
	if p := m.ActivePage(); p != nil {
		crumbs = append(crumbs, p.Title())
	}
	if top := m.screens.Top(); top != nil {
		crumbs = append(crumbs, top.Title())
	}
	left := headerAppStyle.Render(appName)
	right := ""
	if len(crumbs) > 0 {
		right = headerPageStyle.Render(strings.Join(crumbs, " › "))
	}
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return barLine(headerBarStyle, width, left+strings.Repeat(" ", gap)+right)
}

func (m Model) statusView(width int) string {
	text := strings.TrimSpace(m.status)
	if text == "" {
		text = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return barLine(style, width, text)
}

// helpView lists the bindings of the active scope that have a description.
func (m Model) helpView(width int) string {
	var bindings []key.Binding
	for _, b := range m.keys.BindingsForScope(m.ActiveScope()) {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		bindings = append(bindings, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpDescStyle
	line := h.ShortHelpView(bindings)
	if line == "" {
		line = helpDescStyle.Render("No shortcuts")
	}
	return barLine(footerStyle, width, line)
}

func barLine(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fillHeight(s string, height int) string {
	lines := strings.Split(ClipHeight(s, height), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// ClipHeight keeps at most height lines of s.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", height+1)
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
