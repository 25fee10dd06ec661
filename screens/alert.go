package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodgallery/core"
)

// AlertScreen shows a title and message until dismissed. Then is run on
// dismissal.
type AlertScreen struct {
	title string
	body  string
	isErr bool
	keys  *core.KeyRegistry
	then  tea.Cmd
}

func NewAlert(keys *core.KeyRegistry, title, body string, then tea.Cmd) *AlertScreen {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return &AlertScreen{title: title, body: body, keys: keys, then: then}
}

func NewErrorAlert(keys *core.KeyRegistry, title, body string) *AlertScreen {
	a := NewAlert(keys, title, body, nil)
	a.isErr = true
	return a
}

func (s *AlertScreen) Title() string { return s.title }
func (s *AlertScreen) Scope() string { return core.ScopeAlert }
func (s *AlertScreen) Body() string  { return s.body }

func (s *AlertScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && s.keys.IsAction(km, "dismiss", core.ScopeAlert) {
		return s, s.then, true
	}
	return s, nil, false
}

func (s *AlertScreen) View(width, height int) string {
	color := core.ColorAccent
	if s.isErr {
		color = core.ColorError
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(s.title)
	body := lipgloss.NewStyle().Width(min(width, 50)).Render(s.body)
	hint := lipgloss.NewStyle().Foreground(core.ColorMuted).Render("enter: ok")
	return core.ClipHeight(title+"\n\n"+body+"\n\n"+hint, max(4, height))
}
