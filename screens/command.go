package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/foodgallery/core"
)

// CommandOption is one row of the palette.
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (o CommandOption) Title() string {
	if !o.Disabled || o.Reason == "" {
		return o.Name
	}
	return fmt.Sprintf("%s (%s)", o.Name, o.Reason)
}

func (o CommandOption) Description() string { return o.Desc }

func (o CommandOption) FilterValue() string {
	return strings.Join([]string{o.Name, o.Desc, o.ID}, " ")
}

// CommandScreen is the command palette. It searches the commands available
// in the scope it was opened from.
type CommandScreen struct {
	keys     *core.KeyRegistry
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	query    textinput.Model
	results  list.Model
}

func NewCommandScreen(keys *core.KeyRegistry, scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	s := &CommandScreen{
		keys:     keys,
		scope:    scope,
		search:   search,
		onSelect: onSelect,
		query:    newCommandInput(),
		results:  newCommandList(),
	}
	s.runSearch()
	return s
}

func newCommandInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "cmd> "
	in.Placeholder = "Search commands"
	in.Focus()
	return in
}

func newCommandList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 48, 12)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

// OpenedFrom is the scope whose commands the palette lists.
func (s *CommandScreen) OpenedFrom() string { return s.scope }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	km, isKey := msg.(tea.KeyMsg)
	if isKey {
		if s.keys.IsAction(km, "close", core.ScopeCommand) {
			return s, nil, true
		}
		if s.keys.IsAction(km, "select", core.ScopeCommand) {
			return s.choose()
		}
		if k := km.String(); k == "up" || k == "down" {
			var cmd tea.Cmd
			s.results, cmd = s.results.Update(msg)
			return s, cmd, false
		}
	}
	prev := s.query.Value()
	var cmd tea.Cmd
	s.query, cmd = s.query.Update(msg)
	if s.query.Value() != prev {
		s.runSearch()
	}
	return s, cmd, false
}

// choose runs the highlighted command. A disabled one closes the palette
// and reports why it cannot run.
func (s *CommandScreen) choose() (core.Screen, tea.Cmd, bool) {
	opt, ok := s.results.SelectedItem().(CommandOption)
	switch {
	case !ok:
		return s, nil, false
	case opt.Disabled:
		return s, core.StatusCmd(opt.Reason), true
	case s.onSelect == nil:
		return s, nil, true
	}
	id := opt.ID
	return s, func() tea.Msg { return s.onSelect(id) }, true
}

func (s *CommandScreen) runSearch() {
	if s.search == nil {
		return
	}
	found := s.search(strings.TrimSpace(s.query.Value()))
	rows := make([]list.Item, len(found))
	for i := range found {
		rows[i] = found[i]
	}
	s.results.SetItems(rows)
	s.results.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.results.SetSize(min(width, 60), max(6, min(height-4, 14)))
	return s.query.View() + "\n" + s.results.View()
}
