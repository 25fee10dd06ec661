package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodgallery/core"
)

type PickerItem struct {
	ID    string
	Label string
	Desc  string
}

// PickerModal is a typed-filter list used for the photo library and the
// dish finder. Selecting an item pops the modal and emits onSelected.
type PickerModal struct {
	title    string
	scope    string
	empty    string
	keys     *core.KeyRegistry
	filter   *core.Picker
	byID     map[string]PickerItem
	onSelect func(PickerItem) tea.Msg
}

func NewPickerModal(keys *core.KeyRegistry, title, scope string, items []PickerItem, onSelected func(PickerItem) tea.Msg) *PickerModal {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	m := &PickerModal{
		title:    title,
		scope:    scope,
		empty:    "No items",
		keys:     keys,
		byID:     make(map[string]PickerItem, len(items)),
		onSelect: onSelected,
	}
	rows := make([]core.PickerItem, len(items))
	for i, it := range items {
		m.byID[it.ID] = it
		rows[i] = core.PickerItem{ID: it.ID, Label: it.Label, Meta: it.Desc, Search: it.Label}
	}
	m.filter = core.NewPicker(title, rows)
	return m
}

// WithEmptyText sets the line shown when nothing matches.
func (s *PickerModal) WithEmptyText(text string) *PickerModal {
	s.empty = text
	return s
}

func (s *PickerModal) Title() string { return s.title }
func (s *PickerModal) Scope() string { return s.scope }

func (s *PickerModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	key := km.String()
	if s.keys.IsAction(km, "close", s.scope) {
		key = "esc"
	} else if s.keys.IsAction(km, "select", s.scope) {
		key = "enter"
	}
	res := s.filter.HandleKey(key)
	if res.Action == core.PickerActionCancelled {
		return s, nil, true
	}
	if res.Action != core.PickerActionSelected {
		return s, nil, false
	}
	chosen, known := s.byID[res.Item.ID]
	if !known || s.onSelect == nil {
		return s, nil, true
	}
	return s, func() tea.Msg { return s.onSelect(chosen) }, true
}

func (s *PickerModal) View(width, height int) string {
	muted := lipgloss.NewStyle().Foreground(core.ColorMuted)
	pointer := lipgloss.NewStyle().Foreground(core.ColorAccent).Bold(true).Render("> ")
	query := s.filter.Query()
	if query == "" {
		query = muted.Render("type to filter")
	}
	out := []string{"Filter: " + query, ""}
	shown := s.filter.Items()
	if len(shown) == 0 {
		out = append(out, muted.Render("  "+s.empty))
	}
	// Keep the cursor row inside the visible window.
	cur := s.filter.Cursor()
	window := max(1, height-4)
	first := max(0, cur-window+1)
	for i := first; i < min(len(shown), first+window); i++ {
		line := shown[i].Label
		if shown[i].Meta != "" {
			line += muted.Render("  " + shown[i].Meta)
		}
		lead := "  "
		if i == cur {
			lead = pointer
		}
		out = append(out, lead+line)
	}
	return core.ClipHeight(strings.Join(out, "\n"), max(4, height))
}
