package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/gallery"
)

const (
	fieldDish = iota
	fieldCalories
	fieldIngredients
	fieldCount
)

// CardClosedMsg is sent after the card modal saved or discarded its session.
type CardClosedMsg struct {
	Saved   bool
	Removed bool
	Dish    string
}

// CardModal shows the editor's open session. It starts read-only; the edit
// action unlocks the fields and every keystroke is written to the draft.
type CardModal struct {
	editor *gallery.Editor
	keys   *core.KeyRegistry
	inputs []textinput.Model
	focus  int
}

func NewCardModal(editor *gallery.Editor, keys *core.KeyRegistry) *CardModal {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	labels := [fieldCount]string{"Dish", "Calories", "Ingredients"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inp := textinput.New()
		inp.Prompt = fmt.Sprintf("%-12s ", labels[i]+":")
		inp.CharLimit = 0
		inputs[i] = inp
	}
	s := &CardModal{editor: editor, keys: keys, inputs: inputs}
	s.loadDraft()
	return s
}

func (s *CardModal) Title() string {
	sess, ok := s.editor.Session()
	if ok && sess.Mode == gallery.ModeNew {
		return "New Card"
	}
	return "Card"
}

func (s *CardModal) Scope() string {
	if sess, ok := s.editor.Session(); ok && sess.Editing {
		return core.ScopeCardEditing
	}
	return core.ScopeCardModal
}

func (s *CardModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if !s.editor.IsOpen() {
		return s, nil, true
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.updateInput(msg), false
	}
	scope := s.Scope()
	action, bound := s.keys.ActionFor(km, scope)
	if !bound {
		if scope == core.ScopeCardEditing {
			return s, s.updateInput(msg), false
		}
		return s, nil, false
	}
	switch action {
	case "card-edit":
		s.editor.BeginEdit()
		s.setFocus(fieldDish)
		return s, textinput.Blink, false
	case "card-cancel-edit":
		s.editor.CancelEdit()
		s.loadDraft()
		return s, nil, false
	case "card-next-field":
		s.setFocus((s.focus + 1) % fieldCount)
		return s, nil, false
	case "card-prev-field":
		s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		return s, nil, false
	case "card-save":
		s.editor.SetDraft(s.values())
		dish := strings.TrimSpace(s.values().DishName)
		req, scroll := s.editor.Save()
		closed := func() tea.Msg { return CardClosedMsg{Saved: true, Dish: dish} }
		if scroll {
			return s, tea.Batch(closed, core.ScrollCmd(req.Index, req.Delay)), true
		}
		return s, closed, true
	case "card-discard":
		dish := strings.TrimSpace(s.values().DishName)
		removed := s.editor.Discard()
		return s, func() tea.Msg { return CardClosedMsg{Removed: removed, Dish: dish} }, true
	}
	if scope == core.ScopeCardEditing {
		return s, s.updateInput(msg), false
	}
	return s, nil, false
}

func (s *CardModal) updateInput(msg tea.Msg) tea.Cmd {
	sess, ok := s.editor.Session()
	if !ok || !sess.Editing {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.editor.SetDraft(s.values())
	return cmd
}

func (s *CardModal) loadDraft() {
	sess, _ := s.editor.Session()
	s.inputs[fieldDish].SetValue(sess.Draft.DishName)
	s.inputs[fieldCalories].SetValue(sess.Draft.Calories)
	s.inputs[fieldIngredients].SetValue(sess.Draft.Ingredients)
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.focus = fieldDish
}

func (s *CardModal) setFocus(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (s *CardModal) values() gallery.Fields {
	return gallery.Fields{
		DishName:    s.inputs[fieldDish].Value(),
		Calories:    s.inputs[fieldCalories].Value(),
		Ingredients: s.inputs[fieldIngredients].Value(),
	}
}

func (s *CardModal) View(width, height int) string {
	sess, ok := s.editor.Session()
	if !ok {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(core.ColorMuted)
	lines := []string{
		muted.Render("Photo: ") + sess.Image.Label(),
		"",
	}
	for _, in := range s.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "")
	if sess.Editing {
		lines = append(lines, muted.Render("editing"))
	} else {
		hint := "read only"
		if keys := s.keys.KeysFor("card-edit", core.ScopeCardModal); len(keys) > 0 {
			hint += ", press " + keys[0] + " to edit"
		}
		lines = append(lines, muted.Render(hint))
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
