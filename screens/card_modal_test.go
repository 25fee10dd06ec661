package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/gallery"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, s core.Screen, text string) core.Screen {
	t.Helper()
	for _, r := range text {
		next, _, pop := s.Update(runes(string(r)))
		if pop {
			t.Fatalf("modal closed while typing %q", text)
		}
		s = next
	}
	return s
}

func sampleEditor(n int) *gallery.Editor {
	cards := make([]gallery.Card, n)
	for i := range cards {
		cards[i] = gallery.NewCard(gallery.AssetImage("dish.png"), gallery.Fields{DishName: string(rune('A' + i)), Calories: "100"})
	}
	return gallery.NewEditor(gallery.NewList(cards...), gallery.NewTracker(30), nil)
}

func TestCardModalReadOnlyUntilEdit(t *testing.T) {
	ed := sampleEditor(3)
	if _, ok := ed.OpenForEdit(1); !ok {
		t.Fatalf("open failed")
	}
	var s core.Screen = NewCardModal(ed, nil)
	s = typeInto(t, s, "xyz")
	sess, _ := ed.Session()
	if sess.Draft.DishName != "B" || sess.Editing {
		t.Fatalf("typing before edit changed draft: %+v", sess)
	}

	s, _, _ = s.Update(runes("e"))
	if s.Scope() != core.ScopeCardEditing {
		t.Fatalf("scope = %q", s.Scope())
	}
	s = typeInto(t, s, "x")
	sess, _ = ed.Session()
	if sess.Draft.DishName != "Bx" {
		t.Fatalf("draft = %q, want Bx", sess.Draft.DishName)
	}
}

func TestCardModalCancelEditRestoresBackup(t *testing.T) {
	ed := sampleEditor(2)
	ed.OpenForEdit(0)
	var s core.Screen = NewCardModal(ed, nil)
	s, _, _ = s.Update(runes("e"))
	s = typeInto(t, s, "zz")
	s, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if pop {
		t.Fatalf("cancel edit must keep the modal open")
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !pop {
		t.Fatalf("save should close the modal")
	}
	if msg, ok := cmd().(CardClosedMsg); !ok || !msg.Saved {
		t.Fatalf("unexpected msg %#v", msg)
	}
	card, _ := ed.List().At(0)
	if card.DishName != "A" {
		t.Fatalf("dish = %q, want A", card.DishName)
	}
}

func TestCardModalSaveNewAppendsAndScrolls(t *testing.T) {
	ed := sampleEditor(2)
	ed.OpenForNew(gallery.FileImage("/tmp/a.jpg"), gallery.Fields{DishName: "Fish and Chips", Calories: "650"})
	var s core.Screen = NewCardModal(ed, nil)
	if s.Title() != "New Card" {
		t.Fatalf("title = %q", s.Title())
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !pop || cmd == nil {
		t.Fatalf("expected close with commands")
	}
	if ed.List().Len() != 3 || ed.IsOpen() {
		t.Fatalf("len = %d open = %v", ed.List().Len(), ed.IsOpen())
	}
}

func TestCardModalDiscardEditRemoves(t *testing.T) {
	ed := sampleEditor(5)
	ed.OpenForEdit(2)
	var s core.Screen = NewCardModal(ed, nil)
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !pop {
		t.Fatalf("discard should close")
	}
	msg, ok := cmd().(CardClosedMsg)
	if !ok || !msg.Removed || msg.Dish != "C" {
		t.Fatalf("unexpected msg %#v", msg)
	}
	if ed.List().Len() != 4 {
		t.Fatalf("len = %d, want 4", ed.List().Len())
	}
	card, _ := ed.List().At(2)
	if card.DishName != "D" {
		t.Fatalf("card at 2 = %q, want D", card.DishName)
	}
}

func TestCardModalPopsWhenSessionGone(t *testing.T) {
	ed := sampleEditor(1)
	ed.OpenForEdit(0)
	s := NewCardModal(ed, nil)
	ed.Discard()
	if _, _, pop := s.Update(runes("e")); !pop {
		t.Fatalf("expected pop without a session")
	}
}

func TestCardModalEditSaveKeepsLongFields(t *testing.T) {
	long := strings.Repeat("rice, nori, salmon, ", 10) + "wasabi "
	fields := gallery.Fields{DishName: " Sushi ", Calories: "350", Ingredients: long}
	ed := gallery.NewEditor(gallery.NewList(gallery.NewCard(gallery.AssetImage("sushi.png"), fields)), gallery.NewTracker(30), nil)
	ed.OpenForEdit(0)
	var s core.Screen = NewCardModal(ed, nil)
	s, _, _ = s.Update(runes("e"))
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}); !pop {
		t.Fatalf("save should close the modal")
	}
	card, _ := ed.List().At(0)
	if card.Ingredients != long {
		t.Fatalf("ingredients changed: len %d, want %d", len(card.Ingredients), len(long))
	}
	if card.DishName != " Sushi " {
		t.Fatalf("dish = %q, want untouched", card.DishName)
	}
}

func TestCardModalHintFollowsEditBinding(t *testing.T) {
	ed := sampleEditor(1)
	ed.OpenForEdit(0)
	if view := NewCardModal(ed, nil).View(60, 20); !strings.Contains(view, "press e to edit") {
		t.Fatalf("missing default hint in %q", view)
	}
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), map[string][]string{"card-edit": {"i"}}))
	s := NewCardModal(ed, keys)
	if view := s.View(60, 20); !strings.Contains(view, "press i to edit") {
		t.Fatalf("hint ignores override: %q", view)
	}
	next, _, _ := s.Update(runes("i"))
	if next.Scope() != core.ScopeCardEditing {
		t.Fatalf("override key should start editing")
	}
	if strings.Contains(next.View(60, 20), "to edit") {
		t.Fatalf("hint shown while editing")
	}
}
