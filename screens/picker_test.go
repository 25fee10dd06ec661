package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/foodgallery/core"
)

func TestPickerModalSelects(t *testing.T) {
	items := []PickerItem{{ID: "a", Label: "apple.jpg"}, {ID: "b", Label: "burger.png"}}
	var got PickerItem
	s := NewPickerModal(nil, "Photos", core.ScopePicker, items, func(it PickerItem) tea.Msg {
		got = it
		return nil
	})
	for _, r := range "burg" {
		s.Update(runes(string(r)))
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("expected selection to close")
	}
	cmd()
	if got.ID != "b" {
		t.Fatalf("selected %q", got.ID)
	}
}

func TestPickerModalEscCancels(t *testing.T) {
	s := NewPickerModal(nil, "Photos", core.ScopePicker, nil, nil).WithEmptyText("No photos found")
	if !strings.Contains(s.View(40, 10), "No photos found") {
		t.Fatalf("missing empty text")
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd != nil {
		t.Fatalf("esc should close without command")
	}
}

func TestAlertDismissRunsThen(t *testing.T) {
	ran := false
	a := NewAlert(nil, "Account Created", "Username: bob", func() tea.Msg {
		ran = true
		return nil
	})
	if _, _, pop := a.Update(runes("x")); pop {
		t.Fatalf("random key should not dismiss")
	}
	_, cmd, pop := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should dismiss")
	}
	cmd()
	if !ran {
		t.Fatalf("then not run")
	}
}

func TestCommandScreenSelect(t *testing.T) {
	opts := []CommandOption{{ID: "log-out", Name: "Log out"}, {ID: "quit", Name: "Quit"}}
	search := func(q string) []CommandOption {
		var out []CommandOption
		for _, o := range opts {
			if strings.Contains(strings.ToLower(o.Name), strings.ToLower(q)) {
				out = append(out, o)
			}
		}
		return out
	}
	s := NewCommandScreen(nil, core.ScopeHome, search, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
	for _, r := range "qu" {
		s.Update(runes(string(r)))
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("expected selection")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "quit" {
		t.Fatalf("unexpected msg %#v", msg)
	}
}
