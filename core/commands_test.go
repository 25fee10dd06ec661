package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{ScopeHome}},
		{ID: "b", Name: "Beta", Scopes: []string{ScopeLogin}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(nil, nil, reg, nil)
	resA := reg.Search("", ScopeHome, &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a on home, got %+v", resA)
	}
	resB := reg.Search("", ScopeLogin, &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command on login, got %+v", resB)
	}
}

func TestExecuteDisabledAndUnknown(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(m *Model) (bool, string) { return true, "" }, Execute: func(m *Model) tea.Cmd {
			ran = true
			return nil
		}},
	})
	m := NewModel(nil, nil, reg, nil)
	msg := reg.Execute("off", &m)()
	if ran {
		t.Fatalf("disabled command executed")
	}
	if st, ok := msg.(StatusMsg); !ok || st.Text != "command is disabled" {
		t.Fatalf("unexpected msg %#v", msg)
	}
	if st, ok := reg.Execute("missing", &m)().(StatusMsg); !ok || st.Text != "Unknown command: missing" {
		t.Fatalf("unexpected unknown msg %#v", st)
	}
}
