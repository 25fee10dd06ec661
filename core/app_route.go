package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case StatusMsg:
		m.status, m.statusErr = msg.Text, msg.IsErr
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
	case PopScreenMsg:
		m.screens.Pop()
	case CommandExecuteMsg:
		cmd = m.commands.Execute(msg.CommandID, &m)
	case NavigateMsg:
		cmd = m.Navigate(msg.Event)
	case ActionMsg:
		cmd = m.toPage(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		// Ticks, async results and cursor blinks reach both the top screen
		// and the page underneath it.
		cmd = tea.Batch(m.toScreen(msg), m.toPage(msg))
	}
	return m, cmd
}

// handleKey routes a key press: the top screen owns the keyboard, otherwise
// shell bindings run before the page sees the key.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.screens.Top() != nil {
		return m.toScreen(msg)
	}
	scope := m.ActiveScope()
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil:
		m.screens.Push(m.OpenCommandModal(m, scope))
		return nil
	}
	return m.toPage(msg)
}

func (m *Model) toPage(msg tea.Msg) tea.Cmd {
	p := m.ActivePage()
	if p == nil {
		return nil
	}
	return p.Update(m, msg)
}

// toScreen delivers msg to the top screen and pops it when it asks to close.
func (m *Model) toScreen(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	if top == nil {
		return nil
	}
	next, cmd, done := top.Update(msg)
	if done {
		m.screens.Pop()
	} else {
		m.screens.ReplaceTop(next)
	}
	return cmd
}
