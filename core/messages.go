package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// NavigateMsg asks the navigator to apply Event.
type NavigateMsg struct {
	Event NavEvent
}

// ActionMsg triggers a page action by name, the same one its key binding
// would run. The command palette uses it.
type ActionMsg struct {
	Action string
}

// ScrollRequestMsg asks the gallery to bring Index into view.
type ScrollRequestMsg struct {
	Index int
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func NavigateCmd(ev NavEvent) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Event: ev} }
}

func PushScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

func ActionCmd(action string) tea.Cmd {
	return func() tea.Msg { return ActionMsg{Action: action} }
}

// ScrollCmd delivers a scroll request, after delay when it is positive.
// Nothing waits for it to be applied.
func ScrollCmd(index int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return ScrollRequestMsg{Index: index} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return ScrollRequestMsg{Index: index} })
}
