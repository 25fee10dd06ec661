package core

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Screen is an overlay pushed on top of the active page (modals, pickers,
// alerts). It gets keys before the page and pops itself by returning true.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Page is one of the navigator's full-screen views.
type Page interface {
	Title() string
	Scope() string
	// Enter is called every time the navigator switches to the page.
	Enter(m *Model) tea.Cmd
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model, width, height int) string
}

type Model struct {
	width     int
	height    int
	nav       Navigator
	pages     map[ScreenState]Page
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	Logger    *log.Logger

	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(pages map[ScreenState]Page, keys *KeyRegistry, commands *CommandRegistry, logger *log.Logger) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		pages:    pages,
		keys:     keys,
		commands: commands,
		Logger:   logger,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	if p := m.ActivePage(); p != nil {
		return p.Enter(&m)
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Navigator() Navigator { return m.nav }

func (m Model) ActivePage() Page {
	return m.pages[m.nav.State()]
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if p := m.ActivePage(); p != nil {
		return p.Scope()
	}
	return "app"
}

// Navigate applies ev and mounts the new page when it changed.
func (m *Model) Navigate(ev NavEvent) tea.Cmd {
	from := m.nav.State()
	if !m.nav.Apply(ev) {
		return nil
	}
	to := m.nav.State()
	m.Logger.Debug("navigate", "event", ev, "from", from, "to", to)
	if p := m.ActivePage(); p != nil {
		return p.Enter(m)
	}
	return nil
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) TopScreen() Screen { return m.screens.Top() }

func (m Model) ScreenCount() int { return m.screens.Len() }

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) CommandRegistry() *CommandRegistry { return m.commands }

func (m Model) Size() (int, int) { return m.width, m.height }
