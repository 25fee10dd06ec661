package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/credentials"
	"github.com/jask/foodgallery/screens"
)

const (
	loginUsername = iota
	loginPassword
)

// LoginPage collects a username and password. Any non-blank pair logs in.
type LoginPage struct {
	form form
}

func NewLoginPage() *LoginPage {
	return &LoginPage{form: newForm(0,
		formField{label: "Username", placeholder: "username"},
		formField{label: "Password", placeholder: "password", secret: true},
	)}
}

func (p *LoginPage) Title() string { return "Login" }
func (p *LoginPage) Scope() string { return core.ScopeLogin }

func (p *LoginPage) Enter(m *core.Model) tea.Cmd {
	return p.form.reset()
}

func (p *LoginPage) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.ActionMsg:
		return p.run(m, msg.Action)
	case tea.KeyMsg:
		if action, ok := m.Keys().ActionFor(msg, core.ScopeLogin); ok {
			return p.run(m, action)
		}
	}
	return p.form.update(msg)
}

func (p *LoginPage) run(m *core.Model, action string) tea.Cmd {
	switch action {
	case "form-next":
		return p.form.next()
	case "form-prev":
		return p.form.prev()
	case "create-account":
		return core.NavigateCmd(core.EventCreateAccount)
	case "form-submit":
		login := credentials.Login{
			Username: p.form.value(loginUsername),
			Password: p.form.value(loginPassword),
		}
		var cmd tea.Cmd
		err := credentials.Submit(login, func() {
			m.Logger.Info("login", "user", login.Username)
			cmd = core.NavigateCmd(core.EventLogin)
		})
		if err != nil {
			m.Logger.Debug("login rejected", "err", err)
			title, body := credentials.Notice(err)
			m.PushScreen(screens.NewErrorAlert(m.Keys(), title, body))
			return nil
		}
		return cmd
	}
	return nil
}

func (p *LoginPage) View(m *core.Model, width, height int) string {
	return renderFormPage("Food Gallery", "Log in to continue", p.form.rowViews(),
		"enter: log in  tab: next field  ctrl+n: create account", width, height)
}
