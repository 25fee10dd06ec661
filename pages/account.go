package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/credentials"
	"github.com/jask/foodgallery/screens"
	"github.com/jask/foodgallery/widgets"
)

const (
	accountUsername = iota
	accountPassword
	accountEmail
	accountHeight
	accountWeight
	accountExercise
)

// AccountPage is the create-account form. Nothing is stored; a valid form
// shows a summary and returns to login.
type AccountPage struct {
	form     form
	exercise credentials.Exercise
}

func NewAccountPage() *AccountPage {
	return &AccountPage{
		form: newForm(1,
			formField{label: "Username", placeholder: "username"},
			formField{label: "Password", placeholder: "password", secret: true},
			formField{label: "Email", placeholder: "you@example.com"},
			formField{label: "Height (cm)", placeholder: "170"},
			formField{label: "Weight (kg)", placeholder: "65"},
		),
		exercise: credentials.ExercisePlaceholder,
	}
}

func (p *AccountPage) Title() string { return "Create Account" }
func (p *AccountPage) Scope() string { return core.ScopeCreateAccount }

func (p *AccountPage) Enter(m *core.Model) tea.Cmd {
	p.exercise = credentials.ExercisePlaceholder
	return p.form.reset()
}

func (p *AccountPage) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.ActionMsg:
		return p.run(m, msg.Action)
	case tea.KeyMsg:
		action, ok := m.Keys().ActionFor(msg, core.ScopeCreateAccount)
		// Arrow keys move the text cursor unless the exercise row is focused.
		if ok && (p.form.onInput() && (action == "exercise-prev" || action == "exercise-next")) {
			ok = false
		}
		if ok {
			return p.run(m, action)
		}
	}
	return p.form.update(msg)
}

func (p *AccountPage) run(m *core.Model, action string) tea.Cmd {
	switch action {
	case "form-next":
		return p.form.next()
	case "form-prev":
		return p.form.prev()
	case "exercise-prev":
		p.exercise = p.exercise.Cycle(-1)
	case "exercise-next":
		p.exercise = p.exercise.Cycle(1)
	case "back":
		return core.NavigateCmd(core.EventBack)
	case "form-submit":
		acct := p.account()
		err := credentials.Submit(acct, func() {
			m.Logger.Info("account created", "user", acct.Username, "exercise", acct.Exercise)
			m.PushScreen(screens.NewAlert(m.Keys(), "Account Created", acct.Summary(), nil))
		})
		if err != nil {
			title, body := credentials.Notice(err)
			m.PushScreen(screens.NewErrorAlert(m.Keys(), title, body))
			return nil
		}
		return core.NavigateCmd(core.EventBack)
	}
	return nil
}

func (p *AccountPage) account() credentials.Account {
	return credentials.Account{
		Username: p.form.value(accountUsername),
		Password: p.form.value(accountPassword),
		Email:    p.form.value(accountEmail),
		Height:   p.form.value(accountHeight),
		Weight:   p.form.value(accountWeight),
		Exercise: p.exercise,
	}
}

func (p *AccountPage) View(m *core.Model, width, height int) string {
	rows := p.form.rowViews()
	choice := p.exercise.Label()
	if !p.exercise.Chosen() {
		choice = lipgloss.NewStyle().Foreground(core.ColorMuted).Render(choice)
	}
	focused := p.form.focus == accountExercise
	if focused {
		choice = "‹ " + choice + " ›"
	}
	rows = append(rows, widgets.Field{Label: "Exercise", Value: choice, Focused: focused, Accent: core.ColorAccent}.Render(60, 1))
	return renderFormPage("Create Account", "Enter your information", rows,
		"enter: create  tab: next field  ←/→: exercise  esc: back", width, height)
}
