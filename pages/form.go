package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/widgets"
)

type formField struct {
	label       string
	placeholder string
	secret      bool
}

// form is a column of text inputs with one focused row. Rows past the last
// input (choice rows) are owned by the page and only tracked by index.
type form struct {
	fields []formField
	inputs []textinput.Model
	rows   int
	focus  int
}

func newForm(extraRows int, fields ...formField) form {
	f := form{fields: fields, rows: len(fields) + extraRows}
	f.inputs = make([]textinput.Model, len(fields))
	for i, fd := range fields {
		inp := textinput.New()
		inp.Prompt = ""
		inp.Placeholder = fd.placeholder
		inp.CharLimit = 64
		inp.Width = 28
		if fd.secret {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		f.inputs[i] = inp
	}
	return f
}

func (f *form) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	return f.setFocus(0)
}

func (f *form) setFocus(i int) tea.Cmd {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = (i + f.rows) % f.rows
	if f.focus < len(f.inputs) {
		return f.inputs[f.focus].Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

func (f *form) onInput() bool { return f.focus < len(f.inputs) }

func (f *form) update(msg tea.Msg) tea.Cmd {
	if !f.onInput() {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string { return f.inputs[i].Value() }

func (f *form) setValue(i int, v string) { f.inputs[i].SetValue(v) }

func (f *form) rowViews() []string {
	out := make([]string, 0, len(f.inputs))
	for i, in := range f.inputs {
		row := widgets.Field{Label: f.fields[i].label, Value: in.View(), Focused: i == f.focus, Accent: core.ColorAccent}
		out = append(out, row.Render(60, 1))
	}
	return out
}

var (
	pageTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(core.ColorStrong)
	pageSubtitleStyle = lipgloss.NewStyle().Foreground(core.ColorMuted)
	hintStyle         = lipgloss.NewStyle().Foreground(core.ColorMuted).Italic(true)
)

func renderFormPage(title, subtitle string, rows []string, hint string, width, height int) string {
	lines := []string{pageTitleStyle.Render(title), pageSubtitleStyle.Render(subtitle), ""}
	lines = append(lines, rows...)
	lines = append(lines, "", hintStyle.Render(hint))
	block := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
