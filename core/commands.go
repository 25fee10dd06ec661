package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette entry. Disabled, when set, is asked every time the
// palette searches or runs the command.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

func (c Command) available(scope string) bool {
	return len(c.Scopes) == 0 || slices.Contains(c.Scopes, "*") || slices.Contains(c.Scopes, scope)
}

func (c Command) disabled(m *Model) (bool, string) {
	if c.Disabled == nil {
		return false, ""
	}
	return c.Disabled(m)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	score     int
}

// CommandRegistry looks commands up by ID for the palette.
type CommandRegistry struct {
	byID map[string]Command
}

func NewCommandRegistry(initial []Command) *CommandRegistry {
	r := &CommandRegistry{byID: map[string]Command{}}
	for _, c := range initial {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same ID. Commands without
// an ID are ignored.
func (r *CommandRegistry) Register(c Command) {
	if id := strings.TrimSpace(c.ID); id != "" {
		r.byID[id] = c
	}
}

// Search returns the commands of scope whose name, description or ID
// contains query. Names matching as a subsequence rank first, enabled
// commands before disabled ones.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]CommandResult, 0, len(r.byID))
	for _, c := range r.byID {
		if !c.available(scope) {
			continue
		}
		text := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if !strings.Contains(text, q) {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		res.Disabled, res.Reason = c.disabled(m)
		_, res.score = fuzzyMatchScore(c.Name, q)
		out = append(out, res)
	}
	slices.SortFunc(out, func(a, b CommandResult) int {
		return cmp.Or(
			boolRank(a.Disabled)-boolRank(b.Disabled),
			cmp.Compare(b.score, a.score),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Execute runs the command with id unless it is unknown or disabled, in
// which case the status line says why.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, found := r.byID[id]
	if !found {
		return StatusCmd("Unknown command: " + id)
	}
	off, why := c.disabled(m)
	if off {
		return StatusCmd(cmp.Or(why, "command is disabled"))
	}
	if m != nil && m.Logger != nil {
		m.Logger.Debug("run command", "id", id)
	}
	if c.Execute != nil {
		return c.Execute(m)
	}
	return nil
}
