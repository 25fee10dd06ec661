package core

import "strings"

// Scopes used by the pages and screens.
const (
	ScopeLogin         = "page:login"
	ScopeCreateAccount = "page:create-account"
	ScopeHome          = "page:home"
	ScopeCardModal     = "screen:card"
	ScopeCardEditing   = "screen:card:editing"
	ScopePicker        = "screen:picker"
	ScopeFinder        = "screen:finder"
	ScopeAlert         = "screen:alert"
	ScopeCommand       = "screen:command"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeHome}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopeLogin, ScopeCreateAccount, ScopeHome}},

		{Keys: []string{"tab", "down"}, Action: "form-next", Description: "next field", Scopes: []string{ScopeLogin, ScopeCreateAccount}},
		{Keys: []string{"shift+tab", "up"}, Action: "form-prev", Description: "prev field", Scopes: []string{ScopeLogin, ScopeCreateAccount}},
		{Keys: []string{"enter"}, Action: "form-submit", Description: "submit", Scopes: []string{ScopeLogin, ScopeCreateAccount}},
		{Keys: []string{"ctrl+n"}, Action: "create-account", Description: "create account", Scopes: []string{ScopeLogin}},
		{Keys: []string{"left"}, Action: "exercise-prev", Description: "", Scopes: []string{ScopeCreateAccount}},
		{Keys: []string{"right"}, Action: "exercise-next", Description: "", Scopes: []string{ScopeCreateAccount}},
		{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: []string{ScopeCreateAccount}},

		{Keys: []string{"left", "h"}, Action: "gallery-prev", Description: "prev card", Scopes: []string{ScopeHome}},
		{Keys: []string{"right", "l"}, Action: "gallery-next", Description: "next card", Scopes: []string{ScopeHome}},
		{Keys: []string{"enter"}, Action: "gallery-open", Description: "open card", Scopes: []string{ScopeHome}},
		{Keys: []string{"u"}, Action: "gallery-upload", Description: "upload photo", Scopes: []string{ScopeHome}},
		{Keys: []string{"c"}, Action: "gallery-camera", Description: "use camera", Scopes: []string{ScopeHome}},
		{Keys: []string{"/"}, Action: "gallery-find", Description: "find dish", Scopes: []string{ScopeHome}},
		{Keys: []string{"o"}, Action: "logout", Description: "log out", Scopes: []string{ScopeHome}},

		{Keys: []string{"e"}, Action: "card-edit", Description: "edit", Scopes: []string{ScopeCardModal}},
		{Keys: []string{"esc"}, Action: "card-cancel-edit", Description: "cancel edit", Scopes: []string{ScopeCardEditing}},
		{Keys: []string{"tab", "down"}, Action: "card-next-field", Description: "next field", Scopes: []string{ScopeCardEditing}},
		{Keys: []string{"shift+tab", "up"}, Action: "card-prev-field", Description: "", Scopes: []string{ScopeCardEditing}},
		{Keys: []string{"ctrl+s"}, Action: "card-save", Description: "save", Scopes: []string{ScopeCardModal, ScopeCardEditing}},
		{Keys: []string{"ctrl+d"}, Action: "card-discard", Description: "discard", Scopes: []string{ScopeCardModal, ScopeCardEditing}},

		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopePicker, ScopeFinder, ScopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopePicker, ScopeFinder, ScopeCommand}},
		{Keys: []string{"enter", "esc"}, Action: "dismiss", Description: "ok", Scopes: []string{ScopeAlert}},
	}
}

// DefaultKeybindingsByAction lists the keys of each action, first binding
// wins. The result has the shape of the config file's keys table.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Used for user overrides from the config file.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
