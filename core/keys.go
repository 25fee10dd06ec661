package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to a named action inside the listed scopes. An empty
// Scopes list or "*" matches everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) matchesScope(scope string) bool {
	return len(b.Scopes) == 0 || slices.Contains(b.Scopes, "*") || slices.Contains(b.Scopes, scope)
}

func (b KeyBinding) matchesKey(pressed string) bool {
	return slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed })
}

// shellActions are handled by the Model before a page sees the key.
var shellActions = []string{"quit", "open-command-palette"}

// KeyRegistry resolves key presses to actions. Earlier bindings win when
// two share a key in the same scope.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// Bindings returns a copy of every registered binding.
func (r *KeyRegistry) Bindings() []KeyBinding { return slices.Clone(r.bindings) }

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.matchesScope(scope) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	return slices.ContainsFunc(r.bindings, func(b KeyBinding) bool {
		return b.Action == action && b.matchesScope(scope) && b.matchesKey(pressed)
	})
}

// ActionFor returns the page or screen action bound to msg within scope.
// Shell actions are never reported.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if slices.Contains(shellActions, b.Action) {
			continue
		}
		if b.matchesScope(scope) && b.matchesKey(pressed) {
			return b.Action, true
		}
	}
	return "", false
}

// KeysFor lists the keys bound to action in scope.
func (r *KeyRegistry) KeysFor(action, scope string) []string {
	for _, b := range r.bindings {
		if b.Action == action && b.matchesScope(scope) {
			return slices.Clone(b.Keys)
		}
	}
	return nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
