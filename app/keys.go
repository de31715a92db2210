package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes used by the contact browser. The dialog scope is active whenever a
// session is open on the main host; everything else runs under ScopeMain.
const (
	ScopeMain   = "main"
	ScopeDialog = "dialog"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// BindingsForScope returns the bindings active in scope, in registration
// order, for footer help.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether the pressed key triggers action in scope. Key
// names are matched as bubbletea reports them (msg.String()).
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := msg.String()
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && slices.Contains(b.Keys, pressed) {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeMain}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "row down", Scopes: []string{ScopeMain}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "row up", Scopes: []string{ScopeMain}},
		{Keys: []string{"a"}, Action: "add-contact", Description: "add", Scopes: []string{ScopeMain}},
		{Keys: []string{"enter"}, Action: "open-detail", Description: "detail", Scopes: []string{ScopeMain}},
		{Keys: []string{"t"}, Action: "assign-tag", Description: "tag", Scopes: []string{ScopeMain}},
		{Keys: []string{"r"}, Action: "reload", Description: "reload", Scopes: []string{ScopeMain}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeDialog}},
	}
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	return slices.Contains(scopes, "*") || slices.Contains(scopes, scope)
}
