package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	help     map[Action]key.Binding
}

// NewResolver creates a resolver from bindings. When a key is bound twice
// the first binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		help:     make(map[Action]key.Binding),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, taken := r.bindings[k]; !taken {
				r.bindings[k] = b.Action
			}
		}
		r.byAction[b.Action] = dedupe(append(r.byAction[b.Action], b.Keys...))
		r.help[b.Action] = key.NewBinding(
			key.WithKeys(r.byAction[b.Action]...),
			key.WithHelp(helpKeys(r.byAction[b.Action]), strings.ToLower(b.Description)),
		)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Help returns help bindings for actions, in the order given. Unknown
// actions are skipped.
func (r *Resolver) Help(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := r.help[a]; ok {
			out = append(out, b)
		}
	}
	return out
}

// HelpByContext returns the help bindings of every action declared in
// context, in declaration order.
func (r *Resolver) HelpByContext(context string) []key.Binding {
	var actions []Action
	for _, b := range ByContext(context) {
		actions = append(actions, b.Action)
	}
	return r.Help(actions...)
}

// helpKeys renders keys for display, e.g. "k/up". Space is spelled out.
func helpKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, "/")
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
