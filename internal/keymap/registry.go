package keymap

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
	Help    string // footer label; empty hides the binding from help
}

// Registry resolves key presses to commands.
type Registry struct {
	bindings []Binding
	byKey    map[string]string // context+"\x00"+key -> command
}

// NewRegistry builds a registry from the defaults plus user overrides.
// Override keys are "command" (all contexts) or "context.command"; values
// are comma separated key lists that replace the default keys.
func NewRegistry(overrides map[string]string) *Registry {
	bindings := applyOverrides(DefaultBindings(), overrides)
	r := &Registry{bindings: bindings, byKey: make(map[string]string, len(bindings))}
	for _, b := range bindings {
		r.byKey[b.Context+"\x00"+b.Key] = b.Command
	}
	return r
}

func applyOverrides(defaults []Binding, overrides map[string]string) []Binding {
	if len(overrides) == 0 {
		return defaults
	}

	// Deterministic order so "context.command" wins over "command".
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.Count(names[i], ".") < strings.Count(names[j], ".")
	})

	out := defaults
	for _, name := range names {
		ctx, cmd := "", name
		if i := strings.IndexByte(name, '.'); i >= 0 {
			ctx, cmd = name[:i], name[i+1:]
		}
		keys := splitKeys(overrides[name])
		if len(keys) == 0 {
			continue
		}

		var kept []Binding
		contexts := map[string]string{} // context -> help
		for _, b := range out {
			if b.Command == cmd && (ctx == "" || b.Context == ctx) {
				if _, seen := contexts[b.Context]; !seen || b.Help != "" {
					contexts[b.Context] = b.Help
				}
				continue
			}
			kept = append(kept, b)
		}
		if len(contexts) == 0 && ctx != "" {
			contexts[ctx] = ""
		}
		ctxNames := make([]string, 0, len(contexts))
		for c := range contexts {
			ctxNames = append(ctxNames, c)
		}
		sort.Strings(ctxNames)
		for _, c := range ctxNames {
			for i, k := range keys {
				help := ""
				if i == 0 {
					help = contexts[c]
				}
				kept = append(kept, Binding{Key: k, Command: cmd, Context: c, Help: help})
			}
		}
		out = kept
	}
	return out
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Command returns the command bound to keyStr in context, falling back to
// the global context. It returns "" when nothing matches.
func (r *Registry) Command(context, keyStr string) string {
	if cmd, ok := r.byKey[context+"\x00"+keyStr]; ok {
		return cmd
	}
	if context == ContextSearch || context == ContextEditor {
		// Text inputs keep printable keys for themselves.
		if cmd, ok := r.byKey[ContextGlobal+"\x00"+keyStr]; ok && isChord(keyStr) {
			return cmd
		}
		return ""
	}
	return r.byKey[ContextGlobal+"\x00"+keyStr]
}

// isChord reports whether keyStr is a modified key such as "ctrl+c".
func isChord(keyStr string) bool {
	return strings.HasPrefix(keyStr, "ctrl+") || strings.HasPrefix(keyStr, "alt+")
}

// Keys returns the keys bound to command in context.
func (r *Registry) Keys(context, command string) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Context == context && b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// Binding returns command as a bubbles key binding for matching and help.
func (r *Registry) Binding(context, command string) key.Binding {
	keys := r.Keys(context, command)
	help := command
	for _, b := range r.bindings {
		if b.Context == context && b.Command == command && b.Help != "" {
			help = b.Help
			break
		}
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

// Help returns the bindings with help text for context, in definition order.
// The notes context also lists the global bindings.
func (r *Registry) Help(context string) []key.Binding {
	contexts := []string{context}
	if context == ContextNotes {
		contexts = append(contexts, ContextGlobal)
	}
	var out []key.Binding
	seen := map[string]bool{}
	for _, ctx := range contexts {
		for _, b := range r.bindings {
			if b.Context != ctx || b.Help == "" || seen[b.Command] {
				continue
			}
			seen[b.Command] = true
			out = append(out, r.Binding(ctx, b.Command))
		}
		if context == ContextGlobal {
			break
		}
	}
	return out
}
