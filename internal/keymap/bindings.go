package keymap

// Contexts a binding can belong to. Global bindings apply in every context
// that does not capture text.
const (
	ContextGlobal  = "global"
	ContextNotes   = "notes"
	ContextSearch  = "search"
	ContextEditor  = "editor"
	ContextConfirm = "confirm"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: "quit", Context: ContextGlobal, Help: "quit"},
		{Key: "ctrl+c", Command: "quit", Context: ContextGlobal},
		{Key: "r", Command: "refresh", Context: ContextGlobal, Help: "refresh"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: ContextGlobal},
		{Key: "esc", Command: "back", Context: ContextGlobal},

		// Notes grid
		{Key: "j", Command: "cursor-down", Context: ContextNotes},
		{Key: "down", Command: "cursor-down", Context: ContextNotes},
		{Key: "k", Command: "cursor-up", Context: ContextNotes},
		{Key: "up", Command: "cursor-up", Context: ContextNotes},
		{Key: "l", Command: "cursor-right", Context: ContextNotes},
		{Key: "right", Command: "cursor-right", Context: ContextNotes},
		{Key: "h", Command: "cursor-left", Context: ContextNotes},
		{Key: "left", Command: "cursor-left", Context: ContextNotes},
		{Key: "g", Command: "cursor-top", Context: ContextNotes},
		{Key: "G", Command: "cursor-bottom", Context: ContextNotes},
		{Key: "enter", Command: "open-note", Context: ContextNotes, Help: "open"},
		{Key: "n", Command: "new-note", Context: ContextNotes, Help: "new"},
		{Key: "d", Command: "delete-note", Context: ContextNotes, Help: "delete"},
		{Key: "y", Command: "yank-note", Context: ContextNotes, Help: "yank"},
		{Key: "/", Command: "search", Context: ContextNotes, Help: "search"},
		{Key: "x", Command: "dismiss-error", Context: ContextNotes},

		// Search input
		{Key: "enter", Command: "search-done", Context: ContextSearch},
		{Key: "esc", Command: "search-clear", Context: ContextSearch, Help: "clear"},

		// Editor modal
		{Key: "ctrl+s", Command: "save-note", Context: ContextEditor, Help: "save"},
		{Key: "tab", Command: "next-field", Context: ContextEditor},
		{Key: "shift+tab", Command: "next-field", Context: ContextEditor},
		{Key: "esc", Command: "cancel", Context: ContextEditor, Help: "cancel"},

		// Delete confirmation
		{Key: "y", Command: "confirm", Context: ContextConfirm, Help: "delete"},
		{Key: "n", Command: "cancel", Context: ContextConfirm, Help: "keep"},
		{Key: "esc", Command: "cancel", Context: ContextConfirm},
	}
}
