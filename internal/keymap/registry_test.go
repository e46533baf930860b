package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestCommand_Defaults(t *testing.T) {
	r := NewRegistry(nil)

	assert.Equal(t, "new-note", r.Command(ContextNotes, "n"))
	assert.Equal(t, "delete-note", r.Command(ContextNotes, "d"))
	assert.Equal(t, "quit", r.Command(ContextNotes, "q"), "global fallback")
	assert.Equal(t, "confirm", r.Command(ContextConfirm, "y"))
	assert.Equal(t, "", r.Command(ContextNotes, "Z"))
}

func TestCommand_TextContextsKeepPrintableKeys(t *testing.T) {
	r := NewRegistry(nil)

	assert.Equal(t, "", r.Command(ContextSearch, "q"), "q is typed into the search box")
	assert.Equal(t, "", r.Command(ContextEditor, "r"))
	assert.Equal(t, "quit", r.Command(ContextEditor, "ctrl+c"))
	assert.Equal(t, "save-note", r.Command(ContextEditor, "ctrl+s"))
	assert.Equal(t, "cancel", r.Command(ContextEditor, "esc"))
}

func TestOverrides(t *testing.T) {
	r := NewRegistry(map[string]string{
		"new-note":         "ctrl+n, a",
		"editor.save-note": "ctrl+w",
	})

	assert.Equal(t, "new-note", r.Command(ContextNotes, "ctrl+n"))
	assert.Equal(t, "new-note", r.Command(ContextNotes, "a"))
	assert.Equal(t, "", r.Command(ContextNotes, "n"), "default key replaced")
	assert.Equal(t, "save-note", r.Command(ContextEditor, "ctrl+w"))
	assert.Equal(t, "", r.Command(ContextEditor, "ctrl+s"))
	assert.Equal(t, []string{"ctrl+n", "a"}, r.Keys(ContextNotes, "new-note"))
}

func TestOverrides_EmptyValueIgnored(t *testing.T) {
	r := NewRegistry(map[string]string{"refresh": " , "})
	assert.Equal(t, "refresh", r.Command(ContextNotes, "r"))
}

func TestBinding_MatchesKeyMsg(t *testing.T) {
	r := NewRegistry(nil)
	b := r.Binding(ContextNotes, "yank-note")

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, b))
	assert.Equal(t, "yank", b.Help().Desc)
	assert.False(t, r.Binding(ContextNotes, "no-such-command").Enabled())
}

func TestHelp(t *testing.T) {
	r := NewRegistry(nil)

	var descs []string
	for _, b := range r.Help(ContextNotes) {
		descs = append(descs, b.Help().Desc)
	}
	assert.Equal(t, []string{"open", "new", "delete", "yank", "search", "quit", "refresh"}, descs)

	editor := r.Help(ContextEditor)
	assert.Len(t, editor, 2)
}
