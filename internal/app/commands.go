package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ocean-notes/internal/config"
	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/notesync"
)

// Message types for tea.Cmd
type (
	// NotesLoadedMsg carries the result of a list fetch.
	NotesLoadedMsg struct {
		Result notesync.LoadResult
	}

	// MutationDoneMsg carries the client's answer to a pending mutation.
	MutationDoneMsg struct {
		Outcome notesync.Outcome
	}

	// ConfigReloadedMsg is sent when the config file changes on disk.
	ConfigReloadedMsg struct {
		Config *config.Config
	}

	// YankedMsg reports a clipboard copy.
	YankedMsg struct {
		Title string
		Err   error
	}
)

// loadCmd fetches the list off the update loop.
func (m Model) loadCmd() tea.Cmd {
	fetch, ctx := m.ctrl.FetchFunc(), m.ctx
	return func() tea.Msg {
		return NotesLoadedMsg{Result: fetch(ctx)}
	}
}

// mutateCmd sends an optimistically applied mutation to the client.
func (m Model) mutateCmd(p notesync.Pending) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return MutationDoneMsg{Outcome: ctrl.Run(ctx, p)}
	}
}

// waitForConfig delivers the next config from ch.
func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// yankCmd copies a note's title and content to the clipboard.
func yankCmd(n note.Note) tea.Cmd {
	return func() tea.Msg {
		text := n.DisplayTitle()
		if n.Content != "" {
			text += "\n\n" + n.Content
		}
		return YankedMsg{Title: n.DisplayTitle(), Err: clipboard.WriteAll(text)}
	}
}

// successMessage is the toast shown when a mutation is confirmed.
func successMessage(kind string) string {
	switch kind {
	case "create":
		return "Note created"
	case "update":
		return "Note saved"
	case "delete":
		return "Note deleted"
	}
	return ""
}
