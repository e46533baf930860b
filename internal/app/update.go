package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ocean-notes/internal/keymap"
	"github.com/marcus/ocean-notes/internal/msg"
	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/styles"
	"github.com/marcus/ocean-notes/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.layout()
		return m, nil

	case NotesLoadedMsg:
		if m.ctrl.ApplyLoad(message.Result) {
			if m.restoreID != "" {
				m.selectID(m.restoreID)
				m.restoreID = ""
			}
			m.grid.Clamp(len(m.visibleNotes()))
		}
		return m, nil

	case MutationDoneMsg:
		o := message.Outcome
		var cmds []tea.Cmd
		if m.ctrl.Finish(o) {
			cmds = append(cmds, m.loadCmd())
		}
		if o.Err == nil {
			cmds = append(cmds, msg.ShowToast(successMessage(o.Mutation().Kind()), msg.DefaultToastDuration))
		}
		m.grid.Clamp(len(m.visibleNotes()))
		return m, tea.Batch(cmds...)

	case ConfigReloadedMsg:
		m.applyConfig(message)
		return m, waitForConfig(m.configUpdates)

	case YankedMsg:
		if message.Err != nil {
			m.logger.Warn("app: clipboard", "error", message.Err)
			return m, msg.ShowErrorToast("Copy failed", msg.DefaultToastDuration)
		}
		return m, msg.ShowToast("Copied "+message.Title, msg.DefaultToastDuration)

	case msg.ToastMsg:
		m.toastSeq++
		m.toast = message.Message
		m.toastError = message.IsError
		d := message.Duration
		if d <= 0 {
			d = msg.DefaultToastDuration
		}
		return m, msg.ExpireToast(m.toastSeq, d)

	case msg.ToastExpiredMsg:
		if message.Seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch m.activeModal() {
	case ModalEditor:
		cmd = m.editor.Update(message)
	case ModalNone:
		_, cmd = m.sidebar.Update(message)
	}
	return m, cmd
}

// applyConfig adopts a reloaded config. Store settings need a restart.
func (m *Model) applyConfig(message ConfigReloadedMsg) {
	cfg := message.Config
	if cfg == nil {
		return
	}
	if cfg.UI.Theme != m.cfg.UI.Theme {
		styles.ApplyTheme(cfg.UI.Theme)
	}
	m.keymap = keymap.NewRegistry(cfg.Keymap.Overrides)
	m.showFooter = cfg.UI.ShowFooter
	m.cfg = cfg
	m.layout()
	m.logger.Info("app: config reloaded", "theme", cfg.UI.Theme)
}

// handleKeyMsg routes a key to the focused component.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	context := m.activeContext()
	command := m.keymap.Command(context, k.String())

	switch context {
	case keymap.ContextConfirm:
		return m.handleConfirmKey(k, command)
	case keymap.ContextEditor:
		return m.handleEditorKey(k, command)
	case keymap.ContextSearch:
		return m.handleSearchKey(k, command)
	}
	return m.handleNotesCommand(command)
}

func (m Model) handleConfirmKey(k tea.KeyMsg, command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit":
		return m.quit()
	case "confirm":
		return m.confirmDelete()
	case "cancel":
		m.closeConfirm()
		return m, nil
	}
	switch m.confirm.HandleKey(k) {
	case ui.ActionConfirm:
		return m.confirmDelete()
	case ui.ActionCancel:
		m.closeConfirm()
	}
	return m, nil
}

func (m Model) handleEditorKey(k tea.KeyMsg, command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit":
		return m.quit()
	case "save-note":
		return m.saveEditor()
	case "next-field":
		return m, m.editor.NextField()
	case "cancel":
		m.editor.Close()
		return m, nil
	}
	return m, m.editor.Update(k)
}

func (m Model) handleSearchKey(k tea.KeyMsg, command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit":
		return m.quit()
	case "search-done":
		m.sidebar.Blur()
		return m, nil
	case "search-clear":
		m.sidebar.SetQuery("")
		m.sidebar.Blur()
		m.grid.SetCursor(0, len(m.visibleNotes()))
		return m, nil
	}
	changed, cmd := m.sidebar.Update(k)
	if changed {
		m.grid.SetCursor(0, len(m.visibleNotes()))
	}
	return m, cmd
}

func (m Model) handleNotesCommand(command string) (tea.Model, tea.Cmd) {
	count := len(m.visibleNotes())

	switch command {
	case "quit":
		return m.quit()
	case "refresh":
		return m, m.loadCmd()
	case "toggle-footer":
		m.showFooter = !m.showFooter
		m.layout()
	case "back":
		if m.sidebar.Query() != "" {
			m.sidebar.SetQuery("")
			m.grid.SetCursor(0, len(m.visibleNotes()))
		}
	case "dismiss-error":
		m.ctrl.ClearErr()
		m.layout()

	case "cursor-down":
		m.grid.Move(0, 1, count)
	case "cursor-up":
		m.grid.Move(0, -1, count)
	case "cursor-right":
		m.grid.Move(1, 0, count)
	case "cursor-left":
		m.grid.Move(-1, 0, count)
	case "cursor-top":
		m.grid.SetCursor(0, count)
	case "cursor-bottom":
		m.grid.SetCursor(count-1, count)

	case "search":
		return m, m.sidebar.Focus()
	case "new-note":
		return m, m.editor.Open(nil)
	case "open-note":
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		if note.IsTemp(n.ID) {
			return m, msg.ShowToast("Note is still saving", msg.DefaultToastDuration)
		}
		return m, m.editor.Open(&n)
	case "delete-note":
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		if note.IsTemp(n.ID) {
			return m, msg.ShowToast("Note is still saving", msg.DefaultToastDuration)
		}
		m.openConfirm(n)
	case "yank-note":
		if n, ok := m.selected(); ok {
			return m, yankCmd(n)
		}
	}
	return m, nil
}

// saveEditor submits the editor. Unchanged edits close without a request.
func (m Model) saveEditor() (tea.Model, tea.Cmd) {
	if !m.editor.CanSave() {
		return m, nil
	}
	in := m.editor.Input()
	id, isNew, dirty := m.editor.NoteID(), m.editor.IsNew(), m.editor.Dirty()
	m.editor.Close()

	if isNew {
		mut := m.ctrl.NewCreate(in)
		p := m.ctrl.Begin(mut)
		m.selectID(mut.TempID())
		m.layout()
		return m, m.mutateCmd(p)
	}
	if !dirty {
		return m, nil
	}
	p := m.ctrl.Begin(m.ctrl.NewUpdate(id, in))
	m.layout()
	return m, m.mutateCmd(p)
}

func (m *Model) openConfirm(n note.Note) {
	d := ui.NewConfirmDialog("Delete note?",
		fmt.Sprintf("“%s” will be permanently deleted.", note.TruncateWidth(n.DisplayTitle(), 60)))
	d.ConfirmLabel = " Delete "
	d.Danger = true
	m.confirm = d
	m.deleteID = n.ID
}

func (m *Model) closeConfirm() {
	m.confirm = nil
	m.deleteID = ""
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.deleteID
	m.closeConfirm()
	if id == "" {
		return m, nil
	}
	p := m.ctrl.Begin(m.ctrl.NewDelete(id))
	m.grid.Clamp(len(m.visibleNotes()))
	m.layout()
	return m, m.mutateCmd(p)
}

// quit stops accepting load results, saves the session and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveSession()
	m.ctrl.Close()
	return m, tea.Quit
}
