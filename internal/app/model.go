// Package app is the root Bubble Tea model: a search sidebar, the note
// grid, the editor modal and the delete confirmation.
package app

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ocean-notes/internal/config"
	"github.com/marcus/ocean-notes/internal/keymap"
	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/notesync"
	"github.com/marcus/ocean-notes/internal/state"
	"github.com/marcus/ocean-notes/internal/ui"
)

// ModalKind identifies an app-level modal. Lower values have priority for
// rendering and input routing.
type ModalKind int

const (
	ModalNone    ModalKind = iota
	ModalConfirm           // delete confirmation
	ModalEditor            // create/edit note
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx           context.Context
	cfg           *config.Config
	ctrl          *notesync.Controller
	keymap        *keymap.Registry
	logger        *slog.Logger
	configUpdates <-chan *config.Config

	width, height int
	ready         bool
	showFooter    bool

	sidebar ui.Sidebar
	grid    ui.Grid
	editor  *ui.Editor

	confirm  *ui.ConfirmDialog
	deleteID string

	// restoreID is selected once the first load arrives.
	restoreID string

	toast      string
	toastError bool
	toastSeq   int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithContext sets the context used for client calls.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithConfigUpdates applies each config received on ch while running.
func WithConfigUpdates(ch <-chan *config.Config) Option {
	return func(m *Model) { m.configUpdates = ch }
}

// WithSession restores the search query and selected note of a previous run.
func WithSession(query, selectedID string) Option {
	return func(m *Model) {
		m.sidebar.SetQuery(query)
		m.restoreID = selectedID
	}
}

// New creates the application model around ctrl.
func New(ctrl *notesync.Controller, km *keymap.Registry, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		ctx:        context.Background(),
		cfg:        cfg,
		ctrl:       ctrl,
		keymap:     km,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		showFooter: cfg.UI.ShowFooter,
		sidebar:    ui.NewSidebar(),
		editor:     ui.NewEditor(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the initial load and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), waitForConfig(m.configUpdates))
}

// activeModal returns the highest-priority open modal.
func (m Model) activeModal() ModalKind {
	switch {
	case m.confirm != nil:
		return ModalConfirm
	case m.editor.IsOpen():
		return ModalEditor
	default:
		return ModalNone
	}
}

// activeContext returns the keymap context for the focused component.
func (m Model) activeContext() string {
	switch m.activeModal() {
	case ModalConfirm:
		return keymap.ContextConfirm
	case ModalEditor:
		return keymap.ContextEditor
	}
	if m.sidebar.Focused() {
		return keymap.ContextSearch
	}
	return keymap.ContextNotes
}

// visibleNotes returns the notes matching the search box.
func (m Model) visibleNotes() []note.Note {
	return m.ctrl.Filter(m.sidebar.Query())
}

// selected returns the note under the cursor.
func (m Model) selected() (note.Note, bool) {
	notes := m.visibleNotes()
	c := m.grid.Cursor()
	if c < 0 || c >= len(notes) {
		return note.Note{}, false
	}
	return notes[c], true
}

// selectID moves the cursor to the visible note with id, if any.
func (m *Model) selectID(id string) {
	notes := m.visibleNotes()
	if i := note.IndexOf(notes, id); i >= 0 {
		m.grid.SetCursor(i, len(notes))
	}
}

// keyLabel returns the first key bound to command in context.
func (m Model) keyLabel(context, command string) string {
	if keys := m.keymap.Keys(context, command); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// saveSession records the search query and selection for the next run.
func (m Model) saveSession() {
	var id string
	if n, ok := m.selected(); ok && !note.IsTemp(n.ID) {
		id = n.ID
	}
	if err := state.SetSession(m.sidebar.Query(), id); err != nil {
		m.logger.Warn("app: save session", "error", err)
	}
}
