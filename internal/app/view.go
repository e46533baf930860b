package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ocean-notes/internal/keymap"
	"github.com/marcus/ocean-notes/internal/styles"
	"github.com/marcus/ocean-notes/internal/ui"
)

const (
	headerHeight = 1
	footerHeight = 1
	minWidth     = 60
	minHeight    = 20
)

// mainWidth is the width left for the banner and grid.
func (m Model) mainWidth() int {
	return max(0, m.width-ui.SidebarWidth-1)
}

// layout sizes the components for the current window.
func (m *Model) layout() {
	contentHeight := m.height - headerHeight
	if m.showFooter {
		contentHeight -= footerHeight
	}
	contentHeight = max(0, contentHeight)

	gridHeight := contentHeight
	if m.ctrl.Err() != "" {
		gridHeight--
	}
	m.sidebar.SetHeight(contentHeight)
	m.grid.SetSize(m.mainWidth(), max(0, gridHeight))
	m.editor.SetSize(m.width, m.height)
}

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		text := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render(text))
	}

	// Keep sizes in step with the error banner.
	m.layout()
	st := m.ctrl.State()

	var b strings.Builder
	b.WriteString(ui.RenderHeader(m.width, st.Health.String()))
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(ui.RenderFooter(m.width, m.keymap.Help(m.activeContext()),
			ui.RenderToast(m.toast, m.toastError)))
	}

	bg := b.String()
	switch m.activeModal() {
	case ModalConfirm:
		return ui.OverlayModal(bg, m.confirm.View(), m.width, m.height)
	case ModalEditor:
		modal := m.editor.View(
			m.keyLabel(keymap.ContextEditor, "save-note"),
			m.keyLabel(keymap.ContextEditor, "cancel"))
		return ui.OverlayModal(bg, modal, m.width, m.height)
	}
	return bg
}

// renderContent draws the sidebar next to the error banner and grid.
func (m Model) renderContent() string {
	st := m.ctrl.State()
	sidebar := m.sidebar.View(st.Loading,
		m.keyLabel(keymap.ContextNotes, "new-note"),
		m.keyLabel(keymap.ContextNotes, "search"))

	var parts []string
	if banner := ui.RenderErrorBanner(m.mainWidth(), st.Err,
		m.keyLabel(keymap.ContextNotes, "dismiss-error")); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, m.grid.View(m.visibleNotes(), st.Loading, m.emptyHint()))

	main := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
}

// emptyHint is shown under the empty state.
func (m Model) emptyHint() string {
	if m.sidebar.Query() != "" {
		return "No notes match your search."
	}
	return fmt.Sprintf("Press %s or the New Note button to get started.",
		m.keyLabel(keymap.ContextNotes, "new-note"))
}
