package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ocean-notes/internal/styles"
)

// Dialog actions returned by HandleKey.
const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// ModalWidthMedium is the default confirmation dialog width.
const ModalWidthMedium = 50

// ConfirmDialog is a confirmation modal with two buttons.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g. " Delete "
	CancelLabel  string
	Danger       bool // render the confirm button in the error color
	Width        int

	focusCancel bool
}

// NewConfirmDialog creates a dialog with default labels. Focus starts on
// the cancel button so a stray enter does not confirm.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
		focusCancel:  true,
	}
}

// Focused returns the action of the focused button.
func (d *ConfirmDialog) Focused() string {
	if d.focusCancel {
		return ActionCancel
	}
	return ActionConfirm
}

// SetFocus focuses the button for action.
func (d *ConfirmDialog) SetFocus(action string) {
	d.focusCancel = action != ActionConfirm
}

// HandleKey moves focus between buttons and returns the chosen action on
// enter or space, or "" while the dialog stays open.
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg) string {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		d.focusCancel = !d.focusCancel
	case "enter", " ":
		return d.Focused()
	}
	return ""
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	inner := d.Width - 6

	confirm, cancel := styles.Button, styles.Button
	if d.focusCancel {
		cancel = styles.ButtonFocused
	} else if d.Danger {
		confirm = styles.ButtonDanger
	} else {
		confirm = styles.ButtonFocused
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirm.Render(d.ConfirmLabel),
		" ",
		cancel.Render(d.CancelLabel),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(d.Title),
		"",
		styles.Body.Width(inner).Render(d.Message),
		"",
		buttons,
	)

	box := styles.ModalBox
	if d.Danger {
		box = box.BorderForeground(styles.Error)
	}
	return box.Width(d.Width - 2).Render(body)
}
