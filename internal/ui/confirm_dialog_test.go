package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestNewConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("Test Title", "Test message")

	if d.Title != "Test Title" {
		t.Errorf("expected title 'Test Title', got %q", d.Title)
	}
	if d.Message != "Test message" {
		t.Errorf("expected message 'Test message', got %q", d.Message)
	}
	if d.ConfirmLabel != " Confirm " {
		t.Errorf("expected default confirm label ' Confirm ', got %q", d.ConfirmLabel)
	}
	if d.CancelLabel != " Cancel " {
		t.Errorf("expected default cancel label ' Cancel ', got %q", d.CancelLabel)
	}
	if d.Width != ModalWidthMedium {
		t.Errorf("expected width %d, got %d", ModalWidthMedium, d.Width)
	}
	if d.Focused() != ActionCancel {
		t.Errorf("expected initial focus on cancel, got %q", d.Focused())
	}
}

func TestConfirmDialog_View(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "This cannot be undone.")
	d.ConfirmLabel = " Delete "
	d.Danger = true

	output := ansi.Strip(d.View())

	for _, want := range []string{"Delete note?", "This cannot be undone.", "Delete", "Cancel"} {
		if !strings.Contains(output, want) {
			t.Errorf("render should contain %q:\n%s", want, output)
		}
	}
}

func TestConfirmDialog_HandleKey(t *testing.T) {
	d := NewConfirmDialog("Title", "Message")

	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); got != ActionCancel {
		t.Errorf("enter with default focus = %q, want %q", got, ActionCancel)
	}

	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyTab}); got != "" {
		t.Errorf("tab should not close the dialog, got %q", got)
	}
	if d.Focused() != ActionConfirm {
		t.Fatalf("tab should move focus to confirm, got %q", d.Focused())
	}
	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); got != ActionConfirm {
		t.Errorf("enter on confirm = %q, want %q", got, ActionConfirm)
	}

	d.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if d.Focused() != ActionCancel {
		t.Errorf("h should toggle focus back, got %q", d.Focused())
	}

	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}); got != "" {
		t.Errorf("unbound key returned %q", got)
	}
}

func TestConfirmDialog_SetFocus(t *testing.T) {
	d := NewConfirmDialog("Title", "Message")
	d.SetFocus(ActionConfirm)
	if d.Focused() != ActionConfirm {
		t.Errorf("focus = %q", d.Focused())
	}
	d.SetFocus("anything")
	if d.Focused() != ActionCancel {
		t.Errorf("unknown action should focus cancel, got %q", d.Focused())
	}
}
