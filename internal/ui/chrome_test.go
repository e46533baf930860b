package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderHeader(t *testing.T) {
	for _, badge := range []string{BadgeConnected, BadgeOffline} {
		out := ansi.Strip(RenderHeader(80, badge))
		if !strings.Contains(out, AppTitle) {
			t.Errorf("header missing title: %q", out)
		}
		if !strings.Contains(out, badge) {
			t.Errorf("header missing badge %q: %q", badge, out)
		}
		if w := lipgloss.Width(RenderHeader(80, badge)); w != 80 {
			t.Errorf("header width = %d, want 80", w)
		}
	}

	out := ansi.Strip(RenderHeader(80, ""))
	if strings.Contains(out, BadgeConnected) || strings.Contains(out, BadgeOffline) {
		t.Errorf("unknown health should show no badge: %q", out)
	}
}

func TestRenderErrorBanner(t *testing.T) {
	if got := RenderErrorBanner(80, "", "x"); got != "" {
		t.Errorf("empty message should render nothing, got %q", got)
	}
	out := ansi.Strip(RenderErrorBanner(80, "Failed to load notes", "x"))
	if !strings.Contains(out, "Failed to load notes") || !strings.Contains(out, "x to dismiss") {
		t.Errorf("banner = %q", out)
	}
}

func TestRenderFooter(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("z")),
	}
	out := ansi.Strip(RenderFooter(80, bindings, ""))
	if !strings.Contains(out, "new") || !strings.Contains(out, "quit") {
		t.Errorf("footer = %q", out)
	}

	toast := RenderToast("Note saved", false)
	withToast := RenderFooter(80, bindings, toast)
	if !strings.Contains(ansi.Strip(withToast), "Note saved") {
		t.Errorf("footer missing toast: %q", withToast)
	}
	if w := lipgloss.Width(withToast); w != 80 {
		t.Errorf("footer width = %d, want 80", w)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSidebarQuery(t *testing.T) {
	s := NewSidebar()
	s.Focus()

	changed, _ := s.Update(keyRunes("foo"))
	if !changed || s.Query() != "foo" {
		t.Fatalf("query = %q, changed = %v", s.Query(), changed)
	}

	s.SetQuery("")
	out := ansi.Strip(s.View(true, "n", "/"))
	for _, want := range []string{"Search", "Loading…", "New Note [n]"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(ansi.Strip(s.View(false, "n", "/")), "Loading…") {
		t.Error("loading indicator shown when idle")
	}
}
