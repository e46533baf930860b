package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ocean-notes/internal/styles"
)

// SidebarWidth is the outer width of the sidebar.
const SidebarWidth = 30

// Sidebar holds the search box and the create hint. Its only state is the
// search input.
type Sidebar struct {
	input  textinput.Model
	height int
}

// NewSidebar creates a sidebar with an empty, blurred search box.
func NewSidebar() Sidebar {
	ti := textinput.New()
	ti.Placeholder = "Search by title or content…"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Width = SidebarWidth - 6
	return Sidebar{input: ti}
}

// SetHeight sets the sidebar's outer height.
func (s *Sidebar) SetHeight(h int) { s.height = h }

// Focus moves keyboard input to the search box.
func (s *Sidebar) Focus() tea.Cmd { return s.input.Focus() }

// Blur releases keyboard input.
func (s *Sidebar) Blur() { s.input.Blur() }

// Focused reports whether the search box has keyboard input.
func (s *Sidebar) Focused() bool { return s.input.Focused() }

// Query returns the search text.
func (s *Sidebar) Query() string { return s.input.Value() }

// SetQuery replaces the search text.
func (s *Sidebar) SetQuery(q string) {
	s.input.SetValue(q)
	s.input.CursorEnd()
}

// Update forwards msg to the search box and reports whether the query
// changed.
func (s *Sidebar) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	return s.input.Value() != before, cmd
}

// View renders the sidebar. newKey and searchKey name the keys shown in the
// hints.
func (s *Sidebar) View(loading bool, newKey, searchKey string) string {
	inner := SidebarWidth - 4

	heading := styles.Title.Render("Search")
	if loading {
		status := styles.Muted.Render("Loading…")
		gap := max(1, inner-lipgloss.Width(heading)-lipgloss.Width(status))
		heading += strings.Repeat(" ", gap) + status
	}

	button := styles.Button
	if !s.Focused() {
		button = styles.ButtonFocused
	}
	newNote := button.Width(inner).Align(lipgloss.Center).Render("New Note [" + newKey + "]")

	tip := styles.Subtle.Width(inner).Render(
		"Tip: press " + searchKey + " and type keywords to filter notes. Press enter on a note to edit.")

	body := strings.Join([]string{
		heading,
		"",
		s.input.View(),
		"",
		newNote,
		"",
		tip,
	}, "\n")

	style := styles.Sidebar.Width(SidebarWidth - 2)
	if s.height > 2 {
		style = style.Height(s.height - 2)
	}
	return style.Render(body)
}
