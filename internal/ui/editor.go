package ui

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/styles"
)

const (
	editorMaxWidth   = 72
	editorMinWidth   = 30
	editorMaxContent = 12
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldContent
)

// Editor is the modal for creating or editing a note. The title is
// required after trimming; both fields are trimmed on save.
type Editor struct {
	open     bool
	noteID   string // "" for a new note
	baseline uint64
	focus    editorField

	title   textinput.Model
	content textarea.Model

	width  int
	height int
}

// NewEditor creates a closed editor.
func NewEditor() *Editor {
	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.Prompt = ""
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write your note here…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.FocusedStyle = textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		EndOfBuffer: styles.Subtle,
		Placeholder: styles.Muted,
		Prompt:      lipgloss.NewStyle(),
		Text:        lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle

	return &Editor{title: ti, content: ta}
}

// contentHash identifies a title/content pair after trimming.
func contentHash(in note.Input) uint64 {
	in = in.Normalize()
	d := xxhash.New()
	_, _ = d.WriteString(in.Title)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(in.Content)
	return d.Sum64()
}

// Open shows the editor for n, or for a new note when n is nil.
func (e *Editor) Open(n *note.Note) tea.Cmd {
	e.open = true
	e.focus = fieldTitle
	e.noteID = ""
	title, content := "", ""
	if n != nil {
		e.noteID = n.ID
		title, content = n.Title, n.Content
	}
	e.title.SetValue(title)
	e.title.CursorEnd()
	e.content.SetValue(content)
	e.baseline = contentHash(note.Input{Title: title, Content: content})
	e.content.Blur()
	e.resize()
	return e.title.Focus()
}

// Close hides the editor and drops its contents.
func (e *Editor) Close() {
	e.open = false
	e.noteID = ""
	e.title.Blur()
	e.content.Blur()
	e.title.SetValue("")
	e.content.SetValue("")
}

// IsOpen reports whether the editor is showing.
func (e *Editor) IsOpen() bool { return e.open }

// IsNew reports whether the editor is creating a note.
func (e *Editor) IsNew() bool { return e.noteID == "" }

// NoteID returns the id of the note being edited, or "".
func (e *Editor) NoteID() string { return e.noteID }

// Input returns the trimmed title and content.
func (e *Editor) Input() note.Input {
	return note.Input{Title: e.title.Value(), Content: e.content.Value()}.Normalize()
}

// CanSave reports whether Save is enabled.
func (e *Editor) CanSave() bool {
	return e.Input().Validate() == nil
}

// Dirty reports whether the fields differ from what was opened.
func (e *Editor) Dirty() bool {
	return contentHash(e.Input()) != e.baseline
}

// NextField moves focus between title and content.
func (e *Editor) NextField() tea.Cmd {
	if e.focus == fieldTitle {
		e.focus = fieldContent
		e.title.Blur()
		return e.content.Focus()
	}
	e.focus = fieldTitle
	e.content.Blur()
	return e.title.Focus()
}

// SetSize sets the screen size the modal is centered in.
func (e *Editor) SetSize(width, height int) {
	e.width, e.height = width, height
	e.resize()
}

func (e *Editor) boxWidth() int {
	return max(editorMinWidth, min(editorMaxWidth, e.width-4))
}

func (e *Editor) resize() {
	inner := e.boxWidth() - 6 // border + padding
	e.title.Width = inner - 1
	e.content.SetWidth(inner)
	// Heading, labels, title, buttons and spacing take 12 rows.
	e.content.SetHeight(max(3, min(editorMaxContent, e.height-14)))
}

// Update forwards msg to the focused field. Enter in the title field moves
// to the content field.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if !e.open {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && e.focus == fieldTitle && k.Type == tea.KeyEnter {
		return e.NextField()
	}
	var cmd tea.Cmd
	if e.focus == fieldTitle {
		e.title, cmd = e.title.Update(msg)
	} else {
		e.content, cmd = e.content.Update(msg)
	}
	return cmd
}

// View renders the modal box. saveKey and cancelKey label the buttons.
func (e *Editor) View(saveKey, cancelKey string) string {
	heading := "Edit Note"
	if e.IsNew() {
		heading = "New Note"
	}

	save := styles.ButtonFocused
	if !e.CanSave() {
		save = styles.ButtonDisabled
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Button.Render("Cancel ["+cancelKey+"]"),
		" ",
		save.Render("Save ["+saveKey+"]"),
	)
	inner := e.boxWidth() - 6
	buttons = lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttons)

	var hint string
	if !e.CanSave() {
		hint = styles.Muted.Render("A title is required.")
	}

	body := strings.Join([]string{
		styles.Title.Render(heading),
		"",
		styles.FieldName.Render("Title"),
		e.title.View(),
		"",
		styles.FieldName.Render("Content"),
		e.content.View(),
		"",
		hint,
		buttons,
	}, "\n")

	return styles.ModalBox.Width(e.boxWidth() - 2).Render(body)
}
