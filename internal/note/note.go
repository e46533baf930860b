// Package note defines the note record shared by the stores, the sync
// controller and the views.
package note

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const (
	// TempIDPrefix marks ids issued by the client before the store confirms a create.
	TempIDPrefix = "temp-"

	// ExcerptLimit is the content length above which card previews are cut.
	ExcerptLimit = 140
	excerptKeep  = ExcerptLimit - 3
	ellipsis     = "…"
)

// ErrTitleRequired is returned when a note title is blank after trimming.
var ErrTitleRequired = errors.New("title is required")

// Note represents a single note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input carries the user-editable fields of a note.
type Input struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// Normalize returns the input with title and content trimmed.
func (in Input) Normalize() Input {
	return Input{
		Title:   strings.TrimSpace(in.Title),
		Content: strings.TrimSpace(in.Content),
	}
}

// Validate reports whether the input can be saved.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// TempID builds a temporary id from a timestamp. A non-zero seq is
// appended so ids issued in the same millisecond stay distinct.
func TempID(now time.Time, seq uint64) string {
	id := TempIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
	if seq == 0 {
		return id
	}
	return id + "-" + strconv.FormatUint(seq, 10)
}

// IsTemp reports whether id was issued by TempID.
func IsTemp(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// Matches reports whether the note title or content contains query,
// ignoring case. A blank query matches everything.
func (n Note) Matches(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// Filter returns the notes matching query in their original order.
// The input slice is returned unchanged for a blank query.
func Filter(notes []Note, query string) []Note {
	if strings.TrimSpace(query) == "" {
		return notes
	}
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

// Excerpt returns the card preview of content: content longer than
// ExcerptLimit characters is cut to its first ExcerptLimit-3 characters
// followed by an ellipsis.
func Excerpt(content string) string {
	r := []rune(content)
	if len(r) <= ExcerptLimit {
		return content
	}
	return string(r[:excerptKeep]) + ellipsis
}

// DisplayTitle returns the title or a placeholder for untitled notes.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return "Untitled"
	}
	return n.Title
}

// TruncateWidth cuts s to at most width terminal cells, appending an
// ellipsis when something was removed.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// IndexOf returns the position of the note with id, or -1.
func IndexOf(notes []Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy of notes that shares no backing array.
func Clone(notes []Note) []Note {
	if notes == nil {
		return nil
	}
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}
