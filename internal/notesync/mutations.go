package notesync

import (
	"context"
	"time"

	"github.com/marcus/ocean-notes/internal/api"
	"github.com/marcus/ocean-notes/internal/note"
)

// Failure messages shown for each mutation kind.
const (
	MsgCreateFailed = "Failed to create note"
	MsgUpdateFailed = "Failed to update note"
	MsgDeleteFailed = "Failed to delete note"
)

// Mutation is a change to the note list that can be applied before the
// client confirms it and undone when the client refuses it.
type Mutation interface {
	Kind() string
	// Apply performs the optimistic change.
	Apply(s *State)
	// Execute persists the change. It must not touch State.
	Execute(ctx context.Context, client api.Client) (*note.Note, error)
	// Commit merges the canonical record returned by Execute.
	Commit(s *State, canonical *note.Note)
	// Rollback undoes Apply and reports whether a full resync is needed.
	Rollback(s *State) (resync bool)
	FailureMessage() string
}

// CreateMutation inserts a note at the head of the list under a temp id.
type CreateMutation struct {
	Input note.Input
	Now   time.Time
	// Seq tells apart creates stamped in the same millisecond.
	Seq uint64

	tempID string
}

func (m *CreateMutation) Kind() string { return "create" }

// TempID returns the id of the optimistic record, set by Apply.
func (m *CreateMutation) TempID() string { return m.tempID }

func (m *CreateMutation) Apply(s *State) {
	m.tempID = note.TempID(m.Now, m.Seq)
	for n := m.Seq + 1; note.IndexOf(s.Notes, m.tempID) >= 0; n++ {
		m.tempID = note.TempID(m.Now, n)
	}
	optimistic := note.Note{
		ID:        m.tempID,
		Title:     m.Input.Title,
		Content:   m.Input.Content,
		CreatedAt: m.Now,
		UpdatedAt: m.Now,
	}
	s.Notes = append([]note.Note{optimistic}, s.Notes...)
}

func (m *CreateMutation) Execute(ctx context.Context, client api.Client) (*note.Note, error) {
	return client.CreateNote(ctx, m.Input)
}

func (m *CreateMutation) Commit(s *State, canonical *note.Note) {
	s.Notes = removeID(s.Notes, m.tempID)
	if canonical != nil {
		// A reload during the call may already hold the record.
		s.Notes = removeID(s.Notes, canonical.ID)
		s.Notes = append([]note.Note{*canonical}, s.Notes...)
	}
}

func (m *CreateMutation) Rollback(s *State) bool {
	s.Notes = removeID(s.Notes, m.tempID)
	return false
}

func (m *CreateMutation) FailureMessage() string { return MsgCreateFailed }

// UpdateMutation edits a note in place.
type UpdateMutation struct {
	ID    string
	Input note.Input
	Now   time.Time
}

func (m *UpdateMutation) Kind() string { return "update" }

func (m *UpdateMutation) Apply(s *State) {
	i := note.IndexOf(s.Notes, m.ID)
	if i < 0 {
		return
	}
	notes := note.Clone(s.Notes)
	notes[i].Title = m.Input.Title
	notes[i].Content = m.Input.Content
	notes[i].UpdatedAt = m.Now
	s.Notes = notes
}

func (m *UpdateMutation) Execute(ctx context.Context, client api.Client) (*note.Note, error) {
	return client.UpdateNote(ctx, m.ID, m.Input)
}

func (m *UpdateMutation) Commit(s *State, canonical *note.Note) {
	if canonical == nil {
		return
	}
	i := note.IndexOf(s.Notes, m.ID)
	if i < 0 {
		return
	}
	notes := note.Clone(s.Notes)
	notes[i] = *canonical
	s.Notes = notes
}

// Rollback keeps the edited record; the resync restores the stored version.
func (m *UpdateMutation) Rollback(s *State) bool { return true }

func (m *UpdateMutation) FailureMessage() string { return MsgUpdateFailed }

// DeleteMutation removes a note, restoring it on failure.
type DeleteMutation struct {
	ID string

	snapshot []note.Note
}

func (m *DeleteMutation) Kind() string { return "delete" }

func (m *DeleteMutation) Apply(s *State) {
	m.snapshot = s.Notes
	s.Notes = removeID(s.Notes, m.ID)
}

func (m *DeleteMutation) Execute(ctx context.Context, client api.Client) (*note.Note, error) {
	return nil, client.DeleteNote(ctx, m.ID)
}

func (m *DeleteMutation) Commit(s *State, _ *note.Note) {
	m.snapshot = nil
}

// Rollback restores the list as it was before Apply. Mutations that
// finished in between are overwritten.
func (m *DeleteMutation) Rollback(s *State) bool {
	if m.snapshot != nil {
		s.Notes = m.snapshot
	}
	m.snapshot = nil
	return false
}

func (m *DeleteMutation) FailureMessage() string { return MsgDeleteFailed }

// removeID returns notes without id in a fresh slice, leaving the input
// untouched so snapshots stay valid.
func removeID(notes []note.Note, id string) []note.Note {
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
