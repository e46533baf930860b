// Package store defines the capability interface implemented by the remote
// and local note stores.
package store

import (
	"context"
	"errors"

	"github.com/marcus/ocean-notes/internal/note"
)

// ErrNotFound is returned when a note id does not exist in a store.
var ErrNotFound = errors.New("note not found")

// NoteStore persists a note collection.
type NoteStore interface {
	List(ctx context.Context) ([]note.Note, error)
	Create(ctx context.Context, in note.Input) (*note.Note, error)
	Update(ctx context.Context, id string, in note.Input) (*note.Note, error)
	Delete(ctx context.Context, id string) error
}

// Replacer is implemented by stores that can swap their whole collection,
// used to mirror a remote snapshot into the offline copy.
type Replacer interface {
	ReplaceAll(ctx context.Context, notes []note.Note) error
}
