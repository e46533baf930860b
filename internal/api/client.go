// Package api routes note operations to the remote service, falling back to
// the local store when the service cannot be reached.
package api

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/store"
)

// Operation sentinels, matched with errors.Is.
var (
	ErrLoad   = errors.New("failed to load notes")
	ErrCreate = errors.New("failed to create note")
	ErrUpdate = errors.New("failed to update note")
	ErrDelete = errors.New("failed to delete note")
)

// OpError is a failed operation together with its cause.
type OpError struct {
	Op    error
	Cause error
}

func (e *OpError) Error() string {
	if e.Cause == nil {
		return e.Op.Error()
	}
	return e.Op.Error() + ": " + e.Cause.Error()
}

// Unwrap exposes both the operation sentinel and the cause.
func (e *OpError) Unwrap() []error { return []error{e.Op, e.Cause} }

// Client is the API surface the sync controller uses.
type Client interface {
	ListNotes(ctx context.Context) ([]note.Note, error)
	CreateNote(ctx context.Context, in note.Input) (*note.Note, error)
	UpdateNote(ctx context.Context, id string, in note.Input) (*note.Note, error)
	DeleteNote(ctx context.Context, id string) error
	IsRemote() bool
}

// FallbackClient tries the remote store first and degrades to the local
// store. While offline every call retries the remote before using the local
// store.
type FallbackClient struct {
	remote store.NoteStore
	local  store.NoteStore
	logger *slog.Logger
	mirror bool
	online atomic.Bool
}

// Option configures a FallbackClient.
type Option func(*FallbackClient)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *FallbackClient) { c.logger = logger }
}

// WithMirror makes successful remote listings overwrite the local store.
// Notes created while offline are discarded by the next mirror.
func WithMirror(enabled bool) Option {
	return func(c *FallbackClient) { c.mirror = enabled }
}

// New creates a FallbackClient. A nil remote gives a local-only client.
func New(remote, local store.NoteStore, opts ...Option) *FallbackClient {
	c := &FallbackClient{remote: remote, local: local, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.online.Store(remote != nil)
	return c
}

// IsRemote reports whether the last call reached the remote service.
func (c *FallbackClient) IsRemote() bool {
	return c.remote != nil && c.online.Load()
}

// ListNotes fetches notes from the remote service, or from the local store
// when the service fails.
func (c *FallbackClient) ListNotes(ctx context.Context) ([]note.Note, error) {
	if c.remote != nil {
		notes, err := c.remote.List(ctx)
		if err == nil {
			c.online.Store(true)
			if c.mirror {
				c.mirrorLocal(ctx, notes)
			}
			return notes, nil
		}
		c.logger.Warn("api: remote list failed, using local store", "error", err)
		c.online.Store(false)
	}

	if c.local == nil {
		return nil, &OpError{Op: ErrLoad, Cause: errors.New("no local store")}
	}
	notes, err := c.local.List(ctx)
	if err != nil {
		return nil, &OpError{Op: ErrLoad, Cause: err}
	}
	if notes == nil {
		notes = []note.Note{}
	}
	return notes, nil
}

// mirrorLocal copies a remote snapshot into the local store so offline mode
// starts from recent data. Failures only get logged.
func (c *FallbackClient) mirrorLocal(ctx context.Context, notes []note.Note) {
	r, ok := c.local.(store.Replacer)
	if !ok {
		return
	}
	if err := r.ReplaceAll(ctx, notes); err != nil {
		c.logger.Debug("api: mirror to local store failed", "error", err)
	}
}

// CreateNote creates a note, preferring the remote service.
func (c *FallbackClient) CreateNote(ctx context.Context, in note.Input) (*note.Note, error) {
	var created *note.Note
	err := c.mutate(ctx, "create", func(st store.NoteStore) error {
		var err error
		created, err = st.Create(ctx, in)
		return err
	})
	if err != nil {
		return nil, &OpError{Op: ErrCreate, Cause: err}
	}
	return created, nil
}

// UpdateNote updates a note, preferring the remote service.
func (c *FallbackClient) UpdateNote(ctx context.Context, id string, in note.Input) (*note.Note, error) {
	var updated *note.Note
	err := c.mutate(ctx, "update", func(st store.NoteStore) error {
		var err error
		updated, err = st.Update(ctx, id, in)
		return err
	})
	if err != nil {
		return nil, &OpError{Op: ErrUpdate, Cause: err}
	}
	return updated, nil
}

// DeleteNote deletes a note, preferring the remote service.
func (c *FallbackClient) DeleteNote(ctx context.Context, id string) error {
	err := c.mutate(ctx, "delete", func(st store.NoteStore) error {
		return st.Delete(ctx, id)
	})
	if err != nil {
		return &OpError{Op: ErrDelete, Cause: err}
	}
	return nil
}

// Pinger is a store that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// mutate runs op against the remote service. While online a remote failure
// is returned as is. While offline the remote is health checked and tried
// first; success brings the client back online, failure falls through to
// the local store.
func (c *FallbackClient) mutate(ctx context.Context, name string, op func(store.NoteStore) error) error {
	if c.IsRemote() {
		if err := op(c.remote); err != nil {
			c.logger.Error("api: "+name+" failed", "remote", true, "error", err)
			return err
		}
		return nil
	}

	if c.remote != nil {
		err := c.ping(ctx)
		if err == nil {
			err = op(c.remote)
		}
		if err == nil {
			c.online.Store(true)
			c.logger.Info("api: remote reachable again", "op", name)
			return nil
		}
		c.logger.Debug("api: remote still down, using local store", "op", name, "error", err)
	}

	if c.local == nil {
		return errors.New("offline and no local store")
	}
	if err := op(c.local); err != nil {
		c.logger.Error("api: "+name+" failed", "remote", false, "error", err)
		return err
	}
	return nil
}

func (c *FallbackClient) ping(ctx context.Context) error {
	p, ok := c.remote.(Pinger)
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}

var _ Client = (*FallbackClient)(nil)
