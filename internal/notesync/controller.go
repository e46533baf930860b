// Package notesync owns the in-memory note list and reconciles it with the
// API client: mutations are applied optimistically, then committed with the
// canonical record or rolled back when the client fails.
//
// A Controller belongs to one goroutine. Only Run may execute elsewhere,
// and it reads no controller state.
package notesync

import (
	"context"
	"log/slog"
	"time"

	"github.com/marcus/ocean-notes/internal/api"
	"github.com/marcus/ocean-notes/internal/note"
)

// Load failure message shown when neither store can be read.
const MsgLoadFailed = "Failed to load notes"

// Health is the last known reachability of the remote service.
type Health int

const (
	HealthUnknown Health = iota
	HealthRemote
	HealthOffline
)

// String returns the badge text for the health state.
func (h Health) String() string {
	switch h {
	case HealthRemote:
		return "API Connected"
	case HealthOffline:
		return "Offline mode"
	default:
		return ""
	}
}

// State is the container shared by reference with the views.
type State struct {
	Notes   []note.Note
	Err     string
	Loading bool
	Health  Health
}

// Controller applies mutations to State through an api.Client.
type Controller struct {
	client api.Client
	state  State
	logger *slog.Logger
	now    func() time.Time
	epoch  uint64
	seq    uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithClock overrides the clock used for temp ids and optimistic timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a Controller. The state starts in the loading phase.
func New(client api.Client, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		state:  State{Loading: true},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the controller's state container.
func (c *Controller) State() *State { return &c.state }

// Notes returns the current note list.
func (c *Controller) Notes() []note.Note { return c.state.Notes }

// Err returns the last error message, or "".
func (c *Controller) Err() string { return c.state.Err }

// ClearErr dismisses the error message.
func (c *Controller) ClearErr() { c.state.Err = "" }

// Filter returns the notes matching query. No I/O.
func (c *Controller) Filter(query string) []note.Note {
	return note.Filter(c.state.Notes, query)
}

// Epoch identifies the controller's current lifetime.
func (c *Controller) Epoch() uint64 { return c.epoch }

// Close invalidates loads started before it; their results are dropped.
func (c *Controller) Close() { c.epoch++ }

// LoadResult is the outcome of fetching the list.
type LoadResult struct {
	Notes  []note.Note
	Remote bool
	Err    error
	Epoch  uint64
}

// GetEpoch implements the staleness check used by the app.
func (r LoadResult) GetEpoch() uint64 { return r.Epoch }

// FetchFunc returns a function performing the list call for the current
// epoch. The function may run on any goroutine.
func (c *Controller) FetchFunc() func(ctx context.Context) LoadResult {
	client, epoch := c.client, c.epoch
	return func(ctx context.Context) LoadResult {
		notes, err := client.ListNotes(ctx)
		return LoadResult{Notes: notes, Remote: client.IsRemote(), Err: err, Epoch: epoch}
	}
}

// ApplyLoad stores a fetched list. Results from an older epoch are ignored
// and ApplyLoad reports false.
func (c *Controller) ApplyLoad(r LoadResult) bool {
	if r.Epoch != c.epoch {
		c.logger.Debug("notesync: dropping stale load", "epoch", r.Epoch, "current", c.epoch)
		return false
	}
	c.state.Loading = false
	if r.Err != nil {
		c.logger.Error("notesync: load failed", "error", r.Err)
		c.state.Err = MsgLoadFailed
		c.state.Health = HealthOffline
		return true
	}
	c.state.Notes = r.Notes
	if c.state.Notes == nil {
		c.state.Notes = []note.Note{}
	}
	if r.Remote {
		c.state.Health = HealthRemote
	} else {
		c.state.Health = HealthOffline
	}
	return true
}

// Load performs the initial fetch synchronously.
func (c *Controller) Load(ctx context.Context) error {
	c.state.Loading = true
	r := c.FetchFunc()(ctx)
	c.ApplyLoad(r)
	return r.Err
}

// Reload replaces the list with the client's view (full resync). A
// successful reload leaves the error message in place.
func (c *Controller) Reload(ctx context.Context) error {
	r := c.FetchFunc()(ctx)
	c.ApplyLoad(r)
	return r.Err
}

// Pending is a mutation that has been applied optimistically.
type Pending struct {
	m Mutation
}

// Mutation returns the pending mutation.
func (p Pending) Mutation() Mutation { return p.m }

// Outcome is the client's answer to a pending mutation.
type Outcome struct {
	m         Mutation
	Canonical *note.Note
	Err       error
	// Remote is the client's reachability after the call.
	Remote bool
}

// Mutation returns the mutation the outcome belongs to.
func (o Outcome) Mutation() Mutation { return o.m }

// Begin clears the error message and applies m optimistically.
func (c *Controller) Begin(m Mutation) Pending {
	c.state.Err = ""
	m.Apply(&c.state)
	return Pending{m: m}
}

// Run sends a pending mutation to the client. It reads no controller state
// and may run on any goroutine.
func (c *Controller) Run(ctx context.Context, p Pending) Outcome {
	canonical, err := p.m.Execute(ctx, c.client)
	return Outcome{m: p.m, Canonical: canonical, Err: err, Remote: c.client.IsRemote()}
}

// Finish reconciles an outcome: the canonical record is merged on success,
// the optimistic change is undone on failure. It reports whether the list
// must be fully resynced, which is also the case when the mutation found the
// remote service back while the list still holds the offline snapshot.
func (c *Controller) Finish(o Outcome) (resync bool) {
	if o.Err == nil {
		o.m.Commit(&c.state, o.Canonical)
		if o.Remote && c.state.Health == HealthOffline {
			c.logger.Info("notesync: remote reachable again, resyncing")
			return true
		}
		return false
	}
	c.logger.Warn("notesync: mutation failed", "kind", o.m.Kind(), "error", o.Err)
	c.state.Err = o.m.FailureMessage()
	return o.m.Rollback(&c.state)
}

// Do runs a mutation end to end, resyncing when the rollback asks for it.
// The returned error is the client's error, if any.
func (c *Controller) Do(ctx context.Context, m Mutation) error {
	o := c.Run(ctx, c.Begin(m))
	if c.Finish(o) {
		if err := c.Reload(ctx); err != nil {
			c.logger.Error("notesync: resync failed", "error", err)
		}
	}
	return o.Err
}

// Create adds a note.
func (c *Controller) Create(ctx context.Context, in note.Input) error {
	return c.Do(ctx, c.NewCreate(in))
}

// Update edits a note.
func (c *Controller) Update(ctx context.Context, id string, in note.Input) error {
	return c.Do(ctx, c.NewUpdate(id, in))
}

// Delete removes a note.
func (c *Controller) Delete(ctx context.Context, id string) error {
	return c.Do(ctx, c.NewDelete(id))
}

// NewCreate builds a create mutation with a temp id from the controller
// clock and sequence.
func (c *Controller) NewCreate(in note.Input) *CreateMutation {
	c.seq++
	return &CreateMutation{Input: in, Now: c.now(), Seq: c.seq}
}

// NewUpdate builds an update mutation stamped with the controller clock.
func (c *Controller) NewUpdate(id string, in note.Input) *UpdateMutation {
	return &UpdateMutation{ID: id, Input: in, Now: c.now()}
}

// NewDelete builds a delete mutation.
func (c *Controller) NewDelete(id string) *DeleteMutation {
	return &DeleteMutation{ID: id}
}
