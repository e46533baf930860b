package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/ocean-notes/internal/api"
	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/store"
	"github.com/marcus/ocean-notes/internal/store/local"
	"github.com/marcus/ocean-notes/internal/store/remote"
)

func newTestServer(t *testing.T) (*httptest.Server, *local.Store) {
	t.Helper()
	s, err := local.Open(local.DriverPure, filepath.Join(t.TempDir(), "notes.db"), local.WithIDFunc(NewID))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ts := httptest.NewServer(New(s, nil))
	t.Cleanup(ts.Close)
	return ts, s
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCreateAndList(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := do(t, http.MethodPost, ts.URL+"/api/notes", `{"title":"  Hello ","content":" world "}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created note.Note
	require.NoError(t, json.Unmarshal(body, &created))
	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err, "ids are UUIDs")
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, "world", created.Content)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/notes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes []note.Note
	require.NoError(t, json.Unmarshal(body, &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)
}

func TestListEmptyIsArray(t *testing.T) {
	ts, _ := newTestServer(t)
	_, body := do(t, http.MethodGet, ts.URL+"/api/notes", "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestCreateValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed", `{"title":`, "invalid request payload"},
		{"missing title", `{"content":"x"}`, "Title is required"},
		{"blank title", `{"title":"   "}`, "Title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, ts.URL+"/api/notes", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var e ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, CodeBadRequest, e.Code)
			assert.Equal(t, tt.message, e.Message)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ts, s := newTestServer(t)
	n, err := s.Create(context.Background(), note.Input{Title: "draft"})
	require.NoError(t, err)

	resp, body := do(t, http.MethodPut, ts.URL+"/api/notes/"+n.ID, `{"title":"final","content":"done"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var updated note.Note
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "done", updated.Content)

	resp, _ = do(t, http.MethodDelete, ts.URL+"/api/notes/"+n.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = s.Get(context.Background(), n.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnknownIDIs404(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		resp, body := do(t, method, ts.URL+"/api/notes/missing", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, method)

		var e ErrorResponse
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, CodeNotFound, e.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := do(t, http.MethodGet, ts.URL+"/api/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), CodeNotFound)
}

type brokenStore struct{ store.NoteStore }

func (brokenStore) List(context.Context) ([]note.Note, error) {
	return nil, errors.New("disk on fire")
}

func TestStoreFailureIs500(t *testing.T) {
	ts := httptest.NewServer(New(brokenStore{}, nil))
	defer ts.Close()

	resp, body := do(t, http.MethodGet, ts.URL+"/api/notes", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, CodeInternal, e.Code)
	assert.NotContains(t, e.Message, "disk on fire")
}

// The remote store client and the server agree on the wire format.
func TestRemoteClientRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t)
	ctx := context.Background()
	c := remote.New(ts.URL+"/api", 0, nil)

	require.NoError(t, c.Ping(ctx))

	created, err := c.Create(ctx, note.Input{Title: "remote", Content: "body"})
	require.NoError(t, err)

	updated, err := c.Update(ctx, created.ID, note.Input{Title: "remote!", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "remote!", updated.Title)

	notes, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)

	require.NoError(t, c.Delete(ctx, created.ID))
	err = c.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var herr *remote.HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, CodeNotFound, herr.Code)
}

// An offline fallback client returns to the service once /healthz answers.
func TestFallbackClientRecoversThroughHealthCheck(t *testing.T) {
	served, err := local.Open(local.DriverPure, filepath.Join(t.TempDir(), "served.db"), local.WithIDFunc(NewID))
	require.NoError(t, err)
	t.Cleanup(func() { served.Close() })
	offline, err := local.Open(local.DriverPure, filepath.Join(t.TempDir(), "offline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { offline.Close() })

	var down atomic.Bool
	h := New(served, nil)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	ctx := context.Background()
	c := api.New(remote.New(ts.URL+"/api", 0, nil), offline,
		api.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	down.Store(true)
	_, err = c.ListNotes(ctx)
	require.NoError(t, err)
	require.False(t, c.IsRemote())

	_, err = c.CreateNote(ctx, note.Input{Title: "while down"})
	require.NoError(t, err)
	require.False(t, c.IsRemote())

	down.Store(false)
	created, err := c.CreateNote(ctx, note.Input{Title: "after restart"})
	require.NoError(t, err)
	assert.True(t, c.IsRemote())
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "server assigned the id")

	onServer, err := served.List(ctx)
	require.NoError(t, err)
	require.Len(t, onServer, 1)
	assert.Equal(t, "after restart", onServer[0].Title)

	kept, err := offline.List(ctx)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "while down", kept[0].Title)
}
