package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/store"
)

func TestClientList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/notes" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"n1","title":"Foobar","content":"x","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-02T00:00:00Z"}]`))
	}))
	defer server.Close()

	client := New(server.URL+"/api/", 0, server.Client())
	notes, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "n1" || notes[0].Title != "Foobar" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if notes[0].UpdatedAt.Day() != 2 {
		t.Errorf("updatedAt not decoded: %v", notes[0].UpdatedAt)
	}
}

func TestClientListNullBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	notes, err := New(server.URL, 0, server.Client()).List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", notes)
	}
}

func TestClientCreateSendsInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var in note.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(note.Note{ID: "srv-1", Title: in.Title, Content: in.Content})
	}))
	defer server.Close()

	created, err := New(server.URL, 0, server.Client()).Create(context.Background(), note.Input{Title: "A", Content: "body"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != "srv-1" || created.Title != "A" || created.Content != "body" {
		t.Fatalf("unexpected note: %+v", created)
	}
}

func TestClientUpdateAndDeletePaths(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		mu.Unlock()
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(note.Note{ID: "a b", Title: "t"})
	}))
	defer server.Close()

	client := New(server.URL, 0, server.Client())
	if _, err := client.Update(context.Background(), "a b", note.Input{Title: "t"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := client.Delete(context.Background(), "a b"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	want := []string{"PUT /notes/a%20b", "DELETE /notes/a%20b"}
	if len(seen) != len(want) {
		t.Fatalf("requests = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestClientNoRetryOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"unavailable","message":"down"}`))
	}))
	defer server.Close()

	_, err := New(server.URL, 0, server.Client()).List(context.Background())
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusServiceUnavailable || httpErr.Code != "unavailable" {
		t.Errorf("unexpected error fields: %+v", httpErr)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected a single attempt, got %d", got)
	}
}

func TestClientNotFoundMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := New(server.URL, 0, server.Client()).Delete(context.Background(), "gone")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	if _, err := New(url, 0, nil).List(context.Background()); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestClientEmptyBaseURL(t *testing.T) {
	if _, err := New("  ", 0, nil).List(context.Background()); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestClientPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if err := New(server.URL+"/api", 0, server.Client()).Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
