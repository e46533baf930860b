// Package remote implements the note store backed by the remote REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/store"
)

// HTTPError is a non-2xx response from the remote API.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("http %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Is maps 404 responses onto store.ErrNotFound.
func (e *HTTPError) Is(target error) bool {
	return target == store.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to the remote note service. Each call is a single attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for baseURL (e.g. "http://127.0.0.1:3001/api").
// A zero timeout leaves requests unbounded except by their context.
func New(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// List fetches every note.
func (c *Client) List(ctx context.Context) ([]note.Note, error) {
	var out []note.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []note.Note{}
	}
	return out, nil
}

// Create posts a new note and returns the canonical record.
func (c *Client) Create(ctx context.Context, in note.Input) (*note.Note, error) {
	var out note.Note
	if err := c.doJSON(ctx, http.MethodPost, "/notes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces title and content of note id.
func (c *Client) Update(ctx context.Context, id string, in note.Input) (*note.Note, error) {
	var out note.Note
	if err := c.doJSON(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes note id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil)
}

// Ping checks the service health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	root := strings.TrimSuffix(c.baseURL, "/api")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, root+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &HTTPError{StatusCode: resp.StatusCode, Message: "unhealthy"}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, requestPath string, body, out any) error {
	if c.baseURL == "" {
		return errors.New("remote API URL not configured")
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+requestPath, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	payload, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return readErr
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if out == nil || len(payload) == 0 {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, requestPath, err)
		}
		return nil
	}

	var errPayload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(payload, &errPayload)
	if errPayload.Message == "" {
		errPayload.Message = http.StatusText(resp.StatusCode)
	}
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Code:       errPayload.Code,
		Message:    errPayload.Message,
	}
}

var _ store.NoteStore = (*Client)(nil)
