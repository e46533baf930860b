// Package server serves the notes REST API over a note store. It backs
// `ocean serve` and is the counterpart of the remote store client.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/store"
)

// Error codes in error responses.
const (
	CodeBadRequest = "bad_request"
	CodeNotFound   = "not_found"
	CodeInternal   = "internal"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewID issues a note id. Pass it to the backing store so served notes get
// UUIDs.
func NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Server handles the notes API.
type Server struct {
	store    store.NoteStore
	validate *validator.Validate
	logger   *slog.Logger
	router   *mux.Router
}

// New creates a Server over s.
func New(s store.NoteStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	srv := &Server{
		store:    s,
		validate: validator.New(),
		logger:   logger,
	}
	srv.router = srv.routes()
	return srv
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggerMiddleware(s.logger))

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/notes", s.list).Methods(http.MethodGet)
	api.HandleFunc("/notes", s.create).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}", s.update).Methods(http.MethodPut)
	api.HandleFunc("/notes/{id}", s.delete).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "no such endpoint")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server: listening", "addr", addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	notes, err := s.store.List(r.Context())
	if err != nil {
		s.internalError(w, "list", err)
		return
	}
	if notes == nil {
		notes = []note.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	n, err := s.store.Create(r.Context(), in)
	if err != nil {
		s.internalError(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	n, err := s.store.Update(r.Context(), id, in)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "note not found")
		return
	}
	if err != nil {
		s.internalError(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "note not found")
		return
	}
	if err != nil {
		s.internalError(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeInput reads and validates a {title, content} body. Fields are
// trimmed before validation so a blank title is rejected.
func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (note.Input, bool) {
	var in note.Input
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request payload")
		return in, false
	}
	in = in.Normalize()
	if err := s.validate.Struct(in); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, validationMessage(err))
		return in, false
	}
	return in, true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fe.Field() + " is required"
		}
		return fe.Field() + " is invalid"
	}
	return err.Error()
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("server: store failure", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, CodeInternal, "failed to "+op+" notes")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
