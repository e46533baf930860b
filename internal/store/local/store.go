// Package local implements the offline note store on SQLite.
package local

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/store"
)

const (
	// DriverCGO selects github.com/mattn/go-sqlite3.
	DriverCGO = "sqlite3"
	// DriverPure selects modernc.org/sqlite.
	DriverPure = "sqlite"
)

// IDFunc issues ids for new notes.
type IDFunc func() (string, error)

// Store handles SQLite operations for notes.
type Store struct {
	db    *sql.DB
	newID IDFunc
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the id generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates a Store on the database at dbPath using driver
// (DriverCGO or DriverPure). Parent directories are created as needed.
func Open(driver, dbPath string, opts ...Option) (*Store, error) {
	dsn, err := dataSource(driver, dbPath)
	if err != nil {
		return nil, err
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps :memory: databases and WAL writers consistent.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, newID: generateID, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func dataSource(driver, dbPath string) (string, error) {
	switch driver {
	case DriverCGO:
		return dbPath + "?_busy_timeout=5000&_journal_mode=WAL", nil
	case DriverPure:
		return dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	default:
		return "", fmt.Errorf("unknown sqlite driver %q", driver)
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at DESC);
`
	_, err := s.db.Exec(schema)
	return err
}

// generateID creates a note id with "nt-" prefix and 8 hex chars.
func generateID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "nt-" + hex.EncodeToString(b), nil
}

// List returns all notes, newest first.
func (s *Store) List(ctx context.Context) ([]note.Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Get retrieves a note by id.
func (s *Store) Get(ctx context.Context, id string) (*note.Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a new note.
func (s *Store) Create(ctx context.Context, in note.Input) (*note.Note, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate ID: %w", err)
	}

	now := s.now().UTC()
	n := &note.Note{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.insert(ctx, s.db, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update overwrites title and content of an existing note.
func (s *Store) Update(ctx context.Context, id string, in note.Input) (*note.Note, error) {
	now := s.now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE notes SET title = ?, content = ?, updated_at = ?
		WHERE id = ?`, in.Title, in.Content, formatTime(now), id)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return s.Get(ctx, id)
}

// Delete removes a note.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return nil
}

// ReplaceAll swaps the stored collection for notes in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, notes []note.Note) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	// Insert oldest first so rowid order agrees with created_at order.
	for i := len(notes) - 1; i >= 0; i-- {
		if err := s.insert(ctx, tx, &notes[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) insert(ctx context.Context, db execer, n *note.Note) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, formatTime(n.CreatedAt), formatTime(n.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (note.Note, error) {
	var n note.Note
	var createdAt, updatedAt string
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return n, err
		}
		return n, fmt.Errorf("scan note: %w", err)
	}
	n.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	n.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	n.CreatedAt, n.UpdatedAt = n.CreatedAt.UTC(), n.UpdatedAt.UTC()
	return n, nil
}

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

var (
	_ store.NoteStore = (*Store)(nil)
	_ store.Replacer  = (*Store)(nil)
)
