// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes holds the in-memory note store. The authoritative state is a
// mutex-guarded map keyed by note ID; a SQLite FTS5 index (also in memory,
// nothing touches disk) shadows the map to serve full-text search. All state
// dies with the process.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

// ErrNotFound reports a lookup, update, or delete against an unknown note ID.
var ErrNotFound = errors.New("note not found")

const defaultMaxResults = 20

// Store manages the process-lifetime note collection.
type Store struct {
	mu    sync.Mutex
	notes map[string]types.Note
	order []string // IDs in creation order

	db         *sql.DB
	maxResults int
	now        func() time.Time
}

// NewStore creates an empty store and its in-memory search index. The SQLite
// database is opened with mode=memory under a per-store name so independent
// stores never share index state.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dsn := fmt.Sprintf("file:notes-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	// A single connection keeps the shared in-memory database alive for
	// the store's lifetime.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(
		`CREATE VIRTUAL TABLE notes_fts USING fts5(id UNINDEXED, title, content)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating search index: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &Store{
		notes:      make(map[string]types.Note),
		db:         db,
		maxResults: maxResults,
		now:        time.Now,
	}, nil
}

// Close releases the search index.
func (s *Store) Close() error {
	return s.db.Close()
}

// Len returns the number of notes currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// Create stores a new note under a freshly generated ID and returns it.
// Empty titles and contents are legal; collaborator labels are kept verbatim.
func (s *Store) Create(ctx context.Context, title, content string, collaborators []string) (types.Note, error) {
	if err := ctx.Err(); err != nil {
		return types.Note{}, fmt.Errorf("create note: %w", err)
	}

	now := s.now().UTC()
	note := types.Note{
		ID:            uuid.NewString(),
		Title:         title,
		Content:       content,
		Collaborators: append([]string(nil), collaborators...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.indexLocked(ctx, note); err != nil {
		return types.Note{}, err
	}
	s.notes[note.ID] = note
	s.order = append(s.order, note.ID)

	return note.Clone(), nil
}

// Get retrieves a note by ID. Returns ErrNotFound for unknown IDs.
func (s *Store) Get(ctx context.Context, id string) (types.Note, error) {
	if err := ctx.Err(); err != nil {
		return types.Note{}, fmt.Errorf("get note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return types.Note{}, fmt.Errorf("note %q: %w", id, ErrNotFound)
	}
	return note.Clone(), nil
}

// Update replaces all three mutable fields of an existing note and returns
// the new state. Returns ErrNotFound for unknown IDs.
func (s *Store) Update(ctx context.Context, id, title, content string, collaborators []string) (types.Note, error) {
	if err := ctx.Err(); err != nil {
		return types.Note{}, fmt.Errorf("update note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return types.Note{}, fmt.Errorf("note %q: %w", id, ErrNotFound)
	}

	note.Title = title
	note.Content = content
	note.Collaborators = append([]string(nil), collaborators...)
	note.UpdatedAt = s.now().UTC()

	if err := s.reindexLocked(ctx, note); err != nil {
		return types.Note{}, err
	}
	s.notes[id] = note

	return note.Clone(), nil
}

// Delete removes a note. Returns ErrNotFound for unknown IDs.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return fmt.Errorf("note %q: %w", id, ErrNotFound)
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM notes_fts WHERE id = ?`, id,
	); err != nil {
		return fmt.Errorf("deindexing note: %w", err)
	}

	delete(s.notes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all notes in creation order.
func (s *Store) List(ctx context.Context) ([]types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Note, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.notes[id].Clone())
	}
	return out, nil
}

// indexLocked inserts a note into the FTS index. Caller holds s.mu.
func (s *Store) indexLocked(ctx context.Context, note types.Note) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO notes_fts (id, title, content) VALUES (?, ?, ?)`,
		note.ID, note.Title, note.Content,
	); err != nil {
		return fmt.Errorf("indexing note: %w", err)
	}
	return nil
}

// reindexLocked replaces a note's index row. Caller holds s.mu.
func (s *Store) reindexLocked(ctx context.Context, note types.Note) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM notes_fts WHERE id = ?`, note.ID,
	); err != nil {
		return fmt.Errorf("deindexing note: %w", err)
	}
	return s.indexLocked(ctx, note)
}
