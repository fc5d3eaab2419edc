// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"context"
	"fmt"

	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

// Search runs an FTS5 full-text query over note titles and contents and
// returns matching notes in relevance order. A limit of zero uses the store
// default. Malformed FTS5 syntax surfaces as a wrapped query error.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	if query == "" {
		return nil, fmt.Errorf("search notes: empty query")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM notes_fts WHERE notes_fts MATCH ? ORDER BY rank LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying search index: %w", err)
	}
	defer rows.Close()

	var results []types.Note
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		if note, ok := s.notes[id]; ok {
			results = append(results, note.Clone())
		}
	}
	return results, rows.Err()
}
