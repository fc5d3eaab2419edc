// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

// Entry is one note in a YAML or JSON dump.
type Entry struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Content       string    `json:"content" yaml:"content"`
	Collaborators []string  `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// WriteYAML writes the note list to w as YAML.
func WriteYAML(w io.Writer, notes []types.Note) error {
	data, err := yaml.Marshal(entries(notes))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing YAML dump: %w", err)
	}
	return nil
}

// WriteJSON writes the note list to w as indented JSON.
func WriteJSON(w io.Writer, notes []types.Note) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries(notes)); err != nil {
		return fmt.Errorf("writing JSON dump: %w", err)
	}
	return nil
}

func entries(notes []types.Note) []Entry {
	out := make([]Entry, len(notes))
	for i, n := range notes {
		out[i] = Entry{
			ID:            n.ID,
			Title:         n.Title,
			Content:       n.Content,
			Collaborators: n.Collaborators,
			CreatedAt:     n.CreatedAt,
			UpdatedAt:     n.UpdatedAt,
		}
	}
	return out
}
