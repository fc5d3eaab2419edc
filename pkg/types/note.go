// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for CollabNotes.
package types

import (
	"strings"
	"time"
)

// Note is the sole entity in the system: a short text note held in process
// memory. Notes do not survive process exit.
type Note struct {
	// ID is an opaque unique token (UUIDv4) generated at creation time.
	ID string `json:"id" yaml:"id"`

	// Title is the note heading. May be empty.
	Title string `json:"title" yaml:"title"`

	// Content is the note body. May be empty and may span multiple lines.
	Content string `json:"content" yaml:"content"`

	// Collaborators is an ordered list of free-form labels (typically
	// email addresses). The labels are not validated or resolved.
	Collaborators []string `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`

	// CreatedAt is when the note was created (UTC).
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the note was last replaced (UTC). Equal to
	// CreatedAt until the first update.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	out := n
	if n.Collaborators != nil {
		out.Collaborators = append([]string(nil), n.Collaborators...)
	}
	return out
}

// SplitCollaborators parses a comma-separated label list into individual
// labels. Labels are trimmed and empty entries dropped, so trailing commas
// and stray whitespace never produce phantom collaborators.
func SplitCollaborators(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var labels []string
	for _, part := range strings.Split(s, ",") {
		label := strings.TrimSpace(part)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// JoinCollaborators renders a label list back into the comma-separated form
// used by the edit form. The inverse of SplitCollaborators for clean input.
func JoinCollaborators(labels []string) string {
	return strings.Join(labels, ", ")
}
