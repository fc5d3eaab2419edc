// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCollaborators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated emails",
			input: "user1@example.com,user2@example.com",
			want:  []string{"user1@example.com", "user2@example.com"},
		},
		{
			name:  "trims whitespace around labels",
			input: "  alice@example.com ,\tbob@example.com  ",
			want:  []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:  "drops empty entries from trailing and doubled commas",
			input: "alice@example.com,,bob@example.com,",
			want:  []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "  , ,  ",
			want:  nil,
		},
		{
			name:  "single label without comma",
			input: "solo@example.com",
			want:  []string{"solo@example.com"},
		},
		{
			name:  "labels are not validated",
			input: "not an email, 12345",
			want:  []string{"not an email", "12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCollaborators(tt.input))
		})
	}
}

func TestJoinCollaboratorsRoundTrip(t *testing.T) {
	labels := []string{"a@example.com", "b@example.com"}
	assert.Equal(t, labels, SplitCollaborators(JoinCollaborators(labels)))
}

func TestNoteClone(t *testing.T) {
	orig := Note{
		ID:            "id-1",
		Title:         "t",
		Content:       "c",
		Collaborators: []string{"a@example.com"},
	}

	clone := orig.Clone()
	clone.Collaborators[0] = "mutated"

	assert.Equal(t, "a@example.com", orig.Collaborators[0],
		"mutating a clone must not affect the original")
}
