package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

func TestResolveAssignee(t *testing.T) {
	jane := uuid.New()
	bob := uuid.New()
	directory := []repository.OrgUser{
		{ID: jane, Name: "Jane Doe", Email: "jane@example.com"},
		{ID: bob, Name: "Bob", Email: "bob@x.com"},
	}

	tests := []struct {
		name    string
		mention string
		wantID  uuid.UUID
		wantOK  bool
	}{
		{name: "exact name", mention: "Jane Doe", wantID: jane, wantOK: true},
		{name: "lowercase name", mention: "jane doe", wantID: jane, wantOK: true},
		{name: "uppercase with trailing space", mention: "JANE DOE ", wantID: jane, wantOK: true},
		{name: "email match", mention: "bob@x.com", wantID: bob, wantOK: true},
		{name: "email case insensitive", mention: "Bob@X.com", wantID: bob, wantOK: true},
		{name: "unassigned sentinel", mention: "unassigned", wantOK: false},
		{name: "unassigned any case", mention: "Unassigned", wantOK: false},
		{name: "empty mention", mention: "", wantOK: false},
		{name: "whitespace only", mention: "   ", wantOK: false},
		{name: "no match", mention: "Someone Else", wantOK: false},
		{name: "no partial match", mention: "Jane", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveAssignee(tt.mention, directory)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.Equal(t, uuid.Nil, id)
			}
		})
	}
}

func TestResolveAssignee_UnassignedIgnoresDirectory(t *testing.T) {
	// Even a user literally named "unassigned" is never matched
	directory := []repository.OrgUser{
		{ID: uuid.New(), Name: "Unassigned", Email: "unassigned@example.com"},
	}

	_, ok := ResolveAssignee("unassigned", directory)
	assert.False(t, ok)
}

func TestResolveAssignee_TieTakesFirstInDirectoryOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	directory := []repository.OrgUser{
		{ID: first, Name: "Sam Lee", Email: "sam1@example.com"},
		{ID: second, Name: "Sam Lee", Email: "sam2@example.com"},
	}

	id, ok := ResolveAssignee("sam lee", directory)
	assert.True(t, ok)
	assert.Equal(t, first, id)
}

func TestResolveAssignee_Idempotent(t *testing.T) {
	jane := uuid.New()
	directory := []repository.OrgUser{{ID: jane, Name: "Jane Doe", Email: "jane@example.com"}}

	for i := 0; i < 3; i++ {
		id, ok := ResolveAssignee("jane doe", directory)
		assert.True(t, ok)
		assert.Equal(t, jane, id)
	}
}
