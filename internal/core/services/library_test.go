package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

func TestLibraryReader_List(t *testing.T) {
	store := &mockLibraryStore{existing: []domain.SymbolEntry{
		{ID: "albania", Name: "Albania"},
		{ID: "belgium", Name: "Belgium"},
	}}
	reader := NewLibraryReader(store)

	entries, err := reader.List(context.Background(), "out.json")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "albania", entries[0].ID)
	assert.Equal(t, "belgium", entries[1].ID)
}

func TestLibraryReader_Get(t *testing.T) {
	store := &mockLibraryStore{existing: []domain.SymbolEntry{
		{ID: "albania", Name: "Albania"},
		{ID: "belgium", Name: "Belgium"},
	}}
	reader := NewLibraryReader(store)

	entry, err := reader.Get(context.Background(), "out.json", "belgium")
	require.NoError(t, err)
	assert.Equal(t, "Belgium", entry.Name)
}

func TestLibraryReader_GetNotFound(t *testing.T) {
	reader := NewLibraryReader(&mockLibraryStore{})

	_, err := reader.Get(context.Background(), "out.json", "atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLibraryReader_EmptyLibrary(t *testing.T) {
	reader := NewLibraryReader(&mockLibraryStore{})

	// Empty library lists as empty, not as an error.
	entries, err := reader.List(context.Background(), "out.json")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
