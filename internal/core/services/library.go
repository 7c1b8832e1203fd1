package services

import (
	"context"
	"fmt"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
	"github.com/flagforge/symbolkit/internal/core/ports/driving"
)

var _ driving.LibraryService = (*LibraryReader)(nil)

// LibraryReader serves read access to a produced symbol library for the
// CLI, TUI and MCP surfaces.
type LibraryReader struct {
	store driven.LibraryStore
}

// NewLibraryReader creates a new library read service.
func NewLibraryReader(store driven.LibraryStore) *LibraryReader {
	return &LibraryReader{store: store}
}

// List returns every entry in the library at path, in file order.
func (s *LibraryReader) List(ctx context.Context, path string) ([]domain.SymbolEntry, error) {
	entries, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	return entries, nil
}

// Get returns the entry with the given id.
func (s *LibraryReader) Get(ctx context.Context, path, id string) (*domain.SymbolEntry, error) {
	entries, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("symbol %q: %w", id, domain.ErrNotFound)
}
