package mcp

import (
	"context"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	entries []domain.SymbolEntry
	err     error
}

func (m *mockLibraryService) List(_ context.Context, _ string) ([]domain.SymbolEntry, error) {
	return m.entries, m.err
}

func (m *mockLibraryService) Get(_ context.Context, _ string, id string) (*domain.SymbolEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.entries {
		if m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
