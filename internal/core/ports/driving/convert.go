package driving

import (
	"context"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// Converter runs the conversion pipeline over an input directory.
type Converter interface {
	// Convert processes every candidate file sequentially, merges the
	// produced entries into the library at opts.OutputPath and writes it
	// once. It returns domain.ErrEmptyInput when the input directory
	// yields zero candidate files; per-file failures are counted in the
	// report, not returned.
	Convert(ctx context.Context, opts domain.ConvertOptions) (*domain.RunReport, error)

	// Watch runs Convert once, then re-runs it whenever the input
	// directory changes, until the context is cancelled.
	Watch(ctx context.Context, opts domain.ConvertOptions) error
}

// LibraryService reads a produced symbol library for inspection surfaces.
type LibraryService interface {
	// List returns every entry in the library at path.
	List(ctx context.Context, path string) ([]domain.SymbolEntry, error)

	// Get returns the entry with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, path, id string) (*domain.SymbolEntry, error)
}
