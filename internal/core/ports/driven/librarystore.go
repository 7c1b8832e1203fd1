package driven

import (
	"context"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// MergeResult reports what a library merge did.
type MergeResult struct {
	// KeptExisting counts pre-existing entries preserved unchanged.
	KeptExisting int

	// Overwritten counts pre-existing entries replaced by new ones.
	Overwritten int

	// Added counts entries that did not exist before.
	Added int
}

// LibraryStore persists the symbol library as a JSON array on disk.
type LibraryStore interface {
	// Merge combines entries with the library at path, new entries
	// winning id collisions, and writes the result. A missing,
	// unreadable or non-array prior file counts as an empty library.
	Merge(ctx context.Context, path string, entries []domain.SymbolEntry) (*MergeResult, error)

	// Load reads the library at path. Entries lacking the fields this
	// pipeline writes are skipped. A missing file yields an empty slice.
	Load(ctx context.Context, path string) ([]domain.SymbolEntry, error)
}

// IngestStateStore caches per-file conversion outcomes across runs.
type IngestStateStore interface {
	// Get returns the recorded outcome for path, or domain.ErrNotFound.
	Get(ctx context.Context, path string) (*domain.IngestState, error)

	// Save records the outcome for a file, replacing any prior record.
	Save(ctx context.Context, state domain.IngestState) error

	// Close releases the underlying storage.
	Close() error
}
