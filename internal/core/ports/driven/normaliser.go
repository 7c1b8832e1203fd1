package driven

import (
	"context"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// Normaliser transforms one raw vector document into a symbol entry.
// It owns fragment discovery, candidate selection, viewBox resolution
// and style normalisation for its format.
type Normaliser interface {
	// SupportedExtensions returns the lowercase file extensions this
	// normaliser handles, including the leading dot.
	SupportedExtensions() []string

	// Normalise extracts a symbol entry from raw. It returns
	// domain.ErrNoFragment when no drawable container was discovered and
	// domain.ErrNoViewBox when no candidate passed selection.
	Normalise(ctx context.Context, raw *domain.RawDocument, opts domain.ConvertOptions) (*domain.SymbolEntry, error)
}

// Optimiser runs a structural cleanup transform over raw markup before
// fragment discovery. It must never remove or alter a viewBox attribute.
// Callers treat an error as "use the untransformed original".
type Optimiser interface {
	Clean(ctx context.Context, markup string, preserveIdentifiers bool) (string, error)
}

// MarkupPass is one named step of the cleanup transform. Passes are
// chained by a pipeline; each receives the previous pass's output.
type MarkupPass interface {
	// Name identifies the pass in errors and configuration.
	Name() string

	// Apply transforms markup. preserveIdentifiers asks passes that
	// rewrite ids or classes to leave them untouched.
	Apply(ctx context.Context, markup string, preserveIdentifiers bool) (string, error)
}
