package svg

import (
	"context"
	"os"
	"path/filepath"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles SVG documents.
type Normaliser struct{}

// New creates a new SVG normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".svg"}
}

// Normalise extracts a symbol entry from one raw SVG document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument, opts domain.ConvertOptions) (*domain.SymbolEntry, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	fragments := DiscoverFragments(string(raw.Content))
	viewBox, content, err := Select(fragments)
	if err != nil {
		return nil, err
	}

	markup := ApplyStyle(content, opts.Recolor, opts.StripColors)
	filename := filepath.Base(raw.URI)

	return &domain.SymbolEntry{
		ID:         domain.SanitizeID(opts.IDPrefix + stem(filename)),
		Name:       domain.DeriveName(filename),
		Category:   opts.Category,
		ViewBox:    viewBox,
		SVG:        markup,
		SourceFile: relativeToInvocation(raw.URI),
	}, nil
}

// stem drops the file extension.
func stem(filename string) string {
	ext := filepath.Ext(filename)
	return filename[:len(filename)-len(ext)]
}

// relativeToInvocation rewrites uri relative to the working directory
// when possible, keeping provenance paths short and diff-friendly.
func relativeToInvocation(uri string) string {
	if !filepath.IsAbs(uri) {
		return filepath.ToSlash(uri)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return uri
	}
	rel, err := filepath.Rel(cwd, uri)
	if err != nil {
		return uri
	}
	return filepath.ToSlash(rel)
}
