package postprocessors

import (
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
	"github.com/flagforge/symbolkit/internal/postprocessors/cleaner"
)

// RegisterDefaults registers all built-in passes with the registry.
func RegisterDefaults(r *Registry) {
	r.Register("strip_noise", func() driven.MarkupPass { return cleaner.NewStripNoise() })
	r.Register("inline_stylesheets", func() driven.MarkupPass { return cleaner.NewInlineStylesheets() })
	r.Register("canonical_paths", func() driven.MarkupPass { return cleaner.NewCanonicalizePathData() })
	r.Register("regenerate_ids", func() driven.MarkupPass { return cleaner.NewRegenerateIdentifiers() })
}

// Default returns the standard cleanup pipeline. Noise goes first so
// later passes never see editor metadata; identifier regeneration runs
// last, after stylesheet inlining stops consuming class attributes.
func Default() *Pipeline {
	return NewPipeline(
		cleaner.NewStripNoise(),
		cleaner.NewInlineStylesheets(),
		cleaner.NewCanonicalizePathData(),
		cleaner.NewRegenerateIdentifiers(),
	)
}
