// Package postprocessors provides the markup cleanup pipeline run over
// raw vector files before fragment discovery.
package postprocessors

import (
	"context"
	"fmt"
	"regexp"

	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

var viewBoxAttr = regexp.MustCompile(`(?i)viewBox\s*=`)

// Ensure Pipeline implements the interface.
var _ driven.Optimiser = (*Pipeline)(nil)

// Pipeline chains MarkupPasses and runs them in order. It implements
// the Optimiser port.
type Pipeline struct {
	passes []driven.MarkupPass
}

// NewPipeline creates a cleanup pipeline with the given passes.
// Passes are executed in the order provided.
func NewPipeline(passes ...driven.MarkupPass) *Pipeline {
	return &Pipeline{
		passes: passes,
	}
}

// Clean runs the markup through all passes in order.
//
// The bounding box is load-bearing downstream, so a result that lost a
// viewBox attribute is returned as an error; callers then fall back to
// the untransformed original.
func (p *Pipeline) Clean(ctx context.Context, markup string, preserveIdentifiers bool) (string, error) {
	viewBoxes := len(viewBoxAttr.FindAllStringIndex(markup, -1))

	out := markup
	for _, pass := range p.passes {
		var err error
		out, err = pass.Apply(ctx, out, preserveIdentifiers)
		if err != nil {
			return "", fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
	}

	if len(viewBoxAttr.FindAllStringIndex(out, -1)) < viewBoxes {
		return "", fmt.Errorf("cleanup dropped a viewBox attribute")
	}

	return out, nil
}

// Add appends a pass to the pipeline.
func (p *Pipeline) Add(pass driven.MarkupPass) {
	p.passes = append(p.passes, pass)
}

// Len returns the number of passes in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.passes)
}
