package postprocessors

import (
	"fmt"

	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// BuilderFunc creates a MarkupPass.
type BuilderFunc func() driven.MarkupPass

// Registry maps pass names to their builders. It allows construction
// of a pipeline from a configured pass list.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new pass registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a pass builder to the registry. Name should be unique
// and match the pass's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a pass by name.
// Returns an error if the pass name is not registered.
func (r *Registry) Build(name string) (driven.MarkupPass, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown pass: %s", name)
	}
	return builder(), nil
}

// Has returns true if a pass with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered pass names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}
