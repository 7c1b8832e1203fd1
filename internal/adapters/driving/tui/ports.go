// Package tui provides an interactive terminal browser over a symbol
// library file. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/flagforge/symbolkit/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library reads symbol library files.
	Library driving.LibraryService

	// LibraryPath is the library file to browse.
	LibraryPath string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	return nil
}
