package mcp

import (
	"github.com/flagforge/symbolkit/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Library reads symbol library files.
	Library driving.LibraryService

	// LibraryPath is the library file the server exposes.
	LibraryPath string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	return nil
}
