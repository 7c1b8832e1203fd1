// Package mcp provides an MCP (Model Context Protocol) server adapter
// for symbolkit. It lets AI assistants browse and fetch entries from a
// produced symbol library.
package mcp

import "errors"

// ErrMissingLibraryService is returned when the library service is not provided.
var ErrMissingLibraryService = errors.New("mcp: library service is required")
