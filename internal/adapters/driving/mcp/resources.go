package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// uriScheme is the custom URI scheme for symbolkit resources.
const uriScheme = "symbolkit://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the whole library.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "library",
		Name:        "library",
		Description: "The full symbol library as JSON",
		MIMEType:    "application/json",
	}, s.handleLibraryResource)

	// Template for a single symbol's markup.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "symbols/{symbolId}",
		Name:        "symbol-markup",
		Description: "SVG markup of a single symbol",
		MIMEType:    "image/svg+xml",
	}, s.handleSymbolResource)
}

// handleLibraryResource returns every library entry without markup.
func (s *Server) handleLibraryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Library.List(ctx, s.ports.LibraryPath)
	if err != nil {
		return nil, fmt.Errorf("listing symbols: %w", err)
	}

	infos := make([]SymbolInfo, len(entries))
	for i := range entries {
		infos[i] = SymbolInfo{
			ID:       entries[i].ID,
			Name:     entries[i].Name,
			Category: entries[i].Category,
			ViewBox:  entries[i].ViewBox,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling symbols: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSymbolResource returns the markup of one symbol.
func (s *Server) handleSymbolResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSymbolID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Library.Get(ctx, s.ports.LibraryPath, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting symbol: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "image/svg+xml",
			Text:     entry.SVG,
		}},
	}, nil
}

// extractSymbolID extracts the id from a URI like symbolkit://symbols/{symbolId}.
func extractSymbolID(uri string) string {
	const prefix = uriScheme + "symbols/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
