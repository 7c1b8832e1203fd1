package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// ListSymbolsInput is the input schema for the list_symbols tool.
type ListSymbolsInput struct {
	Category string `json:"category,omitempty" jsonschema:"only return symbols in this category"`
	Query    string `json:"query,omitempty" jsonschema:"substring match against symbol ids and names"`
}

// ListSymbolsOutput is the output schema for the list_symbols tool.
type ListSymbolsOutput struct {
	Symbols []SymbolInfo `json:"symbols"`
	Count   int          `json:"count"`
}

// SymbolInfo is a library entry without its markup.
type SymbolInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ViewBox  string `json:"viewBox"`
}

// GetSymbolInput is the input schema for the get_symbol tool.
type GetSymbolInput struct {
	ID string `json:"id" jsonschema:"the symbol id to fetch"`
}

// GetSymbolOutput is the output schema for the get_symbol tool.
type GetSymbolOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ViewBox  string `json:"viewBox"`
	SVG      string `json:"svg"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_symbols",
		Description: "List entries in the symbol library, optionally filtered by category or a substring query",
	}, s.handleListSymbols)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_symbol",
		Description: "Fetch one symbol library entry including its SVG markup",
	}, s.handleGetSymbol)
}

// handleListSymbols handles the list_symbols tool invocation.
func (s *Server) handleListSymbols(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSymbolsInput,
) (*mcp.CallToolResult, ListSymbolsOutput, error) {
	entries, err := s.ports.Library.List(ctx, s.ports.LibraryPath)
	if err != nil {
		return nil, ListSymbolsOutput{}, fmt.Errorf("listing symbols: %w", err)
	}

	query := strings.ToLower(input.Query)

	output := ListSymbolsOutput{Symbols: []SymbolInfo{}}
	for i := range entries {
		if input.Category != "" && entries[i].Category != input.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(entries[i].ID), query) &&
			!strings.Contains(strings.ToLower(entries[i].Name), query) {
			continue
		}
		output.Symbols = append(output.Symbols, SymbolInfo{
			ID:       entries[i].ID,
			Name:     entries[i].Name,
			Category: entries[i].Category,
			ViewBox:  entries[i].ViewBox,
		})
	}
	output.Count = len(output.Symbols)

	return nil, output, nil
}

// handleGetSymbol handles the get_symbol tool invocation.
func (s *Server) handleGetSymbol(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSymbolInput,
) (*mcp.CallToolResult, GetSymbolOutput, error) {
	entry, err := s.ports.Library.Get(ctx, s.ports.LibraryPath, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, GetSymbolOutput{}, fmt.Errorf("no symbol %q in library", input.ID)
		}
		return nil, GetSymbolOutput{}, fmt.Errorf("getting symbol: %w", err)
	}

	return nil, GetSymbolOutput{
		ID:       entry.ID,
		Name:     entry.Name,
		Category: entry.Category,
		ViewBox:  entry.ViewBox,
		SVG:      entry.SVG,
	}, nil
}
