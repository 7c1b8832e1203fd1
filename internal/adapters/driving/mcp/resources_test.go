package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

func TestExtractSymbolID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid symbol URI",
			uri:      "symbolkit://symbols/albania",
			expected: "albania",
		},
		{
			name:     "invalid prefix",
			uri:      "file://symbols/albania",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSymbolID(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleLibraryResource(t *testing.T) {
	server := newTestServer(t, &mockLibraryService{entries: []domain.SymbolEntry{
		{ID: "albania", Name: "Albania", Category: "Flags", ViewBox: "0 0 980 700", SVG: "<svg/>"},
	}})

	result, err := server.handleLibraryResource(context.Background(), readRequest("symbolkit://library"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"id": "albania"`)
	// The markup is served per-symbol, not in the listing.
	assert.NotContains(t, result.Contents[0].Text, "<svg/>")
}

func TestServer_handleSymbolResource(t *testing.T) {
	server := newTestServer(t, &mockLibraryService{entries: []domain.SymbolEntry{
		{ID: "albania", SVG: `<svg viewBox="0 0 980 700"/>`},
	}})

	t.Run("returns markup", func(t *testing.T) {
		result, err := server.handleSymbolResource(context.Background(), readRequest("symbolkit://symbols/albania"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		assert.Equal(t, "image/svg+xml", result.Contents[0].MIMEType)
		assert.Equal(t, `<svg viewBox="0 0 980 700"/>`, result.Contents[0].Text)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := server.handleSymbolResource(context.Background(), readRequest("symbolkit://symbols/atlantis"))
		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleSymbolResource(context.Background(), readRequest("file://nope"))
		require.Error(t, err)
	})
}
