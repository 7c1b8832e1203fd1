package domain

// RawDocument represents opaque vector-markup bytes read by a connector.
// It is the connector's output before normalisation.
type RawDocument struct {
	// URI is the original location (file path).
	URI string

	// Content is the raw markup text.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}

// ChangeType represents the type of document change.
type ChangeType int

const (
	// ChangeCreated indicates a new document.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified document.
	ChangeUpdated

	// ChangeDeleted indicates a removed document.
	ChangeDeleted
)

// RawDocumentChange represents a change event from a connector.
// Used by watch mode to trigger re-conversion.
type RawDocumentChange struct {
	// Type is the kind of change.
	Type ChangeType

	// URI is the affected file path.
	URI string
}
