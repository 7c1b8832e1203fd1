package driven

import (
	"context"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// Connector enumerates raw vector documents from a source.
// The only shipped implementation reads a local directory; the interface
// keeps the orchestrator testable with synthetic sources.
type Connector interface {
	// Type identifies the connector type (e.g., "filesystem").
	Type() string

	// FullScan streams every candidate document once. Both channels are
	// closed when enumeration finishes. A fatal enumeration error is sent
	// on the error channel before close.
	FullScan(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Watch streams change events until the context is cancelled.
	// Connectors that cannot watch return domain.ErrUnsupportedType.
	Watch(ctx context.Context) (<-chan domain.RawDocumentChange, <-chan error)

	// Close releases any resources held by the connector.
	Close() error
}

// ConnectorFactory creates a connector for an input directory.
// It exists so the orchestrator can be tested with synthetic sources.
type ConnectorFactory interface {
	Create(inputDir string) (Connector, error)
}
