// Package domain defines the core business entities for symbolkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque bytes read from a vector-markup file
//   - Fragment: A candidate drawable region discovered in a document
//   - SymbolEntry: A normalized, library-persisted drawable unit
//   - ConvertOptions: Run-scoped configuration for one conversion
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
