// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Connector: Enumerates raw vector files from a source directory
//   - Normaliser: Transforms a raw document into a symbol entry
//   - Optimiser: Cleans raw markup ahead of fragment discovery
//   - LibraryStore: Merges and persists the symbol library
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - IngestStateStore: Per-file outcome cache. Without it every file is
//     reprocessed on every run.
//   - ConfigStore: Flag defaults. Without it built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
