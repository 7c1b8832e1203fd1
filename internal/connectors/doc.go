// Package connectors provides implementations of the Connector
// interface for enumerating raw vector files. Each connector knows how
// to read and watch a specific source kind; the filesystem connector is
// the only one the converter currently needs.
package connectors
