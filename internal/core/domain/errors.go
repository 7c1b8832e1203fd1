package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates the input directory held no candidate files.
	// This is the only fatal per-run condition.
	ErrEmptyInput = errors.New("no input files")

	// ErrNoFragment indicates no drawable container was discovered in a
	// document.
	ErrNoFragment = errors.New("no drawable fragment found")

	// ErrNoViewBox indicates no candidate fragment yielded a resolvable
	// coordinate frame with non-empty content.
	ErrNoViewBox = errors.New("no resolvable viewBox")

	// ErrUnsupportedType indicates a file with an unrecognised extension.
	ErrUnsupportedType = errors.New("unsupported type")
)
