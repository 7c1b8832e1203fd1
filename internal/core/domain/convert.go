package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ConvertOptions is the run-scoped configuration for one conversion.
// It is passed explicitly into the pipeline entry point; nothing here
// is held as ambient state.
type ConvertOptions struct {
	// InputDir is the directory of raw vector files. Required.
	InputDir string

	// OutputPath is the destination library file.
	OutputPath string

	// Category is stamped onto every entry produced in this run.
	Category string

	// IDPrefix is prepended to every derived id before sanitization.
	IDPrefix string

	// Recolor selects the color-normalisation mode.
	Recolor RecolorMode

	// StripColors removes explicit fill/stroke declarations before any
	// recolor wrapping.
	StripColors bool

	// PreserveIdentifiers skips id/class regeneration during the
	// cleanup pre-pass.
	PreserveIdentifiers bool

	// NoCache bypasses reads of the ingest state cache. Outcomes are
	// still recorded.
	NoCache bool
}

// Hash returns a stable digest of the options that affect an entry's
// bytes. The ingest state cache keys on it so that changing, say, the
// recolor mode invalidates prior outcomes.
func (o ConvertOptions) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "category=%s\nprefix=%s\nrecolor=%s\nstrip=%t\nkeepids=%t\n",
		o.Category, o.IDPrefix, o.Recolor.String(), o.StripColors, o.PreserveIdentifiers)
	return hex.EncodeToString(h.Sum(nil))
}

// RunReport summarises one conversion run.
type RunReport struct {
	// RunID uniquely identifies the run.
	RunID string

	// Processed counts files that produced a library entry.
	Processed int

	// Cached counts files skipped because their recorded outcome matched.
	Cached int

	// Failed counts files that produced no entry.
	Failed int

	// KeptExisting counts pre-existing library entries preserved by the merge.
	KeptExisting int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// FileStatus is the recorded outcome for one source file.
type FileStatus string

const (
	// FileStatusConverted means the file produced a library entry.
	FileStatusConverted FileStatus = "converted"

	// FileStatusFailed means no acceptable fragment was found.
	FileStatusFailed FileStatus = "failed"
)

// IngestState is the persisted per-file outcome of a previous run.
type IngestState struct {
	// Path is the source file path, relative to the invocation location.
	Path string

	// ContentHash digests the file's raw bytes.
	ContentHash string

	// OptionsHash digests the run options that shaped the outcome.
	OptionsHash string

	// EntryID is the library id produced, empty for failed files.
	EntryID string

	// Status records the outcome.
	Status FileStatus

	// UpdatedAt is when the outcome was recorded.
	UpdatedAt time.Time
}
