// Package jsonfile persists the symbol library as a pretty-printed JSON
// array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LibraryStore = (*Store)(nil)

// Store is the JSON-array implementation of driven.LibraryStore.
//
// Merging is last-writer-wins by entry id. Pre-existing entries that do
// not collide survive byte-faithfully at the object level, including
// caller-supplied fields this pipeline never writes. Output ordering is
// stable: surviving entries keep their original positions, new entries
// append in the order produced, which keeps repeated runs diffable and
// idempotent.
type Store struct{}

// New creates a library store.
func New() *Store {
	return &Store{}
}

// Merge combines entries with the library at path and writes the result.
func (s *Store) Merge(_ context.Context, path string, entries []domain.SymbolEntry) (*driven.MergeResult, error) {
	prior := readPrior(path)

	newByID := make(map[string]int, len(entries))
	for i := range entries {
		newByID[entries[i].ID] = i
	}

	result := &driven.MergeResult{}
	merged := make([]any, 0, len(prior)+len(entries))
	consumed := make(map[string]bool, len(entries))

	for _, raw := range prior {
		id, ok := rawID(raw)
		if ok {
			if i, collides := newByID[id]; collides {
				merged = append(merged, entries[i])
				consumed[id] = true
				result.Overwritten++
				continue
			}
		}
		merged = append(merged, raw)
		result.KeptExisting++
	}

	for i := range entries {
		if consumed[entries[i].ID] {
			continue
		}
		merged = append(merged, entries[i])
		result.Added++
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal library: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write library: %w", err)
	}

	return result, nil
}

// Load reads the library at path, skipping entries this pipeline's
// schema cannot represent.
func (s *Store) Load(_ context.Context, path string) ([]domain.SymbolEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read library: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}

	entries := make([]domain.SymbolEntry, 0, len(raw))
	for _, elem := range raw {
		var entry domain.SymbolEntry
		if err := json.Unmarshal(elem, &entry); err != nil {
			continue
		}
		if entry.ID == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// readPrior loads the pre-existing library as raw objects. A missing,
// unreadable or non-array file is an empty prior state, not an error.
func readPrior(path string) []json.RawMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

// rawID extracts the string id of a raw library object.
func rawID(raw json.RawMessage) (string, bool) {
	var probe struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", false
	}
	id, ok := probe.ID.(string)
	return id, ok && id != ""
}
