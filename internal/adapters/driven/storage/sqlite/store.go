package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/flagforge/symbolkit/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IngestStateStore = (*Store)(nil)

// Store is the SQLite-backed ingest state cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates the state store at the specified data directory.
// If dataDir is empty, defaults to ~/.symbolkit/data/state.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".symbolkit", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")

	// WAL mode for better concurrency between CLI invocations.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the recorded outcome for path, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, path string) (*domain.IngestState, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT path, content_hash, options_hash, entry_id, status, updated_at
		FROM ingest_state WHERE path = ?
	`, path)

	var state domain.IngestState
	var status, updatedAt string
	if err := row.Scan(&state.Path, &state.ContentHash, &state.OptionsHash,
		&state.EntryID, &status, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning ingest state: %w", err)
	}

	state.Status = domain.FileStatus(status)
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		state.UpdatedAt = t
	}
	return &state, nil
}

// Save records the outcome for a file, replacing any prior record.
func (s *Store) Save(ctx context.Context, state domain.IngestState) error {
	if state.Path == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingest_state (path, content_hash, options_hash, entry_id, status, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content_hash = excluded.content_hash,
			options_hash = excluded.options_hash,
			entry_id = excluded.entry_id,
			status = excluded.status,
			updated_at = excluded.updated_at
	`, state.Path, state.ContentHash, state.OptionsHash,
		state.EntryID, string(state.Status), state.UpdatedAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("saving ingest state: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
