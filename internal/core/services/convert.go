package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
	"github.com/flagforge/symbolkit/internal/core/ports/driving"
	"github.com/flagforge/symbolkit/internal/logger"
)

// watchRunInterval caps how often watch mode re-runs a conversion.
const watchRunInterval = 2 * time.Second

// Ensure ConvertOrchestrator implements the interface.
var _ driving.Converter = (*ConvertOrchestrator)(nil)

// ConvertOrchestrator coordinates the conversion pipeline: enumerate
// raw files, clean, extract, normalise, then merge the produced entries
// into the library with a single trailing write.
type ConvertOrchestrator struct {
	factory    driven.ConnectorFactory
	normaliser driven.Normaliser
	optimiser  driven.Optimiser
	library    driven.LibraryStore
	states     driven.IngestStateStore
}

// NewConvertOrchestrator creates a new conversion orchestrator.
// The state store is optional - if nil, outcome caching is disabled and
// every file is reprocessed on every run.
func NewConvertOrchestrator(
	factory driven.ConnectorFactory,
	normaliser driven.Normaliser,
	optimiser driven.Optimiser,
	library driven.LibraryStore,
	states driven.IngestStateStore,
) *ConvertOrchestrator {
	return &ConvertOrchestrator{
		factory:    factory,
		normaliser: normaliser,
		optimiser:  optimiser,
		library:    library,
		states:     states,
	}
}

// Convert runs the batch pipeline over opts.InputDir.
//
// Files are processed strictly sequentially. Per-file failures are
// logged and counted but never abort the batch; the only fatal input
// condition is a directory yielding zero candidate files, reported as
// domain.ErrEmptyInput before anything is written.
func (o *ConvertOrchestrator) Convert(ctx context.Context, opts domain.ConvertOptions) (*domain.RunReport, error) {
	if opts.InputDir == "" {
		return nil, fmt.Errorf("%w: input directory required", domain.ErrInvalidInput)
	}

	started := time.Now()
	report := &domain.RunReport{RunID: uuid.New().String()}

	connector, err := o.factory.Create(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	defer connector.Close()

	// Ids already in the library; a cached skip is only safe when the
	// previously produced entry still exists in the output file.
	existingIDs := o.existingIDs(ctx, opts.OutputPath)
	optionsHash := opts.Hash()

	logger.Section("Converting " + opts.InputDir)

	var entries []domain.SymbolEntry
	seen := 0

	docsCh, errsCh := connector.FullScan(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("scan input: %w", err)
			}

		case raw, ok := <-docsCh:
			if !ok {
				return o.finish(ctx, opts, report, entries, seen, started)
			}
			seen++

			entry, cached, err := o.processOne(ctx, &raw, opts, optionsHash, existingIDs)
			switch {
			case cached:
				report.Cached++
				logger.Info("[%d] %s: cached", seen, raw.URI)
			case err != nil:
				report.Failed++
				logger.Warn("skipping %s: %v", raw.URI, err)
			default:
				entries = append(entries, *entry)
				report.Processed++
				logger.Info("[%d] %s -> %s", seen, raw.URI, entry.ID)
			}
		}
	}
}

// Watch runs Convert once, then re-runs it whenever the input directory
// changes, until the context is cancelled. Re-runs are rate-limited so
// a burst of file events collapses into few conversions.
func (o *ConvertOrchestrator) Watch(ctx context.Context, opts domain.ConvertOptions) error {
	if _, err := o.Convert(ctx, opts); err != nil && !errors.Is(err, domain.ErrEmptyInput) {
		return err
	}

	connector, err := o.factory.Create(opts.InputDir)
	if err != nil {
		return fmt.Errorf("create connector: %w", err)
	}
	defer connector.Close()

	limiter := rate.NewLimiter(rate.Every(watchRunInterval), 1)

	changesCh, errsCh := connector.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			if err != nil {
				return fmt.Errorf("watch input: %w", err)
			}

		case change, ok := <-changesCh:
			if !ok {
				return nil
			}
			logger.Debug("change detected: %s", change.URI)

			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			if _, err := o.Convert(ctx, opts); err != nil && !errors.Is(err, domain.ErrEmptyInput) {
				return err
			}
		}
	}
}

// processOne handles the per-file pipeline: cache check, cleanup
// pre-pass, then extraction.
func (o *ConvertOrchestrator) processOne(
	ctx context.Context,
	raw *domain.RawDocument,
	opts domain.ConvertOptions,
	optionsHash string,
	existingIDs map[string]bool,
) (*domain.SymbolEntry, bool, error) {
	contentHash := hashContent(raw.Content)

	if state := o.cachedState(ctx, raw.URI, opts); state != nil {
		if state.ContentHash == contentHash &&
			state.OptionsHash == optionsHash &&
			state.Status == domain.FileStatusConverted &&
			existingIDs[state.EntryID] {
			return nil, true, nil
		}
	}

	// Cleanup pre-pass. An optimiser error falls back to the original
	// untransformed text; the file is only abandoned if extraction then
	// also fails.
	working := *raw
	cleaned, err := o.optimiser.Clean(ctx, string(raw.Content), opts.PreserveIdentifiers)
	if err != nil {
		logger.Debug("cleanup failed for %s, using original: %v", raw.URI, err)
	} else {
		working.Content = []byte(cleaned)
	}

	entry, err := o.normaliser.Normalise(ctx, &working, opts)
	if err != nil {
		o.recordState(ctx, raw.URI, contentHash, optionsHash, "", domain.FileStatusFailed)
		return nil, false, err
	}

	o.recordState(ctx, raw.URI, contentHash, optionsHash, entry.ID, domain.FileStatusConverted)
	return entry, false, nil
}

// finish performs the single merge-and-write after the batch completes.
func (o *ConvertOrchestrator) finish(
	ctx context.Context,
	opts domain.ConvertOptions,
	report *domain.RunReport,
	entries []domain.SymbolEntry,
	seen int,
	started time.Time,
) (*domain.RunReport, error) {
	if seen == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrEmptyInput, opts.InputDir)
	}

	// Nothing converted and nothing cached still merges: the write is
	// what guarantees the output file exists and stays well-formed.
	result, err := o.library.Merge(ctx, opts.OutputPath, entries)
	if err != nil {
		return nil, fmt.Errorf("merge library: %w", err)
	}

	report.KeptExisting = result.KeptExisting
	report.Duration = time.Since(started)

	logger.Info("Run %s: %d converted, %d cached, %d failed, %d kept existing",
		report.RunID, report.Processed, report.Cached, report.Failed, report.KeptExisting)
	return report, nil
}

// cachedState fetches the recorded outcome for a file, honouring the
// no-cache flag. Lookup errors just mean "no cache hit".
func (o *ConvertOrchestrator) cachedState(ctx context.Context, path string, opts domain.ConvertOptions) *domain.IngestState {
	if o.states == nil || opts.NoCache {
		return nil
	}
	state, err := o.states.Get(ctx, path)
	if err != nil {
		return nil
	}
	return state
}

// recordState persists a file outcome, best-effort.
func (o *ConvertOrchestrator) recordState(ctx context.Context, path, contentHash, optionsHash, entryID string, status domain.FileStatus) {
	if o.states == nil {
		return
	}
	err := o.states.Save(ctx, domain.IngestState{
		Path:        path,
		ContentHash: contentHash,
		OptionsHash: optionsHash,
		EntryID:     entryID,
		Status:      status,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		logger.Debug("failed to record state for %s: %v", path, err)
	}
}

// existingIDs loads the id set currently present in the output library.
func (o *ConvertOrchestrator) existingIDs(ctx context.Context, path string) map[string]bool {
	ids := make(map[string]bool)
	entries, err := o.library.Load(ctx, path)
	if err != nil {
		return ids
	}
	for i := range entries {
		ids[entries[i].ID] = true
	}
	return ids
}

// hashContent digests raw file bytes for the ingest state cache.
func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
