// Package filesystem enumerates raw vector files from a local directory.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
	"github.com/flagforge/symbolkit/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector reads vector files from a root directory. Only the top
// level of the directory is scanned; files are emitted in name order so
// downstream output stays stable across runs.
type Connector struct {
	rootPath   string
	extensions map[string]bool
}

// New creates a filesystem connector for rootPath accepting the given
// extensions (lowercase, with leading dot). With no extensions, ".svg"
// is assumed.
func New(rootPath string, extensions ...string) *Connector {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	if len(exts) == 0 {
		exts[".svg"] = true
	}
	return &Connector{rootPath: rootPath, extensions: exts}
}

// Type identifies the connector type.
func (c *Connector) Type() string {
	return "filesystem"
}

// Close releases resources. The scan holds none outside its goroutine.
func (c *Connector) Close() error {
	return nil
}

// FullScan streams every candidate file once, in name order.
func (c *Connector) FullScan(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		paths, err := c.listFiles()
		if err != nil {
			errs <- err
			return
		}

		for _, path := range paths {
			if ctx.Err() != nil {
				return
			}

			content, err := os.ReadFile(path)
			if err != nil {
				// One unreadable file must not sink the batch.
				logger.Warn("skipping unreadable file %s: %v", path, err)
				continue
			}

			doc := domain.RawDocument{
				URI:     path,
				Content: content,
				Metadata: map[string]any{
					"filename":  filepath.Base(path),
					"extension": strings.TrimPrefix(filepath.Ext(path), "."),
				},
			}

			select {
			case docs <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	return docs, errs
}

// Watch streams change events for candidate files until ctx is done.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.RawDocumentChange, <-chan error) {
	changes := make(chan domain.RawDocumentChange)
	errs := make(chan error, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		close(changes)
		errs <- fmt.Errorf("create watcher: %w", err)
		close(errs)
		return changes, errs
	}

	if err := watcher.Add(c.rootPath); err != nil {
		watcher.Close()
		close(changes)
		errs <- fmt.Errorf("watch %s: %w", c.rootPath, err)
		close(errs)
		return changes, errs
	}

	go func() {
		defer close(changes)
		defer close(errs)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !c.accepts(event.Name) {
					continue
				}
				change, relevant := mapEvent(event)
				if !relevant {
					continue
				}
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("watch error: %v", err)
			}
		}
	}()

	return changes, errs
}

// listFiles returns the candidate file paths in name order.
func (c *Connector) listFiles() ([]string, error) {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input directory %s does not exist", c.rootPath)
		}
		return nil, fmt.Errorf("stat %s: %w", c.rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", c.rootPath)
	}

	entries, err := os.ReadDir(c.rootPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.rootPath, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !c.accepts(name) {
			continue
		}
		paths = append(paths, filepath.Join(c.rootPath, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// accepts reports whether a filename has a recognised extension.
func (c *Connector) accepts(name string) bool {
	return c.extensions[strings.ToLower(filepath.Ext(name))]
}

// mapEvent converts an fsnotify event to a domain change.
func mapEvent(event fsnotify.Event) (domain.RawDocumentChange, bool) {
	switch {
	case event.Op.Has(fsnotify.Create):
		return domain.RawDocumentChange{Type: domain.ChangeCreated, URI: event.Name}, true
	case event.Op.Has(fsnotify.Write):
		return domain.RawDocumentChange{Type: domain.ChangeUpdated, URI: event.Name}, true
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return domain.RawDocumentChange{Type: domain.ChangeDeleted, URI: event.Name}, true
	default:
		return domain.RawDocumentChange{}, false
	}
}
