package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	t.Run("defaults to svg extension", func(t *testing.T) {
		connector := New("/tmp/in")

		require.NotNil(t, connector)
		assert.True(t, connector.accepts("eagle.svg"))
		assert.True(t, connector.accepts("EAGLE.SVG"))
		assert.False(t, connector.accepts("eagle.png"))
	})

	t.Run("implements Connector interface", func(t *testing.T) {
		var _ driven.Connector = New("/tmp/in")
	})
}

func TestConnector_Type(t *testing.T) {
	assert.Equal(t, "filesystem", New("/tmp").Type())
}

func TestConnector_FullScan(t *testing.T) {
	t.Run("streams svg files in name order", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "b.svg"), []byte("<svg/>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "a.svg"), []byte("<svg/>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("skip"), 0644))

		docsChan, errsChan := New(tempDir).FullScan(context.Background())

		var docs []domain.RawDocument
		for doc := range docsChan {
			docs = append(docs, doc)
		}
		for err := range errsChan {
			require.NoError(t, err)
		}

		require.Len(t, docs, 2)
		assert.Contains(t, docs[0].URI, "a.svg")
		assert.Contains(t, docs[1].URI, "b.svg")
	})

	t.Run("skips hidden files and subdirectories", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".hidden.svg"), []byte("<svg/>"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(tempDir, "nested.svg"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "visible.svg"), []byte("<svg/>"), 0644))

		docsChan, _ := New(tempDir).FullScan(context.Background())

		var docs []domain.RawDocument
		for doc := range docsChan {
			docs = append(docs, doc)
		}

		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].URI, "visible.svg")
	})

	t.Run("includes file metadata and content", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "lion.svg"), []byte("<svg>x</svg>"), 0644))

		docsChan, _ := New(tempDir).FullScan(context.Background())

		var docs []domain.RawDocument
		for doc := range docsChan {
			docs = append(docs, doc)
		}

		require.Len(t, docs, 1)
		assert.Equal(t, []byte("<svg>x</svg>"), docs[0].Content)
		assert.Equal(t, "lion.svg", docs[0].Metadata["filename"])
		assert.Equal(t, "svg", docs[0].Metadata["extension"])
	})

	t.Run("reports non-existent directory", func(t *testing.T) {
		docsChan, errsChan := New("/non/existent/path").FullScan(context.Background())

		for range docsChan {
		}

		select {
		case err := <-errsChan:
			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not exist")
		case <-time.After(time.Second):
			t.Fatal("expected error for non-existent directory")
		}
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "a.svg"), []byte("<svg/>"), 0644))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		docsChan, errsChan := New(tempDir).FullScan(ctx)
		for range docsChan {
		}
		for range errsChan {
		}
	})
}

func TestConnector_Watch(t *testing.T) {
	t.Run("reports created svg files", func(t *testing.T) {
		tempDir := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changesChan, errsChan := New(tempDir).Watch(ctx)

		// Give the watcher a moment to attach before writing.
		time.Sleep(50 * time.Millisecond)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "new.svg"), []byte("<svg/>"), 0644))

		select {
		case change := <-changesChan:
			assert.Contains(t, change.URI, "new.svg")
		case err := <-errsChan:
			t.Fatalf("unexpected error: %v", err)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a change event")
		}
	})

	t.Run("ignores non-candidate files", func(t *testing.T) {
		tempDir := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changesChan, _ := New(tempDir).Watch(ctx)

		time.Sleep(50 * time.Millisecond)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "readme.txt"), []byte("x"), 0644))

		select {
		case change := <-changesChan:
			t.Fatalf("unexpected change for %s", change.URI)
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("fails for missing directory", func(t *testing.T) {
		ctx := context.Background()
		changesChan, errsChan := New("/non/existent/path").Watch(ctx)

		for range changesChan {
		}
		err, ok := <-errsChan
		require.True(t, ok)
		assert.Error(t, err)
	})
}

func TestMapEvent(t *testing.T) {
	tests := []struct {
		name     string
		op       fsnotify.Op
		want     domain.ChangeType
		relevant bool
	}{
		{"create", fsnotify.Create, domain.ChangeCreated, true},
		{"write", fsnotify.Write, domain.ChangeUpdated, true},
		{"remove", fsnotify.Remove, domain.ChangeDeleted, true},
		{"rename", fsnotify.Rename, domain.ChangeDeleted, true},
		{"chmod", fsnotify.Chmod, domain.ChangeCreated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, relevant := mapEvent(fsnotify.Event{Name: "x.svg", Op: tt.op})
			assert.Equal(t, tt.relevant, relevant)
			if relevant {
				assert.Equal(t, tt.want, change.Type)
			}
		})
	}
}
