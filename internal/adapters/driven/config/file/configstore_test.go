package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	t.Run("creates config in given directory", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewConfigStore(dir)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	})

	t.Run("starts empty without a config file", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		_, ok := store.Get("convert.category")
		assert.False(t, ok)
	})
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("convert.category", "Heraldry"))
	require.NoError(t, store.Set("convert.strip", true))

	assert.Equal(t, "Heraldry", store.GetString("convert.category"))
	assert.True(t, store.GetBool("convert.strip"))
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("convert.category", "Heraldry"))

	assert.False(t, store.GetBool("convert.category"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	config := "[convert]\noutput = \"lib/symbols.json\"\nrecolor = \"tintReady\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "lib/symbols.json", store.GetString("convert.output"))
	assert.Equal(t, "tintReady", store.GetString("convert.recolor"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("convert.recolor", "mono:c00"))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "mono:c00", second.GetString("convert.recolor"))
}
