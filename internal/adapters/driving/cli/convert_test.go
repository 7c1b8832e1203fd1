package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagforge/symbolkit/internal/core/domain"
	"github.com/flagforge/symbolkit/internal/core/ports/driving"
)

// mockConverter implements driving.Converter for command tests.
type mockConverter struct {
	report   *domain.RunReport
	err      error
	lastOpts domain.ConvertOptions
	watched  bool
}

func (m *mockConverter) Convert(_ context.Context, opts domain.ConvertOptions) (*domain.RunReport, error) {
	m.lastOpts = opts
	return m.report, m.err
}

func (m *mockConverter) Watch(_ context.Context, opts domain.ConvertOptions) error {
	m.lastOpts = opts
	m.watched = true
	return m.err
}

// mockLibrary implements driving.LibraryService for command tests.
type mockLibrary struct {
	entries []domain.SymbolEntry
	err     error
}

func (m *mockLibrary) List(_ context.Context, _ string) ([]domain.SymbolEntry, error) {
	return m.entries, m.err
}

func (m *mockLibrary) Get(_ context.Context, _ string, id string) (*domain.SymbolEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.entries {
		if m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func withServices(t *testing.T, c driving.Converter, l driving.LibraryService) {
	t.Helper()
	origConverter, origLibrary := converter, libraryService
	SetServices(c, l)
	t.Cleanup(func() {
		converter = origConverter
		libraryService = origLibrary
	})
}

func TestConvertCmd_Use(t *testing.T) {
	assert.Equal(t, "convert [input-dir]", convertCmd.Use)
}

func TestConvertCmd_Defaults(t *testing.T) {
	mock := &mockConverter{report: &domain.RunReport{Processed: 3}}
	withServices(t, mock, nil)

	out, err := execute(t, "convert", "flags")
	require.NoError(t, err)

	assert.Equal(t, "flags", mock.lastOpts.InputDir)
	assert.Equal(t, "public/symbols.json", mock.lastOpts.OutputPath)
	assert.Equal(t, "Symbols", mock.lastOpts.Category)
	assert.Equal(t, domain.RecolorKeep, mock.lastOpts.Recolor.Kind)
	assert.False(t, mock.lastOpts.StripColors)
	assert.Contains(t, out, "Converted 3 file(s)")
}

func TestConvertCmd_Flags(t *testing.T) {
	mock := &mockConverter{report: &domain.RunReport{Processed: 1}}
	withServices(t, mock, nil)

	_, err := execute(t, "convert", "flags",
		"--out", "lib.json",
		"--category", "Flags",
		"--prefix", "flag-",
		"--recolor", "mono:ff0000",
		"--strip-colors",
		"--keep-ids",
		"--no-cache",
	)
	require.NoError(t, err)

	assert.Equal(t, "lib.json", mock.lastOpts.OutputPath)
	assert.Equal(t, "Flags", mock.lastOpts.Category)
	assert.Equal(t, "flag-", mock.lastOpts.IDPrefix)
	assert.Equal(t, domain.RecolorMono, mock.lastOpts.Recolor.Kind)
	assert.Equal(t, "#ff0000", mock.lastOpts.Recolor.Color)
	assert.True(t, mock.lastOpts.StripColors)
	assert.True(t, mock.lastOpts.PreserveIdentifiers)
	assert.True(t, mock.lastOpts.NoCache)

	// Flag vars persist between executions; reset for other tests.
	convertOut = "public/symbols.json"
	convertCategory = "Symbols"
	convertPrefix = ""
	convertRecolor = "keep"
	convertStrip = false
	convertKeepIDs = false
	convertNoCache = false
}

func TestConvertCmd_InvalidRecolor(t *testing.T) {
	withServices(t, &mockConverter{}, nil)

	_, err := execute(t, "convert", "flags", "--recolor", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recolor")

	convertRecolor = "keep"
}

func TestConvertCmd_ReportsFailures(t *testing.T) {
	mock := &mockConverter{report: &domain.RunReport{Processed: 2, Failed: 1, KeptExisting: 4}}
	withServices(t, mock, nil)

	out, err := execute(t, "convert", "flags")
	require.NoError(t, err)
	assert.Contains(t, out, "1 skipped")
	assert.Contains(t, out, "Kept 4 existing entries")
}

func TestConvertCmd_ConvertError(t *testing.T) {
	withServices(t, &mockConverter{err: errors.New("no candidate files")}, nil)

	_, err := execute(t, "convert", "empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidate files")
}

func TestConvertCmd_Watch(t *testing.T) {
	mock := &mockConverter{report: &domain.RunReport{}}
	withServices(t, mock, nil)

	_, err := execute(t, "convert", "flags", "--watch")
	require.NoError(t, err)
	assert.True(t, mock.watched)

	convertWatch = false
}

func TestConvertCmd_NotConfigured(t *testing.T) {
	withServices(t, nil, nil)

	_, err := execute(t, "convert", "flags")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
