package svg

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".svg"}, New().SupportedExtensions())
}

func TestNormalise_Success(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	raw := &domain.RawDocument{
		URI:     "emblems/Coat_of_arms_of_Albania.svg",
		Content: []byte(`<svg viewBox="0 0 512 512"><path d="M0 0 L512 512"/></svg>`),
	}
	opts := domain.ConvertOptions{Category: "National Emblems"}

	entry, err := normaliser.Normalise(ctx, raw, opts)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, "coat_of_arms_of_albania", entry.ID)
	assert.Equal(t, "Albania", entry.Name)
	assert.Equal(t, "National Emblems", entry.Category)
	assert.Equal(t, "0 0 512 512", entry.ViewBox)
	assert.Equal(t, `<path d="M0 0 L512 512"/>`, entry.SVG)
	assert.Equal(t, "emblems/Coat_of_arms_of_Albania.svg", entry.SourceFile)
}

func TestNormalise_WidthHeightFallback(t *testing.T) {
	raw := &domain.RawDocument{
		URI:     "eagle.svg",
		Content: []byte(`<svg width="200" height="100"><rect width="10" height="10"/></svg>`),
	}

	entry, err := New().Normalise(context.Background(), raw, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, "0 0 200 100", entry.ViewBox)
}

func TestNormalise_IDPrefixAndSanitization(t *testing.T) {
	raw := &domain.RawDocument{
		URI:     "Côte d'Ivoire.svg",
		Content: []byte(`<svg viewBox="0 0 1 1"><path d="M0 0"/></svg>`),
	}
	opts := domain.ConvertOptions{IDPrefix: "emblem_"}

	entry, err := New().Normalise(context.Background(), raw, opts)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^emblem_[a-z0-9_.\-]+$`), entry.ID)
	assert.NotContains(t, entry.ID, "'")
}

func TestNormalise_StripAndTint(t *testing.T) {
	raw := &domain.RawDocument{
		URI:     "lion.svg",
		Content: []byte(`<svg viewBox="0 0 10 10"><path fill="red" stroke="blue" d="M0 0"/></svg>`),
	}
	opts := domain.ConvertOptions{
		Recolor:     domain.RecolorMode{Kind: domain.RecolorTintReady},
		StripColors: true,
	}

	entry, err := New().Normalise(context.Background(), raw, opts)
	require.NoError(t, err)

	assert.NotContains(t, entry.SVG, `fill="red"`)
	assert.NotContains(t, entry.SVG, `stroke="blue"`)
	assert.Contains(t, entry.SVG, `<g fill="currentColor" stroke="currentColor">`)
}

func TestNormalise_NestedPicksInner(t *testing.T) {
	raw := &domain.RawDocument{
		URI: "wrapped.svg",
		Content: []byte(`<svg viewBox="0 0 1000 1000">` +
			`<svg viewBox="0 0 100 100"><path d="M1 1"/></svg>` +
			`</svg>`),
	}

	entry, err := New().Normalise(context.Background(), raw, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, "0 0 100 100", entry.ViewBox)
	assert.Equal(t, `<path d="M1 1"/>`, entry.SVG)
}

func TestNormalise_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document", func(t *testing.T) {
		_, err := New().Normalise(ctx, nil, domain.ConvertOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("no svg container", func(t *testing.T) {
		raw := &domain.RawDocument{URI: "x.svg", Content: []byte(`<html></html>`)}
		_, err := New().Normalise(ctx, raw, domain.ConvertOptions{})
		assert.ErrorIs(t, err, domain.ErrNoFragment)
	})

	t.Run("no resolvable frame", func(t *testing.T) {
		raw := &domain.RawDocument{URI: "x.svg", Content: []byte(`<svg><path d="M0 0"/></svg>`)}
		_, err := New().Normalise(ctx, raw, domain.ConvertOptions{})
		assert.ErrorIs(t, err, domain.ErrNoViewBox)
	})
}
