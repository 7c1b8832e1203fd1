package postprocessors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

func TestRegistry_RegisterAndBuild(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", func() driven.MarkupPass { return &stubPass{name: "stub"} })

	pass, err := r.Build("stub")

	require.NoError(t, err)
	assert.Equal(t, "stub", pass.Name())
}

func TestRegistry_BuildUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pass")
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", func() driven.MarkupPass { return &stubPass{name: "stub"} })

	assert.True(t, r.Has("stub"))
	assert.False(t, r.Has("nope"))
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	for _, name := range []string{"strip_noise", "inline_stylesheets", "canonical_paths", "regenerate_ids"} {
		assert.True(t, r.Has(name), name)

		pass, err := r.Build(name)
		require.NoError(t, err)
		assert.Equal(t, name, pass.Name())
	}
	assert.Len(t, r.Names(), 4)
}
