package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecolorMode(t *testing.T) {
	t.Run("keep is the default", func(t *testing.T) {
		mode, err := ParseRecolorMode("")
		require.NoError(t, err)
		assert.Equal(t, RecolorKeep, mode.Kind)
	})

	t.Run("keywords are case-insensitive", func(t *testing.T) {
		for _, s := range []string{"keep", "Keep", "KEEP"} {
			mode, err := ParseRecolorMode(s)
			require.NoError(t, err)
			assert.Equal(t, RecolorKeep, mode.Kind)
		}
		for _, s := range []string{"tintReady", "tintready", "TintReady", "tint-ready"} {
			mode, err := ParseRecolorMode(s)
			require.NoError(t, err)
			assert.Equal(t, RecolorTintReady, mode.Kind)
		}
	})

	t.Run("mono with six hex digits", func(t *testing.T) {
		mode, err := ParseRecolorMode("mono:1a2b3c")
		require.NoError(t, err)
		assert.Equal(t, RecolorMono, mode.Kind)
		assert.Equal(t, "#1a2b3c", mode.Color)
	})

	t.Run("mono with three hex digits", func(t *testing.T) {
		mode, err := ParseRecolorMode("MONO:FFF")
		require.NoError(t, err)
		assert.Equal(t, RecolorMono, mode.Kind)
		assert.Equal(t, "#FFF", mode.Color)
	})

	t.Run("mono rejects bad hex", func(t *testing.T) {
		for _, s := range []string{"mono:", "mono:xyz", "mono:12345", "mono:#fff"} {
			_, err := ParseRecolorMode(s)
			assert.ErrorIs(t, err, ErrInvalidInput, s)
		}
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		_, err := ParseRecolorMode("sepia")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestRecolorModeString(t *testing.T) {
	assert.Equal(t, "keep", RecolorMode{Kind: RecolorKeep}.String())
	assert.Equal(t, "tintReady", RecolorMode{Kind: RecolorTintReady}.String())
	assert.Equal(t, "mono:c00", RecolorMode{Kind: RecolorMono, Color: "#c00"}.String())
}

func TestConvertOptionsHash(t *testing.T) {
	base := ConvertOptions{Category: "Emblems", Recolor: RecolorMode{Kind: RecolorKeep}}

	t.Run("stable for equal options", func(t *testing.T) {
		assert.Equal(t, base.Hash(), base.Hash())
	})

	t.Run("changes when an entry-shaping option changes", func(t *testing.T) {
		stripped := base
		stripped.StripColors = true
		assert.NotEqual(t, base.Hash(), stripped.Hash())

		tinted := base
		tinted.Recolor = RecolorMode{Kind: RecolorTintReady}
		assert.NotEqual(t, base.Hash(), tinted.Hash())
	})

	t.Run("ignores paths", func(t *testing.T) {
		moved := base
		moved.InputDir = "/elsewhere"
		moved.OutputPath = "/tmp/out.json"
		assert.Equal(t, base.Hash(), moved.Hash())
	})
}
