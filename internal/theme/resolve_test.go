package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/settings"
)

func TestResolveRawColors(t *testing.T) {
	s := settings.Default()
	s.ThemePresetID = ""
	s.LinkUIAndRainColors = false

	c := Resolve(s)
	assert.Equal(t, s.BackgroundColor, c.Background)
	assert.Equal(t, s.HeadColor, c.Head)
	assert.Equal(t, s.UIAccent, c.UIAccent)
	assert.Equal(t, s.UISelectionBg, c.UISelection)
}

func TestResolvePresetOverwritesAllColors(t *testing.T) {
	s := settings.Default()
	s.HeadColor = 0xFF123456
	s.ThemePresetID = PresetAmber
	s.LinkUIAndRainColors = false

	c := Resolve(s)
	assert.Equal(t, Lookup(PresetAmber).Colors, c)
	assert.NotEqual(t, s.HeadColor, c.Head)
}

func TestResolveLinkingRunsAfterPreset(t *testing.T) {
	s := settings.Default()
	s.UIAccent = 0xFF111111
	s.ThemePresetID = PresetCrimson
	s.LinkUIAndRainColors = true

	c := Resolve(s)
	preset := Lookup(PresetCrimson).Colors

	// The linked accent tracks the preset's head, not the raw settings.
	assert.Equal(t, preset.Head, c.UIAccent)
	assert.Equal(t, preset.Head&SelectionAlphaMask, c.UISelection)
}

func TestResolveLinkingWithoutPreset(t *testing.T) {
	s := settings.Default()
	s.HeadColor = 0xFFAABBCC
	s.ThemePresetID = ""
	s.LinkUIAndRainColors = true

	c := Resolve(s)
	assert.Equal(t, uint32(0xFFAABBCC), c.UIAccent)
	assert.Equal(t, uint32(0x40AABBCC), c.UISelection)
}

func TestResolveAdvancedPassIsIdentity(t *testing.T) {
	s := settings.Default()
	s.LinkUIAndRainColors = false

	off := Resolve(s)
	s.AdvancedColorsEnabled = true
	on := Resolve(s)
	assert.Equal(t, off, on)
}

func TestSelectionMaskKeepsRGB(t *testing.T) {
	masked := uint32(0xFFAABBCC) & SelectionAlphaMask
	assert.Equal(t, uint8(0x40), Alpha(masked))
	assert.Equal(t, uint8(0xAA), Red(masked))
	assert.Equal(t, uint8(0xBB), Green(masked))
	assert.Equal(t, uint8(0xCC), Blue(masked))
}

func TestLookupFallsBackToFirstPreset(t *testing.T) {
	all := Presets()
	require.NotEmpty(t, all)

	assert.Equal(t, all[0], Lookup("does-not-exist"))
	assert.Equal(t, PresetIce, Lookup(PresetIce).ID)
	assert.True(t, IsValid(PresetGhost))
	assert.False(t, IsValid("does-not-exist"))
}

func TestPresetIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Presets() {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
	}
}

func TestEffectiveHelpersAgreeWithResolve(t *testing.T) {
	s := settings.Default()
	s.ThemePresetID = ""

	for _, linked := range []bool{false, true} {
		s.LinkUIAndRainColors = linked
		c := Resolve(s)
		assert.Equal(t, c.UIAccent, EffectiveUIAccent(s))
		assert.Equal(t, c.UISelection, EffectiveSelectionBg(s))
	}
}

func TestHexRGBDropsAlpha(t *testing.T) {
	assert.Equal(t, "#00FF66", HexRGB(0xFF00FF66))
	assert.Equal(t, "#00FF66", HexRGB(0x4000FF66))
	assert.Equal(t, "#000000", HexRGB(0xCC000000))
}
