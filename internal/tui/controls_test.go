package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/theme"
)

func TestEveryControlRendersAndMutates(t *testing.T) {
	controls := buildControls()
	require.NotEmpty(t, controls)

	s := settings.Default()
	for _, c := range controls {
		assert.NotEmpty(t, c.label)
		assert.NotEmpty(t, c.value(s), c.label)

		// Both directions must yield a clamped, valid draft.
		down := c.decrease(s).Apply(s)
		up := c.increase(s).Apply(s)
		assert.Equal(t, down, settings.Clamp(down), c.label)
		assert.Equal(t, up, settings.Clamp(up), c.label)
	}
}

func TestThemeControlCyclesThroughPresets(t *testing.T) {
	c := themeControl()
	s := settings.Default()
	require.Empty(t, s.ThemePresetID)
	assert.Equal(t, "custom", c.value(s))

	// Walk forward through every preset and back to "custom".
	steps := len(theme.Presets()) + 1
	for i := 0; i < steps; i++ {
		s = c.increase(s).Apply(s)
	}
	assert.Empty(t, s.ThemePresetID)

	// One step back from "custom" lands on the last preset.
	s = c.decrease(s).Apply(s)
	presets := theme.Presets()
	assert.Equal(t, presets[len(presets)-1].ID, s.ThemePresetID)
}

func TestSymbolControlCyclesBuiltins(t *testing.T) {
	c := symbolControl()
	s := settings.Default()
	start := s.SymbolSetID

	seen := map[string]bool{}
	for {
		seen[s.SymbolSetID] = true
		s = c.increase(s).Apply(s)
		if s.SymbolSetID == start {
			break
		}
	}
	assert.True(t, seen[settings.SymbolSetLatin])
	assert.True(t, seen[settings.SymbolSetBinary])
	assert.True(t, seen[settings.SymbolSetRunic])
}

func TestControlRowMarksSelection(t *testing.T) {
	c := buildControls()[0]
	s := settings.Default()

	assert.Contains(t, controlRow(c, s, true), "> ")
	assert.NotContains(t, controlRow(c, s, false), "> ")
}
