package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/symbolset"
	"github.com/termrain/termrain/internal/theme"
)

func TestCoerceFPS(t *testing.T) {
	tests := []struct {
		name      string
		target    int
		supported []int
		want      int
	}{
		{"exact match", 60, []int{30, 60, 120}, 60},
		{"nearest below", 62, []int{60, 90, 120}, 60},
		{"nearest above", 85, []int{60, 90, 120}, 90},
		{"clamped then matched", 500, []int{60, 90, 120}, 120},
		{"clamped low", -10, []int{5, 60}, 5},
		{"empty list falls back", 10, nil, FallbackFPS},
		{"unordered list", 60, []int{120, 30, 60}, 60},
		{"single rate", 10, []int{144}, 144},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceFPS(tt.target, tt.supported))
		})
	}
}

func TestCoerceFPSTieKeepsFirst(t *testing.T) {
	// 75 is equidistant from 60 and 90; the scan keeps the earlier rate.
	assert.Equal(t, 60, CoerceFPS(75, []int{60, 90}))
	assert.Equal(t, 90, CoerceFPS(75, []int{90, 60}))
}

func TestResolveFlattensSettings(t *testing.T) {
	s := settings.Default()
	s.TargetFPS = 62

	p := Resolve(s, []int{60, 90, 120})
	assert.Equal(t, s.FallSpeed, p.FallSpeed)
	assert.Equal(t, s.ColumnCount, p.ColumnCount)
	assert.Equal(t, 60, p.FPS)
	assert.Equal(t, theme.Resolve(s), p.Colors)
	assert.Equal(t, symbolset.Lookup(s.SymbolSetID).Glyphs, p.Glyphs)
}

func TestResolveUsesActiveCustomSet(t *testing.T) {
	s := settings.Default().WithCustomSets([]settings.CustomSet{
		{ID: "x", Name: "X", Characters: "#@!"},
	})
	s.ActiveCustomSetID = "x"

	p := Resolve(s, nil)
	assert.Equal(t, "#@!", p.Glyphs)
	assert.Equal(t, FallbackFPS, p.FPS)
}
