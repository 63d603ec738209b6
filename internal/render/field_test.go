package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/settings"
)

func testParams() Params {
	return Resolve(settings.Default(), []int{60})
}

func TestNewFieldDimensions(t *testing.T) {
	f := NewField(testParams(), 40, 20)
	w, h := f.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)
}

func TestStepEventuallyProducesCells(t *testing.T) {
	f := NewField(testParams(), 40, 20)

	for i := 0; i < 600; i++ {
		f.Step(1.0 / 60)
	}

	found := false
	for x := 0; x < 40 && !found; x++ {
		for y := 0; y < 20; y++ {
			if f.Cell(x, y).Zone != ZoneEmpty {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no drops appeared after ten simulated seconds")
}

func TestCellOutOfBoundsIsEmpty(t *testing.T) {
	f := NewField(testParams(), 10, 10)

	assert.Equal(t, ZoneEmpty, f.Cell(-1, 0).Zone)
	assert.Equal(t, ZoneEmpty, f.Cell(0, -1).Zone)
	assert.Equal(t, ZoneEmpty, f.Cell(10, 0).Zone)
	assert.Equal(t, ZoneEmpty, f.Cell(0, 10).Zone)
}

func TestCellGlyphsComeFromPool(t *testing.T) {
	p := testParams()
	p.Glyphs = "AB"
	f := NewField(p, 30, 20)

	for i := 0; i < 600; i++ {
		f.Step(1.0 / 60)
	}

	for x := 0; x < 30; x++ {
		for y := 0; y < 20; y++ {
			cell := f.Cell(x, y)
			if cell.Zone == ZoneEmpty {
				continue
			}
			assert.Contains(t, []rune{'A', 'B'}, cell.Glyph)
		}
	}
}

func TestResizePreservesOperation(t *testing.T) {
	f := NewField(testParams(), 40, 20)
	for i := 0; i < 60; i++ {
		f.Step(1.0 / 60)
	}

	f.Resize(10, 5)
	w, h := f.Size()
	require.Equal(t, 10, w)
	require.Equal(t, 5, h)

	// Stepping and reading after a shrink must stay in bounds.
	for i := 0; i < 120; i++ {
		f.Step(1.0 / 60)
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f.Cell(x, y)
		}
	}
}

func TestSetParamsSwapsGlyphPool(t *testing.T) {
	f := NewField(testParams(), 20, 10)
	for i := 0; i < 300; i++ {
		f.Step(1.0 / 60)
	}

	p := testParams()
	p.Glyphs = "Z"
	f.SetParams(p)

	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			cell := f.Cell(x, y)
			if cell.Zone != ZoneEmpty {
				assert.Equal(t, 'Z', cell.Glyph)
			}
		}
	}
}

func TestZeroParamsDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		f := NewField(Params{}, 10, 10)
		for i := 0; i < 60; i++ {
			f.Step(1.0 / 60)
		}
		f.Cell(5, 5)
	})
}
