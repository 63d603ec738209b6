// Package render resolves settings into renderer parameters and runs the
// rain field simulation.
package render

import (
	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/symbolset"
	"github.com/termrain/termrain/internal/theme"
)

// FallbackFPS is used when the device reports no supported refresh rates.
const FallbackFPS = 60

// Params is the flattened parameter bag consumed by the renderer. It is an
// immutable snapshot recomputed on every settings change; resolving it is a
// cheap pure computation, so nothing is cached across changes.
type Params struct {
	FallSpeed        float64
	ColumnCount      int
	LineSpacing      float64
	ActivePercentage float64
	SpeedVariance    float64

	GlowIntensity float64
	JitterAmount  float64
	FlickerAmount float64
	MutationRate  float64

	GrainDensity int
	GrainOpacity float64

	// FPS is the target frame rate coerced to the device's capabilities.
	FPS int

	Colors theme.Colors

	FontSize int
	Glyphs   string

	MaxTrailLength       int
	MaxBrightTrailLength int

	ColumnStartDelay   float64
	ColumnRestartDelay float64

	AlwaysShowHints bool
}

// CoerceFPS maps the requested frame rate onto the supported refresh rates:
// the target is clamped to its valid range, then the nearest supported rate
// wins. On an exact tie either adjacent rate may be picked (the scan keeps
// the first). An empty rate list falls back to FallbackFPS. The supported
// list is untrusted input: it may be empty or oddly ordered.
func CoerceFPS(target int, supported []int) int {
	target = settings.ClampInt(target, settings.MinTargetFPS, settings.MaxTargetFPS)
	if len(supported) == 0 {
		return FallbackFPS
	}
	best := supported[0]
	for _, rate := range supported[1:] {
		if abs(rate-target) < abs(best-target) {
			best = rate
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Resolve flattens settings and the device refresh-rate capability into the
// renderer parameter bag, resolving colors and the active glyph pool along
// the way. targetFps is re-clamped defensively even though the domain model
// already satisfies its range.
func Resolve(s settings.Settings, supportedRates []int) Params {
	return Params{
		FallSpeed:        s.FallSpeed,
		ColumnCount:      s.ColumnCount,
		LineSpacing:      s.LineSpacing,
		ActivePercentage: s.ActivePercentage,
		SpeedVariance:    s.SpeedVariance,

		GlowIntensity: s.GlowIntensity,
		JitterAmount:  s.JitterAmount,
		FlickerAmount: s.FlickerAmount,
		MutationRate:  s.MutationRate,

		GrainDensity: s.GrainDensity,
		GrainOpacity: s.GrainOpacity,

		FPS: CoerceFPS(s.TargetFPS, supportedRates),

		Colors: theme.Resolve(s),

		FontSize: s.FontSize,
		Glyphs:   symbolset.GlyphsFor(s),

		MaxTrailLength:       s.MaxTrailLength,
		MaxBrightTrailLength: s.MaxBrightTrailLength,

		ColumnStartDelay:   s.ColumnStartDelay,
		ColumnRestartDelay: s.ColumnRestartDelay,

		AlwaysShowHints: s.AlwaysShowHints,
	}
}
