package theme

import (
	"fmt"

	"github.com/termrain/termrain/internal/settings"
)

// SelectionAlphaMask is ANDed onto the head color to derive the selection
// background when color linking is on. A bitwise mask, not an alpha blend:
// the RGB channels pass through untouched and the alpha saturates at 0x40.
const SelectionAlphaMask = 0x40FFFFFF

// Resolve derives the final render colors from a settings instance. The
// layering is ordered and non-commutative:
//
//  1. seed with the raw settings colors
//  2. an active theme preset overwrites all eight colors
//  3. the advanced-color pass runs (currently identity)
//  4. linking overwrites the UI accent and selection from the head color
//
// Linking runs last so a linked UI accent tracks the preset's head color
// rather than the raw settings value.
func Resolve(s settings.Settings) Colors {
	c := Colors{
		Background:  s.BackgroundColor,
		Head:        s.HeadColor,
		BrightTrail: s.BrightTrailColor,
		Trail:       s.TrailColor,
		Dim:         s.DimColor,
		UIAccent:    s.UIAccent,
		UIOverlayBg: s.UIOverlayBg,
		UISelection: s.UISelectionBg,
	}

	if s.ThemePresetID != "" {
		c = Lookup(s.ThemePresetID).Colors
	}

	if s.AdvancedColorsEnabled {
		c = adjustAdvanced(c)
	}

	if s.LinkUIAndRainColors {
		c.UIAccent = c.Head
		c.UISelection = c.Head & SelectionAlphaMask
	}

	return c
}

// adjustAdvanced is the reserved advanced-color extension point. It must
// stay an identity pass-through until a real adjustment policy exists.
func adjustAdvanced(c Colors) Colors {
	return c
}

// EffectiveUIAccent applies only the linking rule, skipping the preset step.
// Lightweight call sites that need one derived color use this; it agrees
// with Resolve whenever no theme preset is active.
func EffectiveUIAccent(s settings.Settings) uint32 {
	if s.LinkUIAndRainColors {
		return s.HeadColor
	}
	return s.UIAccent
}

// EffectiveSelectionBg is the linking-only counterpart for the selection
// background.
func EffectiveSelectionBg(s settings.Settings) uint32 {
	if s.LinkUIAndRainColors {
		return s.HeadColor & SelectionAlphaMask
	}
	return s.UISelectionBg
}

// HexRGB formats an ARGB value as a #RRGGBB string for terminal styling,
// dropping the alpha channel.
func HexRGB(argb uint32) string {
	return fmt.Sprintf("#%06X", argb&0x00FFFFFF)
}

// Channel accessors for ARGB values.

func Alpha(argb uint32) uint8 { return uint8(argb >> 24) }
func Red(argb uint32) uint8   { return uint8(argb >> 16) }
func Green(argb uint32) uint8 { return uint8(argb >> 8) }
func Blue(argb uint32) uint8  { return uint8(argb) }
