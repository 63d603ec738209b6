package wire

import "github.com/termrain/termrain/internal/settings"

// ToSettings maps a persisted record to a valid Settings instance. This is
// the only validation gate between storage and the domain: every numeric
// field is saturated into its documented range, the schema version is floored
// to 1, and the custom-set blob decodes defensively. Total for any Record,
// including the zero value, where implicit wire zeros clamp to range minimums.
func ToSettings(r Record) settings.Settings {
	s := settings.Settings{
		SchemaVersion: int(r.SchemaVersion),

		FallSpeed:        r.FallSpeed,
		ColumnCount:      clampInt64(r.ColumnCount),
		LineSpacing:      r.LineSpacing,
		ActivePercentage: r.ActivePercentage,
		SpeedVariance:    r.SpeedVariance,

		GlowIntensity: r.GlowIntensity,
		JitterAmount:  r.JitterAmount,
		FlickerAmount: r.FlickerAmount,
		MutationRate:  r.MutationRate,

		GrainDensity: clampInt64(r.GrainDensity),
		GrainOpacity: r.GrainOpacity,
		TargetFPS:    clampInt64(r.TargetFPS),

		BackgroundColor:  clampColor(r.BackgroundColor),
		HeadColor:        clampColor(r.HeadColor),
		BrightTrailColor: clampColor(r.BrightTrailColor),
		TrailColor:       clampColor(r.TrailColor),
		DimColor:         clampColor(r.DimColor),
		UIAccent:         clampColor(r.UIAccent),
		UIOverlayBg:      clampColor(r.UIOverlayBg),
		UISelectionBg:    clampColor(r.UISelectionBg),

		AdvancedColorsEnabled: r.AdvancedColorsEnabled,
		LinkUIAndRainColors:   r.LinkUIAndRainColors,

		FontSize:          clampInt64(r.FontSize),
		SymbolSetID:       r.SymbolSetID,
		SavedCustomSets:   settings.DecodeCustomSets(r.SymbolSetsJSON),
		ActiveCustomSetID: r.ActiveCustomSetID,

		MaxTrailLength:       clampInt64(r.MaxTrailLength),
		MaxBrightTrailLength: clampInt64(r.MaxBrightTrailLength),

		ThemePresetID: r.ThemePresetID,

		ColumnStartDelay:   r.ColumnStartDelay,
		ColumnRestartDelay: r.ColumnRestartDelay,

		AlwaysShowHints: r.AlwaysShowHints,
	}

	if s.SymbolSetID == "" {
		s.SymbolSetID = settings.Default().SymbolSetID
	}

	return settings.Clamp(s)
}

// FromSettings maps a valid Settings instance to its persisted record. A
// plain field-by-field copy: the domain model is valid by construction, so no
// clamping happens on the write path.
func FromSettings(s settings.Settings) Record {
	return Record{
		SchemaVersion: int64(s.SchemaVersion),

		FallSpeed:        s.FallSpeed,
		ColumnCount:      int64(s.ColumnCount),
		LineSpacing:      s.LineSpacing,
		ActivePercentage: s.ActivePercentage,
		SpeedVariance:    s.SpeedVariance,

		GlowIntensity: s.GlowIntensity,
		JitterAmount:  s.JitterAmount,
		FlickerAmount: s.FlickerAmount,
		MutationRate:  s.MutationRate,

		GrainDensity: int64(s.GrainDensity),
		GrainOpacity: s.GrainOpacity,
		TargetFPS:    int64(s.TargetFPS),

		BackgroundColor:  uint64(s.BackgroundColor),
		HeadColor:        uint64(s.HeadColor),
		BrightTrailColor: uint64(s.BrightTrailColor),
		TrailColor:       uint64(s.TrailColor),
		DimColor:         uint64(s.DimColor),
		UIAccent:         uint64(s.UIAccent),
		UIOverlayBg:      uint64(s.UIOverlayBg),
		UISelectionBg:    uint64(s.UISelectionBg),

		AdvancedColorsEnabled: s.AdvancedColorsEnabled,
		LinkUIAndRainColors:   s.LinkUIAndRainColors,

		FontSize:          int64(s.FontSize),
		SymbolSetID:       s.SymbolSetID,
		SymbolSetsJSON:    settings.EncodeCustomSets(s.SavedCustomSets),
		ActiveCustomSetID: s.ActiveCustomSetID,

		MaxTrailLength:       int64(s.MaxTrailLength),
		MaxBrightTrailLength: int64(s.MaxBrightTrailLength),

		ThemePresetID: s.ThemePresetID,

		ColumnStartDelay:   s.ColumnStartDelay,
		ColumnRestartDelay: s.ColumnRestartDelay,

		AlwaysShowHints: s.AlwaysShowHints,
	}
}

// clampInt64 narrows a wire int64 to int without wrap-around so that absurd
// persisted values still saturate in settings.Clamp instead of overflowing.
func clampInt64(v int64) int {
	const maxInt = int64(^uint(0) >> 1)
	if v > maxInt {
		return int(maxInt)
	}
	if v < -maxInt-1 {
		return int(-maxInt - 1)
	}
	return int(v)
}

// clampColor saturates a widened color into the 32-bit ARGB range.
func clampColor(v uint64) uint32 {
	if v > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}
	return uint32(v)
}
