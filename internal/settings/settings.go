// Package settings defines the digital-rain settings domain model.
package settings

// Built-in symbol set identifiers.
const (
	SymbolSetLatin    = "latin"
	SymbolSetKatakana = "katakana"
	SymbolSetMixed    = "mixed"
	SymbolSetBinary   = "binary"
	SymbolSetDigits   = "digits"
	SymbolSetRunic    = "runic"
)

// CustomSetFontDefault is the font assigned to custom sets that don't pick one.
const CustomSetFontDefault = "monospace.ttf"

// CustomSet is a user-authored glyph pool.
//
// Characters may be empty and may contain duplicates; no dedup is applied.
type CustomSet struct {
	// ID uniquely identifies the set. Generated at creation, never reused.
	ID string `json:"id"`

	// Name is the user-visible label.
	Name string `json:"name"`

	// Characters is the raw glyph pool drawn from by the renderer.
	Characters string `json:"characters"`

	// FontFileName names the font used to render this set.
	FontFileName string `json:"fontFileName"`
}

// Settings holds every user-configurable rendering parameter.
//
// Values are immutable: mutations produce a new instance (see Mutation).
// Any Settings returned by this package or by the wire mapper satisfies the
// ranges in the clamp table; external input must pass through Clamp first.
type Settings struct {
	// SchemaVersion is the persisted schema revision, always >= 1.
	SchemaVersion int

	// Motion.
	FallSpeed        float64
	ColumnCount      int
	LineSpacing      float64
	ActivePercentage float64
	SpeedVariance    float64

	// Effects.
	GlowIntensity float64
	JitterAmount  float64
	FlickerAmount float64
	MutationRate  float64

	// Background.
	GrainDensity int
	GrainOpacity float64
	TargetFPS    int

	// Colors, 32-bit ARGB. Unsigned so 0xFFFFFFFF round-trips without
	// sign-extension ambiguity.
	BackgroundColor  uint32
	HeadColor        uint32
	BrightTrailColor uint32
	TrailColor       uint32
	DimColor         uint32
	UIAccent         uint32
	UIOverlayBg      uint32
	UISelectionBg    uint32

	// Advanced color flags.
	AdvancedColorsEnabled bool
	LinkUIAndRainColors   bool

	// Character settings. SymbolSetID is either a built-in identifier or
	// "custom" when ActiveCustomSetID references a saved set.
	FontSize          int
	SymbolSetID       string
	SavedCustomSets   []CustomSet
	ActiveCustomSetID string // empty means no custom set selected

	// Trail lengths.
	MaxTrailLength       int
	MaxBrightTrailLength int

	// ThemePresetID selects a preset palette. Empty means the colors are
	// user-customized and no preset is active.
	ThemePresetID string

	// Timing.
	ColumnStartDelay   float64
	ColumnRestartDelay float64

	// Developer.
	AlwaysShowHints bool
}

// Default returns the documented default settings (classic green rain).
func Default() Settings {
	return Settings{
		SchemaVersion: 1,

		FallSpeed:        2.0,
		ColumnCount:      150,
		LineSpacing:      1.0,
		ActivePercentage: 0.7,
		SpeedVariance:    0.2,

		GlowIntensity: 1.0,
		JitterAmount:  0.0,
		FlickerAmount: 0.2,
		MutationRate:  0.05,

		GrainDensity: 200,
		GrainOpacity: 0.05,
		TargetFPS:    60,

		BackgroundColor:  0xFF000000,
		HeadColor:        0xFFD0FFD0,
		BrightTrailColor: 0xFF00FF66,
		TrailColor:       0xFF00CC44,
		DimColor:         0xFF006622,
		UIAccent:         0xFF00FF66,
		UIOverlayBg:      0xCC000000,
		UISelectionBg:    0x4000FF66,

		AdvancedColorsEnabled: false,
		LinkUIAndRainColors:   false,

		FontSize:          14,
		SymbolSetID:       SymbolSetKatakana,
		SavedCustomSets:   nil,
		ActiveCustomSetID: "",

		MaxTrailLength:       25,
		MaxBrightTrailLength: 8,

		ThemePresetID: "",

		ColumnStartDelay:   0.0,
		ColumnRestartDelay: 0.25,

		AlwaysShowHints: false,
	}
}

// WithCustomSets returns a copy of s with the saved custom set list replaced.
func (s Settings) WithCustomSets(sets []CustomSet) Settings {
	s.SavedCustomSets = sets
	return s
}

// CustomSetByID returns the saved set with the given ID, if present.
func (s Settings) CustomSetByID(id string) (CustomSet, bool) {
	for _, set := range s.SavedCustomSets {
		if set.ID == id {
			return set, true
		}
	}
	return CustomSet{}, false
}
