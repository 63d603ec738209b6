// Package wire defines the persisted settings schema and its binary codec.
//
// The persisted format is a flat, field-tagged binary message with implicit
// zero defaults: zero-valued fields are omitted on encode, and unknown tags
// are skipped on decode, so old readers tolerate new writers and vice versa.
package wire

// Field tags. Tags are append-only; never renumber.
const (
	tagSchemaVersion         = 1
	tagFallSpeed             = 2
	tagColumnCount           = 3
	tagLineSpacing           = 4
	tagActivePercentage      = 5
	tagSpeedVariance         = 6
	tagGlowIntensity         = 7
	tagJitterAmount          = 8
	tagFlickerAmount         = 9
	tagMutationRate          = 10
	tagGrainDensity          = 11
	tagGrainOpacity          = 12
	tagTargetFPS             = 13
	tagBackgroundColor       = 14
	tagHeadColor             = 15
	tagBrightTrailColor      = 16
	tagTrailColor            = 17
	tagDimColor              = 18
	tagUIAccent              = 19
	tagUIOverlayBg           = 20
	tagUISelectionBg         = 21
	tagAdvancedColorsEnabled = 22
	tagLinkUIAndRainColors   = 23
	tagFontSize              = 24
	tagSymbolSetID           = 25
	tagSymbolSetsJSON        = 26
	tagActiveCustomSetID     = 27
	tagMaxTrailLength        = 28
	tagMaxBrightTrailLength  = 29
	tagThemePresetID         = 30
	tagColumnStartDelay      = 31
	tagColumnRestartDelay    = 32
	tagAlwaysShowHints       = 33
)

// Record mirrors the Settings fields in wire shape. Integers are int64 and
// colors uint64 so that out-of-range persisted values survive decode and are
// saturated by the mapper rather than truncated by a cast.
type Record struct {
	SchemaVersion int64

	FallSpeed        float64
	ColumnCount      int64
	LineSpacing      float64
	ActivePercentage float64
	SpeedVariance    float64

	GlowIntensity float64
	JitterAmount  float64
	FlickerAmount float64
	MutationRate  float64

	GrainDensity int64
	GrainOpacity float64
	TargetFPS    int64

	BackgroundColor  uint64
	HeadColor        uint64
	BrightTrailColor uint64
	TrailColor       uint64
	DimColor         uint64
	UIAccent         uint64
	UIOverlayBg      uint64
	UISelectionBg    uint64

	AdvancedColorsEnabled bool
	LinkUIAndRainColors   bool

	FontSize          int64
	SymbolSetID       string
	SymbolSetsJSON    string
	ActiveCustomSetID string

	MaxTrailLength       int64
	MaxBrightTrailLength int64

	ThemePresetID string

	ColumnStartDelay   float64
	ColumnRestartDelay float64

	AlwaysShowHints bool
}

// IsZero reports whether the record has never been written, i.e. every field
// holds its implicit wire default. Gates the one-time legacy migration.
func (r Record) IsZero() bool {
	return r == Record{}
}
