package settings

// Valid ranges for every numeric field. This is the single authoritative
// table; it is applied whenever values cross a trust boundary (wire decode,
// CLI set, legacy migration).
const (
	MinFallSpeed = 0.5
	MaxFallSpeed = 10.0

	MinColumnCount = 50
	MaxColumnCount = 500

	MinLineSpacing = 0.5
	MaxLineSpacing = 2.0

	MinActivePercentage = 0.1
	MaxActivePercentage = 1.0

	MinSpeedVariance = 0.0
	MaxSpeedVariance = 0.5

	MinGlowIntensity = 0.0
	MaxGlowIntensity = 5.0

	MinJitterAmount = 0.0
	MaxJitterAmount = 5.0

	MinFlickerAmount = 0.0
	MaxFlickerAmount = 1.0

	MinMutationRate = 0.0
	MaxMutationRate = 0.5

	MinGrainDensity = 0
	MaxGrainDensity = 1000

	MinGrainOpacity = 0.0
	MaxGrainOpacity = 0.2

	MinTargetFPS = 5
	MaxTargetFPS = 120

	MinFontSize = 8
	MaxFontSize = 32

	MinTrailLength = 1
	MaxTrailLength = 100

	MinBrightTrailLength = 1
	MaxBrightTrailLength = 50

	MinColumnDelay = 0.0
	MaxColumnDelay = 0.5
)

// ClampFloat saturates v into [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt saturates v into [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp saturates every numeric field of s into its valid range and floors
// SchemaVersion to 1. Clamping is total and idempotent: it never rejects
// input, and clamping an already-valid Settings is the identity.
func Clamp(s Settings) Settings {
	if s.SchemaVersion < 1 {
		s.SchemaVersion = 1
	}

	s.FallSpeed = ClampFloat(s.FallSpeed, MinFallSpeed, MaxFallSpeed)
	s.ColumnCount = ClampInt(s.ColumnCount, MinColumnCount, MaxColumnCount)
	s.LineSpacing = ClampFloat(s.LineSpacing, MinLineSpacing, MaxLineSpacing)
	s.ActivePercentage = ClampFloat(s.ActivePercentage, MinActivePercentage, MaxActivePercentage)
	s.SpeedVariance = ClampFloat(s.SpeedVariance, MinSpeedVariance, MaxSpeedVariance)

	s.GlowIntensity = ClampFloat(s.GlowIntensity, MinGlowIntensity, MaxGlowIntensity)
	s.JitterAmount = ClampFloat(s.JitterAmount, MinJitterAmount, MaxJitterAmount)
	s.FlickerAmount = ClampFloat(s.FlickerAmount, MinFlickerAmount, MaxFlickerAmount)
	s.MutationRate = ClampFloat(s.MutationRate, MinMutationRate, MaxMutationRate)

	s.GrainDensity = ClampInt(s.GrainDensity, MinGrainDensity, MaxGrainDensity)
	s.GrainOpacity = ClampFloat(s.GrainOpacity, MinGrainOpacity, MaxGrainOpacity)
	s.TargetFPS = ClampInt(s.TargetFPS, MinTargetFPS, MaxTargetFPS)

	s.FontSize = ClampInt(s.FontSize, MinFontSize, MaxFontSize)

	s.MaxTrailLength = ClampInt(s.MaxTrailLength, MinTrailLength, MaxTrailLength)
	s.MaxBrightTrailLength = ClampInt(s.MaxBrightTrailLength, MinBrightTrailLength, MaxBrightTrailLength)

	s.ColumnStartDelay = ClampFloat(s.ColumnStartDelay, MinColumnDelay, MaxColumnDelay)
	s.ColumnRestartDelay = ClampFloat(s.ColumnRestartDelay, MinColumnDelay, MaxColumnDelay)

	// Color fields span the full uint32 range; nothing to saturate.

	return s
}
