package settings

import (
	"fmt"
	"strconv"
)

// FieldValue formats the current value of a named field for CLI display.
// Colors print as 0xAARRGGBB.
func FieldValue(s Settings, field string) (string, error) {
	kind, ok := fieldKinds[field]
	if !ok {
		return "", fmt.Errorf("unknown settings field: %s", field)
	}

	switch kind {
	case kindFloat:
		return strconv.FormatFloat(floatValue(s, field), 'g', -1, 64), nil
	case kindInt:
		return strconv.Itoa(intValue(s, field)), nil
	case kindColor:
		return fmt.Sprintf("0x%08X", colorValue(s, field)), nil
	case kindBool:
		return strconv.FormatBool(boolValue(s, field)), nil
	default:
		return stringValue(s, field), nil
	}
}

func floatValue(s Settings, field string) float64 {
	switch field {
	case FieldFallSpeed:
		return s.FallSpeed
	case FieldLineSpacing:
		return s.LineSpacing
	case FieldActivePercentage:
		return s.ActivePercentage
	case FieldSpeedVariance:
		return s.SpeedVariance
	case FieldGlowIntensity:
		return s.GlowIntensity
	case FieldJitterAmount:
		return s.JitterAmount
	case FieldFlickerAmount:
		return s.FlickerAmount
	case FieldMutationRate:
		return s.MutationRate
	case FieldGrainOpacity:
		return s.GrainOpacity
	case FieldColumnStartDelay:
		return s.ColumnStartDelay
	case FieldColumnRestartDelay:
		return s.ColumnRestartDelay
	}
	return 0
}

func intValue(s Settings, field string) int {
	switch field {
	case FieldColumnCount:
		return s.ColumnCount
	case FieldGrainDensity:
		return s.GrainDensity
	case FieldTargetFPS:
		return s.TargetFPS
	case FieldFontSize:
		return s.FontSize
	case FieldMaxTrailLength:
		return s.MaxTrailLength
	case FieldMaxBrightTrailLength:
		return s.MaxBrightTrailLength
	}
	return 0
}

func colorValue(s Settings, field string) uint32 {
	switch field {
	case FieldBackgroundColor:
		return s.BackgroundColor
	case FieldHeadColor:
		return s.HeadColor
	case FieldBrightTrailColor:
		return s.BrightTrailColor
	case FieldTrailColor:
		return s.TrailColor
	case FieldDimColor:
		return s.DimColor
	case FieldUIAccent:
		return s.UIAccent
	case FieldUIOverlayBg:
		return s.UIOverlayBg
	case FieldUISelectionBg:
		return s.UISelectionBg
	}
	return 0
}

func boolValue(s Settings, field string) bool {
	switch field {
	case FieldAdvancedColorsEnabled:
		return s.AdvancedColorsEnabled
	case FieldLinkUIAndRainColors:
		return s.LinkUIAndRainColors
	case FieldAlwaysShowHints:
		return s.AlwaysShowHints
	}
	return false
}

func stringValue(s Settings, field string) string {
	switch field {
	case FieldSymbolSetID:
		return s.SymbolSetID
	case FieldThemePresetID:
		return s.ThemePresetID
	}
	return ""
}
