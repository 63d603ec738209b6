package settings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Mutation is a typed single-field edit. Constructors clamp their argument,
// so applying a Mutation to a valid Settings always yields a valid Settings.
type Mutation struct {
	field string
	apply func(Settings) Settings
}

// Field returns the name of the field this mutation edits.
func (m Mutation) Field() string { return m.field }

// Apply returns a copy of s with the mutation applied.
func (m Mutation) Apply(s Settings) Settings {
	if m.apply == nil {
		return s
	}
	return m.apply(s)
}

func floatMutation(field string, v, min, max float64, set func(*Settings, float64)) Mutation {
	clamped := ClampFloat(v, min, max)
	return Mutation{field: field, apply: func(s Settings) Settings {
		set(&s, clamped)
		return s
	}}
}

func intMutation(field string, v, min, max int, set func(*Settings, int)) Mutation {
	clamped := ClampInt(v, min, max)
	return Mutation{field: field, apply: func(s Settings) Settings {
		set(&s, clamped)
		return s
	}}
}

func colorMutation(field string, v uint32, set func(*Settings, uint32)) Mutation {
	return Mutation{field: field, apply: func(s Settings) Settings {
		set(&s, v)
		return s
	}}
}

func boolMutation(field string, v bool, set func(*Settings, bool)) Mutation {
	return Mutation{field: field, apply: func(s Settings) Settings {
		set(&s, v)
		return s
	}}
}

func stringMutation(field string, v string, set func(*Settings, string)) Mutation {
	return Mutation{field: field, apply: func(s Settings) Settings {
		set(&s, v)
		return s
	}}
}

// Motion.

func SetFallSpeed(v float64) Mutation {
	return floatMutation(FieldFallSpeed, v, MinFallSpeed, MaxFallSpeed,
		func(s *Settings, v float64) { s.FallSpeed = v })
}

func SetColumnCount(v int) Mutation {
	return intMutation(FieldColumnCount, v, MinColumnCount, MaxColumnCount,
		func(s *Settings, v int) { s.ColumnCount = v })
}

func SetLineSpacing(v float64) Mutation {
	return floatMutation(FieldLineSpacing, v, MinLineSpacing, MaxLineSpacing,
		func(s *Settings, v float64) { s.LineSpacing = v })
}

func SetActivePercentage(v float64) Mutation {
	return floatMutation(FieldActivePercentage, v, MinActivePercentage, MaxActivePercentage,
		func(s *Settings, v float64) { s.ActivePercentage = v })
}

func SetSpeedVariance(v float64) Mutation {
	return floatMutation(FieldSpeedVariance, v, MinSpeedVariance, MaxSpeedVariance,
		func(s *Settings, v float64) { s.SpeedVariance = v })
}

// Effects.

func SetGlowIntensity(v float64) Mutation {
	return floatMutation(FieldGlowIntensity, v, MinGlowIntensity, MaxGlowIntensity,
		func(s *Settings, v float64) { s.GlowIntensity = v })
}

func SetJitterAmount(v float64) Mutation {
	return floatMutation(FieldJitterAmount, v, MinJitterAmount, MaxJitterAmount,
		func(s *Settings, v float64) { s.JitterAmount = v })
}

func SetFlickerAmount(v float64) Mutation {
	return floatMutation(FieldFlickerAmount, v, MinFlickerAmount, MaxFlickerAmount,
		func(s *Settings, v float64) { s.FlickerAmount = v })
}

func SetMutationRate(v float64) Mutation {
	return floatMutation(FieldMutationRate, v, MinMutationRate, MaxMutationRate,
		func(s *Settings, v float64) { s.MutationRate = v })
}

// Background.

func SetGrainDensity(v int) Mutation {
	return intMutation(FieldGrainDensity, v, MinGrainDensity, MaxGrainDensity,
		func(s *Settings, v int) { s.GrainDensity = v })
}

func SetGrainOpacity(v float64) Mutation {
	return floatMutation(FieldGrainOpacity, v, MinGrainOpacity, MaxGrainOpacity,
		func(s *Settings, v float64) { s.GrainOpacity = v })
}

func SetTargetFPS(v int) Mutation {
	return intMutation(FieldTargetFPS, v, MinTargetFPS, MaxTargetFPS,
		func(s *Settings, v int) { s.TargetFPS = v })
}

// Colors.

func SetBackgroundColor(v uint32) Mutation {
	return colorMutation(FieldBackgroundColor, v, func(s *Settings, v uint32) { s.BackgroundColor = v })
}

func SetHeadColor(v uint32) Mutation {
	return colorMutation(FieldHeadColor, v, func(s *Settings, v uint32) { s.HeadColor = v })
}

func SetBrightTrailColor(v uint32) Mutation {
	return colorMutation(FieldBrightTrailColor, v, func(s *Settings, v uint32) { s.BrightTrailColor = v })
}

func SetTrailColor(v uint32) Mutation {
	return colorMutation(FieldTrailColor, v, func(s *Settings, v uint32) { s.TrailColor = v })
}

func SetDimColor(v uint32) Mutation {
	return colorMutation(FieldDimColor, v, func(s *Settings, v uint32) { s.DimColor = v })
}

func SetUIAccent(v uint32) Mutation {
	return colorMutation(FieldUIAccent, v, func(s *Settings, v uint32) { s.UIAccent = v })
}

func SetUIOverlayBg(v uint32) Mutation {
	return colorMutation(FieldUIOverlayBg, v, func(s *Settings, v uint32) { s.UIOverlayBg = v })
}

func SetUISelectionBg(v uint32) Mutation {
	return colorMutation(FieldUISelectionBg, v, func(s *Settings, v uint32) { s.UISelectionBg = v })
}

// Flags and identifiers.

func SetAdvancedColorsEnabled(v bool) Mutation {
	return boolMutation(FieldAdvancedColorsEnabled, v, func(s *Settings, v bool) { s.AdvancedColorsEnabled = v })
}

func SetLinkUIAndRainColors(v bool) Mutation {
	return boolMutation(FieldLinkUIAndRainColors, v, func(s *Settings, v bool) { s.LinkUIAndRainColors = v })
}

func SetFontSize(v int) Mutation {
	return intMutation(FieldFontSize, v, MinFontSize, MaxFontSize,
		func(s *Settings, v int) { s.FontSize = v })
}

func SetSymbolSetID(v string) Mutation {
	return stringMutation(FieldSymbolSetID, v, func(s *Settings, v string) { s.SymbolSetID = v })
}

func SetMaxTrailLength(v int) Mutation {
	return intMutation(FieldMaxTrailLength, v, MinTrailLength, MaxTrailLength,
		func(s *Settings, v int) { s.MaxTrailLength = v })
}

func SetMaxBrightTrailLength(v int) Mutation {
	return intMutation(FieldMaxBrightTrailLength, v, MinBrightTrailLength, MaxBrightTrailLength,
		func(s *Settings, v int) { s.MaxBrightTrailLength = v })
}

func SetThemePresetID(v string) Mutation {
	return stringMutation(FieldThemePresetID, v, func(s *Settings, v string) { s.ThemePresetID = v })
}

func SetColumnStartDelay(v float64) Mutation {
	return floatMutation(FieldColumnStartDelay, v, MinColumnDelay, MaxColumnDelay,
		func(s *Settings, v float64) { s.ColumnStartDelay = v })
}

func SetColumnRestartDelay(v float64) Mutation {
	return floatMutation(FieldColumnRestartDelay, v, MinColumnDelay, MaxColumnDelay,
		func(s *Settings, v float64) { s.ColumnRestartDelay = v })
}

func SetAlwaysShowHints(v bool) Mutation {
	return boolMutation(FieldAlwaysShowHints, v, func(s *Settings, v bool) { s.AlwaysShowHints = v })
}

// Field name constants, used by the CLI and the settings editor.
const (
	FieldFallSpeed             = "fallSpeed"
	FieldColumnCount           = "columnCount"
	FieldLineSpacing           = "lineSpacing"
	FieldActivePercentage      = "activePercentage"
	FieldSpeedVariance         = "speedVariance"
	FieldGlowIntensity         = "glowIntensity"
	FieldJitterAmount          = "jitterAmount"
	FieldFlickerAmount         = "flickerAmount"
	FieldMutationRate          = "mutationRate"
	FieldGrainDensity          = "grainDensity"
	FieldGrainOpacity          = "grainOpacity"
	FieldTargetFPS             = "targetFps"
	FieldBackgroundColor       = "backgroundColor"
	FieldHeadColor             = "headColor"
	FieldBrightTrailColor      = "brightTrailColor"
	FieldTrailColor            = "trailColor"
	FieldDimColor              = "dimColor"
	FieldUIAccent              = "uiAccent"
	FieldUIOverlayBg           = "uiOverlayBg"
	FieldUISelectionBg         = "uiSelectionBg"
	FieldAdvancedColorsEnabled = "advancedColorsEnabled"
	FieldLinkUIAndRainColors   = "linkUiAndRainColors"
	FieldFontSize              = "fontSize"
	FieldSymbolSetID           = "symbolSetId"
	FieldMaxTrailLength        = "maxTrailLength"
	FieldMaxBrightTrailLength  = "maxBrightTrailLength"
	FieldThemePresetID         = "themePresetId"
	FieldColumnStartDelay      = "columnStartDelay"
	FieldColumnRestartDelay    = "columnRestartDelay"
	FieldAlwaysShowHints       = "alwaysShowHints"
)

type fieldKind int

const (
	kindFloat fieldKind = iota
	kindInt
	kindColor
	kindBool
	kindString
)

var fieldKinds = map[string]fieldKind{
	FieldFallSpeed:             kindFloat,
	FieldColumnCount:           kindInt,
	FieldLineSpacing:           kindFloat,
	FieldActivePercentage:      kindFloat,
	FieldSpeedVariance:         kindFloat,
	FieldGlowIntensity:         kindFloat,
	FieldJitterAmount:          kindFloat,
	FieldFlickerAmount:         kindFloat,
	FieldMutationRate:          kindFloat,
	FieldGrainDensity:          kindInt,
	FieldGrainOpacity:          kindFloat,
	FieldTargetFPS:             kindInt,
	FieldBackgroundColor:       kindColor,
	FieldHeadColor:             kindColor,
	FieldBrightTrailColor:      kindColor,
	FieldTrailColor:            kindColor,
	FieldDimColor:              kindColor,
	FieldUIAccent:              kindColor,
	FieldUIOverlayBg:           kindColor,
	FieldUISelectionBg:         kindColor,
	FieldAdvancedColorsEnabled: kindBool,
	FieldLinkUIAndRainColors:   kindBool,
	FieldFontSize:              kindInt,
	FieldSymbolSetID:           kindString,
	FieldMaxTrailLength:        kindInt,
	FieldMaxBrightTrailLength:  kindInt,
	FieldThemePresetID:         kindString,
	FieldColumnStartDelay:      kindFloat,
	FieldColumnRestartDelay:    kindFloat,
	FieldAlwaysShowHints:       kindBool,
}

// FieldNames returns all mutable field names in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fieldKinds))
	for name := range fieldKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseMutation converts a (field, raw value) pair from the CLI into a typed
// Mutation. Unknown fields and unparseable values return an error; parseable
// out-of-range values clamp.
func ParseMutation(field, raw string) (Mutation, error) {
	kind, ok := fieldKinds[field]
	if !ok {
		return Mutation{}, fmt.Errorf("unknown settings field: %s", field)
	}

	switch kind {
	case kindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Mutation{}, fmt.Errorf("invalid value for %s: %q is not a number", field, raw)
		}
		return parsedFloat(field, v), nil
	case kindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Mutation{}, fmt.Errorf("invalid value for %s: %q is not an integer", field, raw)
		}
		return parsedInt(field, v), nil
	case kindColor:
		cleaned := strings.TrimPrefix(strings.TrimPrefix(raw, "#"), "0x")
		v, err := strconv.ParseUint(cleaned, 16, 32)
		if err != nil {
			return Mutation{}, fmt.Errorf("invalid value for %s: %q is not an ARGB hex color", field, raw)
		}
		return parsedColor(field, uint32(v)), nil
	case kindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Mutation{}, fmt.Errorf("invalid value for %s: %q is not a boolean", field, raw)
		}
		return parsedBool(field, v), nil
	default:
		return parsedString(field, raw), nil
	}
}

func parsedFloat(field string, v float64) Mutation {
	switch field {
	case FieldFallSpeed:
		return SetFallSpeed(v)
	case FieldLineSpacing:
		return SetLineSpacing(v)
	case FieldActivePercentage:
		return SetActivePercentage(v)
	case FieldSpeedVariance:
		return SetSpeedVariance(v)
	case FieldGlowIntensity:
		return SetGlowIntensity(v)
	case FieldJitterAmount:
		return SetJitterAmount(v)
	case FieldFlickerAmount:
		return SetFlickerAmount(v)
	case FieldMutationRate:
		return SetMutationRate(v)
	case FieldGrainOpacity:
		return SetGrainOpacity(v)
	case FieldColumnStartDelay:
		return SetColumnStartDelay(v)
	case FieldColumnRestartDelay:
		return SetColumnRestartDelay(v)
	}
	return Mutation{}
}

func parsedInt(field string, v int) Mutation {
	switch field {
	case FieldColumnCount:
		return SetColumnCount(v)
	case FieldGrainDensity:
		return SetGrainDensity(v)
	case FieldTargetFPS:
		return SetTargetFPS(v)
	case FieldFontSize:
		return SetFontSize(v)
	case FieldMaxTrailLength:
		return SetMaxTrailLength(v)
	case FieldMaxBrightTrailLength:
		return SetMaxBrightTrailLength(v)
	}
	return Mutation{}
}

func parsedColor(field string, v uint32) Mutation {
	switch field {
	case FieldBackgroundColor:
		return SetBackgroundColor(v)
	case FieldHeadColor:
		return SetHeadColor(v)
	case FieldBrightTrailColor:
		return SetBrightTrailColor(v)
	case FieldTrailColor:
		return SetTrailColor(v)
	case FieldDimColor:
		return SetDimColor(v)
	case FieldUIAccent:
		return SetUIAccent(v)
	case FieldUIOverlayBg:
		return SetUIOverlayBg(v)
	case FieldUISelectionBg:
		return SetUISelectionBg(v)
	}
	return Mutation{}
}

func parsedBool(field string, v bool) Mutation {
	switch field {
	case FieldAdvancedColorsEnabled:
		return SetAdvancedColorsEnabled(v)
	case FieldLinkUIAndRainColors:
		return SetLinkUIAndRainColors(v)
	case FieldAlwaysShowHints:
		return SetAlwaysShowHints(v)
	}
	return Mutation{}
}

func parsedString(field, v string) Mutation {
	switch field {
	case FieldSymbolSetID:
		return SetSymbolSetID(v)
	case FieldThemePresetID:
		return SetThemePresetID(v)
	}
	return Mutation{}
}
