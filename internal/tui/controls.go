package tui

import (
	"fmt"
	"strconv"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/symbolset"
	"github.com/termrain/termrain/internal/theme"
)

// control is one editable row in the settings overlay. Decrease/increase
// return typed mutations; clamping happens inside the mutation constructors.
type control struct {
	label    string
	value    func(s settings.Settings) string
	decrease func(s settings.Settings) settings.Mutation
	increase func(s settings.Settings) settings.Mutation
}

func floatControl(label string, step float64, get func(settings.Settings) float64, set func(float64) settings.Mutation) control {
	return control{
		label: label,
		value: func(s settings.Settings) string {
			return strconv.FormatFloat(get(s), 'f', 2, 64)
		},
		decrease: func(s settings.Settings) settings.Mutation { return set(get(s) - step) },
		increase: func(s settings.Settings) settings.Mutation { return set(get(s) + step) },
	}
}

func intControl(label string, step int, get func(settings.Settings) int, set func(int) settings.Mutation) control {
	return control{
		label: label,
		value: func(s settings.Settings) string {
			return strconv.Itoa(get(s))
		},
		decrease: func(s settings.Settings) settings.Mutation { return set(get(s) - step) },
		increase: func(s settings.Settings) settings.Mutation { return set(get(s) + step) },
	}
}

func boolControl(label string, get func(settings.Settings) bool, set func(bool) settings.Mutation) control {
	toggle := func(s settings.Settings) settings.Mutation { return set(!get(s)) }
	return control{
		label: label,
		value: func(s settings.Settings) string {
			if get(s) {
				return "on"
			}
			return "off"
		},
		decrease: toggle,
		increase: toggle,
	}
}

// themeControl cycles through the preset registry, with "custom" (no preset)
// as the extra first position.
func themeControl() control {
	ids := []string{""}
	for _, p := range theme.Presets() {
		ids = append(ids, p.ID)
	}
	index := func(id string) int {
		for i, v := range ids {
			if v == id {
				return i
			}
		}
		return 0
	}
	cycle := func(s settings.Settings, dir int) settings.Mutation {
		i := (index(s.ThemePresetID) + dir + len(ids)) % len(ids)
		return settings.SetThemePresetID(ids[i])
	}
	return control{
		label: "Theme preset",
		value: func(s settings.Settings) string {
			if s.ThemePresetID == "" {
				return "custom"
			}
			return theme.Lookup(s.ThemePresetID).Name
		},
		decrease: func(s settings.Settings) settings.Mutation { return cycle(s, -1) },
		increase: func(s settings.Settings) settings.Mutation { return cycle(s, 1) },
	}
}

// symbolControl cycles through the built-in symbol sets.
func symbolControl() control {
	sets := symbolset.Builtins()
	index := func(id string) int {
		for i, v := range sets {
			if v.ID == id {
				return i
			}
		}
		return 0
	}
	cycle := func(s settings.Settings, dir int) settings.Mutation {
		i := (index(s.SymbolSetID) + dir + len(sets)) % len(sets)
		return settings.SetSymbolSetID(sets[i].ID)
	}
	return control{
		label: "Symbol set",
		value: func(s settings.Settings) string {
			return symbolset.Lookup(s.SymbolSetID).Name
		},
		decrease: func(s settings.Settings) settings.Mutation { return cycle(s, -1) },
		increase: func(s settings.Settings) settings.Mutation { return cycle(s, 1) },
	}
}

func buildControls() []control {
	return []control{
		floatControl("Fall speed", 0.25,
			func(s settings.Settings) float64 { return s.FallSpeed }, settings.SetFallSpeed),
		intControl("Column count", 10,
			func(s settings.Settings) int { return s.ColumnCount }, settings.SetColumnCount),
		floatControl("Line spacing", 0.05,
			func(s settings.Settings) float64 { return s.LineSpacing }, settings.SetLineSpacing),
		floatControl("Active columns", 0.05,
			func(s settings.Settings) float64 { return s.ActivePercentage }, settings.SetActivePercentage),
		floatControl("Speed variance", 0.05,
			func(s settings.Settings) float64 { return s.SpeedVariance }, settings.SetSpeedVariance),
		floatControl("Glow intensity", 0.25,
			func(s settings.Settings) float64 { return s.GlowIntensity }, settings.SetGlowIntensity),
		floatControl("Jitter", 0.25,
			func(s settings.Settings) float64 { return s.JitterAmount }, settings.SetJitterAmount),
		floatControl("Flicker", 0.05,
			func(s settings.Settings) float64 { return s.FlickerAmount }, settings.SetFlickerAmount),
		floatControl("Mutation rate", 0.05,
			func(s settings.Settings) float64 { return s.MutationRate }, settings.SetMutationRate),
		intControl("Grain density", 50,
			func(s settings.Settings) int { return s.GrainDensity }, settings.SetGrainDensity),
		floatControl("Grain opacity", 0.01,
			func(s settings.Settings) float64 { return s.GrainOpacity }, settings.SetGrainOpacity),
		intControl("Target FPS", 5,
			func(s settings.Settings) int { return s.TargetFPS }, settings.SetTargetFPS),
		themeControl(),
		symbolControl(),
		intControl("Font size", 1,
			func(s settings.Settings) int { return s.FontSize }, settings.SetFontSize),
		intControl("Trail length", 1,
			func(s settings.Settings) int { return s.MaxTrailLength }, settings.SetMaxTrailLength),
		intControl("Bright trail length", 1,
			func(s settings.Settings) int { return s.MaxBrightTrailLength }, settings.SetMaxBrightTrailLength),
		boolControl("Link UI and rain colors",
			func(s settings.Settings) bool { return s.LinkUIAndRainColors }, settings.SetLinkUIAndRainColors),
		boolControl("Advanced colors",
			func(s settings.Settings) bool { return s.AdvancedColorsEnabled }, settings.SetAdvancedColorsEnabled),
		floatControl("Column start delay", 0.05,
			func(s settings.Settings) float64 { return s.ColumnStartDelay }, settings.SetColumnStartDelay),
		floatControl("Column restart delay", 0.05,
			func(s settings.Settings) float64 { return s.ColumnRestartDelay }, settings.SetColumnRestartDelay),
		boolControl("Always show hints",
			func(s settings.Settings) bool { return s.AlwaysShowHints }, settings.SetAlwaysShowHints),
	}
}

// controlRow formats one overlay row.
func controlRow(c control, s settings.Settings, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	return fmt.Sprintf("%s%-24s %s", marker, c.label, c.value(s))
}
