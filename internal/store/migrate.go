package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/termrain/termrain/internal/colors"
	"github.com/termrain/termrain/internal/config"
	"github.com/termrain/termrain/internal/settings"
)

// legacyFileName is the pre-versioning flat TOML settings store.
const legacyFileName = "settings.toml"

// LegacyFilePath returns the path of the legacy key-value settings file.
func LegacyFilePath() string {
	return filepath.Join(config.StateDir(), legacyFileName)
}

// legacyRecord mirrors the flat key set of the pre-versioning store. Every
// key is optional; absent keys keep their documented defaults.
type legacyRecord struct {
	FallSpeed          *float64 `toml:"fall_speed"`
	ColumnCount        *int     `toml:"column_count"`
	LineSpacing        *float64 `toml:"line_spacing"`
	ActivePercentage   *float64 `toml:"active_percentage"`
	SpeedVariance      *float64 `toml:"speed_variance"`
	GlowIntensity      *float64 `toml:"glow_intensity"`
	JitterAmount       *float64 `toml:"jitter_amount"`
	FlickerAmount      *float64 `toml:"flicker_amount"`
	MutationRate       *float64 `toml:"mutation_rate"`
	GrainDensity       *int     `toml:"grain_density"`
	GrainOpacity       *float64 `toml:"grain_opacity"`
	TargetFPS          *int     `toml:"target_fps"`
	BackgroundColor    *int64   `toml:"background_color"`
	HeadColor          *int64   `toml:"head_color"`
	BrightTrailColor   *int64   `toml:"bright_trail_color"`
	TrailColor         *int64   `toml:"trail_color"`
	DimColor           *int64   `toml:"dim_color"`
	UIAccent           *int64   `toml:"ui_accent"`
	UIOverlayBg        *int64   `toml:"ui_overlay_bg"`
	UISelectionBg      *int64   `toml:"ui_selection_bg"`
	LinkColors         *bool    `toml:"link_colors"`
	FontSize           *int     `toml:"font_size"`
	SymbolSet          *string  `toml:"symbol_set"`
	MaxTrailLength     *int     `toml:"max_trail_length"`
	MaxBrightTrail     *int     `toml:"max_bright_trail_length"`
	ThemePreset        *string  `toml:"theme_preset"`
	ColumnStartDelay   *float64 `toml:"column_start_delay"`
	ColumnRestartDelay *float64 `toml:"column_restart_delay"`
}

// MigrateLegacy performs the one-time migration from the legacy TOML store.
//
// The migration runs only when the new store has never been written; once
// the slot holds non-default content it is skipped even if legacy data
// remains, so the migration is idempotent. On success the legacy file is
// removed.
func MigrateLegacy(s *Store) error {
	if !s.NeverWritten() {
		return nil
	}

	legacyPath := LegacyFilePath()
	data, err := os.ReadFile(legacyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read legacy settings: %w", err)
	}

	var legacy legacyRecord
	if err := toml.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("parse legacy settings: %w", err)
	}

	migrated := legacy.toSettings()
	if _, err := s.Replace(migrated); err != nil {
		return fmt.Errorf("write migrated settings: %w", err)
	}

	if err := os.Remove(legacyPath); err != nil {
		colors.Warning(fmt.Sprintf("migrated legacy settings but could not remove %s: %v", legacyPath, err))
	} else {
		colors.Info("Migrated legacy settings from " + legacyPath)
	}
	return nil
}

// toSettings overlays present legacy keys onto the documented defaults.
// The result passes through the store's clamp on write.
func (l legacyRecord) toSettings() settings.Settings {
	s := settings.Default()

	setFloat(&s.FallSpeed, l.FallSpeed)
	setInt(&s.ColumnCount, l.ColumnCount)
	setFloat(&s.LineSpacing, l.LineSpacing)
	setFloat(&s.ActivePercentage, l.ActivePercentage)
	setFloat(&s.SpeedVariance, l.SpeedVariance)
	setFloat(&s.GlowIntensity, l.GlowIntensity)
	setFloat(&s.JitterAmount, l.JitterAmount)
	setFloat(&s.FlickerAmount, l.FlickerAmount)
	setFloat(&s.MutationRate, l.MutationRate)
	setInt(&s.GrainDensity, l.GrainDensity)
	setFloat(&s.GrainOpacity, l.GrainOpacity)
	setInt(&s.TargetFPS, l.TargetFPS)
	setColor(&s.BackgroundColor, l.BackgroundColor)
	setColor(&s.HeadColor, l.HeadColor)
	setColor(&s.BrightTrailColor, l.BrightTrailColor)
	setColor(&s.TrailColor, l.TrailColor)
	setColor(&s.DimColor, l.DimColor)
	setColor(&s.UIAccent, l.UIAccent)
	setColor(&s.UIOverlayBg, l.UIOverlayBg)
	setColor(&s.UISelectionBg, l.UISelectionBg)
	if l.LinkColors != nil {
		s.LinkUIAndRainColors = *l.LinkColors
	}
	setInt(&s.FontSize, l.FontSize)
	if l.SymbolSet != nil && *l.SymbolSet != "" {
		s.SymbolSetID = *l.SymbolSet
	}
	setInt(&s.MaxTrailLength, l.MaxTrailLength)
	setInt(&s.MaxBrightTrailLength, l.MaxBrightTrail)
	if l.ThemePreset != nil {
		s.ThemePresetID = *l.ThemePreset
	}
	setFloat(&s.ColumnStartDelay, l.ColumnStartDelay)
	setFloat(&s.ColumnRestartDelay, l.ColumnRestartDelay)

	return s
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// setColor widens a legacy signed color value. Legacy files stored colors as
// int64 to dodge TOML's lack of unsigned integers; negative values are the
// two's-complement reading of high-alpha colors.
func setColor(dst *uint32, src *int64) {
	if src != nil {
		*dst = uint32(uint64(*src) & 0xFFFFFFFF)
	}
}
