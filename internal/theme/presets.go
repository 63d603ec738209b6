// Package theme provides preset palettes and the color resolution pipeline.
package theme

// Preset identifiers.
const (
	PresetClassicGreen = "classic-green"
	PresetAmber        = "amber"
	PresetIce          = "ice"
	PresetCrimson      = "crimson"
	PresetViolet       = "violet"
	PresetGhost        = "ghost"
	PresetGold         = "gold"
	PresetWhite        = "white"
)

// Colors is a resolved 8-color bundle, the same shape as the color subset of
// the settings record. Purely a computation result, never persisted.
type Colors struct {
	Background  uint32
	Head        uint32
	BrightTrail uint32
	Trail       uint32
	Dim         uint32
	UIAccent    uint32
	UIOverlayBg uint32
	UISelection uint32
}

// Preset is a named fixed palette.
type Preset struct {
	ID     string
	Name   string
	Colors Colors
}

// presets is ordered; the first entry is the documented fallback for unknown
// identifiers.
var presets = []Preset{
	{
		ID:   PresetClassicGreen,
		Name: "Classic Green",
		Colors: Colors{
			Background:  0xFF000000,
			Head:        0xFFD0FFD0,
			BrightTrail: 0xFF00FF66,
			Trail:       0xFF00CC44,
			Dim:         0xFF006622,
			UIAccent:    0xFF00FF66,
			UIOverlayBg: 0xCC000000,
			UISelection: 0x4000FF66,
		},
	},
	{
		ID:   PresetAmber,
		Name: "Amber Terminal",
		Colors: Colors{
			Background:  0xFF100800,
			Head:        0xFFFFF0C0,
			BrightTrail: 0xFFFFB000,
			Trail:       0xFFCC8800,
			Dim:         0xFF664400,
			UIAccent:    0xFFFFB000,
			UIOverlayBg: 0xCC100800,
			UISelection: 0x40FFB000,
		},
	},
	{
		ID:   PresetIce,
		Name: "Ice",
		Colors: Colors{
			Background:  0xFF000810,
			Head:        0xFFE0F8FF,
			BrightTrail: 0xFF40C8FF,
			Trail:       0xFF2090CC,
			Dim:         0xFF104866,
			UIAccent:    0xFF40C8FF,
			UIOverlayBg: 0xCC000810,
			UISelection: 0x4040C8FF,
		},
	},
	{
		ID:   PresetCrimson,
		Name: "Crimson",
		Colors: Colors{
			Background:  0xFF0A0000,
			Head:        0xFFFFD0D0,
			BrightTrail: 0xFFFF2040,
			Trail:       0xFFCC1030,
			Dim:         0xFF660818,
			UIAccent:    0xFFFF2040,
			UIOverlayBg: 0xCC0A0000,
			UISelection: 0x40FF2040,
		},
	},
	{
		ID:   PresetViolet,
		Name: "Violet Storm",
		Colors: Colors{
			Background:  0xFF080010,
			Head:        0xFFF0E0FF,
			BrightTrail: 0xFFA040FF,
			Trail:       0xFF7830CC,
			Dim:         0xFF3C1866,
			UIAccent:    0xFFA040FF,
			UIOverlayBg: 0xCC080010,
			UISelection: 0x40A040FF,
		},
	},
	{
		ID:   PresetGhost,
		Name: "Ghost",
		Colors: Colors{
			Background:  0xFF0A0A0A,
			Head:        0xFFFFFFFF,
			BrightTrail: 0xFFB0B0B0,
			Trail:       0xFF787878,
			Dim:         0xFF3C3C3C,
			UIAccent:    0xFFB0B0B0,
			UIOverlayBg: 0xCC0A0A0A,
			UISelection: 0x40B0B0B0,
		},
	},
	{
		ID:   PresetGold,
		Name: "Gold Rush",
		Colors: Colors{
			Background:  0xFF0C0A00,
			Head:        0xFFFFF8D0,
			BrightTrail: 0xFFFFD700,
			Trail:       0xFFCCAC00,
			Dim:         0xFF665600,
			UIAccent:    0xFFFFD700,
			UIOverlayBg: 0xCC0C0A00,
			UISelection: 0x40FFD700,
		},
	},
	{
		ID:   PresetWhite,
		Name: "Paper White",
		Colors: Colors{
			Background:  0xFFF8F8F4,
			Head:        0xFF101010,
			BrightTrail: 0xFF303030,
			Trail:       0xFF606060,
			Dim:         0xFFA0A0A0,
			UIAccent:    0xFF303030,
			UIOverlayBg: 0xCCF8F8F4,
			UISelection: 0x40303030,
		},
	},
}

// Presets returns all presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup resolves a preset identifier. Unknown identifiers resolve to the
// first preset; lookups are total and never error.
func Lookup(id string) Preset {
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	return presets[0]
}

// IsValid reports whether id names a known preset.
func IsValid(id string) bool {
	for _, p := range presets {
		if p.ID == id {
			return true
		}
	}
	return false
}
