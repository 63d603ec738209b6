// Package symbolset provides glyph pools: built-in registries and the
// user-defined custom set repository.
package symbolset

import "github.com/termrain/termrain/internal/settings"

// Set is a built-in glyph pool.
type Set struct {
	ID     string
	Name   string
	Glyphs string
}

// builtins is ordered for display; lookups fall back to SymbolSetMixed.
var builtins = []Set{
	{
		ID:     settings.SymbolSetLatin,
		Name:   "Latin",
		Glyphs: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
	},
	{
		ID:     settings.SymbolSetKatakana,
		Name:   "Katakana",
		Glyphs: "ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜｦﾝ",
	},
	{
		ID:     settings.SymbolSetMixed,
		Name:   "Mixed",
		Glyphs: "ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
	},
	{
		ID:     settings.SymbolSetBinary,
		Name:   "Binary",
		Glyphs: "01",
	},
	{
		ID:     settings.SymbolSetDigits,
		Name:   "Digits",
		Glyphs: "0123456789",
	},
	{
		ID:     settings.SymbolSetRunic,
		Name:   "Runic",
		Glyphs: "ᚠᚡᚢᚣᚤᚥᚦᚧᚨᚩᚪᚫᚬᚭᚮᚯᚰᚱᚲᚳᚴᚵᚶᚷᚸᚹᚺᚻᚼᚽᚾᚿᛀᛁᛂᛃᛄᛅᛆᛇᛈᛉᛊᛋᛌᛍᛎᛏ",
	},
}

// Builtins returns all built-in sets in display order.
func Builtins() []Set {
	out := make([]Set, len(builtins))
	copy(out, builtins)
	return out
}

// Lookup resolves a built-in identifier. Unknown identifiers resolve to the
// mixed set; lookups are total and never error.
func Lookup(id string) Set {
	for _, s := range builtins {
		if s.ID == id {
			return s
		}
	}
	return mustLookup(settings.SymbolSetMixed)
}

func mustLookup(id string) Set {
	for _, s := range builtins {
		if s.ID == id {
			return s
		}
	}
	// The registry always contains the mixed set.
	return builtins[0]
}

// IsBuiltin reports whether id names a built-in set.
func IsBuiltin(id string) bool {
	for _, s := range builtins {
		if s.ID == id {
			return true
		}
	}
	return false
}

// GlyphsFor returns the glyph pool the renderer should draw from: the active
// custom set when one is selected and non-empty, otherwise the built-in pool
// named by SymbolSetID (with its total fallback).
func GlyphsFor(s settings.Settings) string {
	if s.ActiveCustomSetID != "" {
		if set, ok := s.CustomSetByID(s.ActiveCustomSetID); ok && set.Characters != "" {
			return set.Characters
		}
	}
	return Lookup(s.SymbolSetID).Glyphs
}
