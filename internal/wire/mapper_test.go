package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/settings"
)

func TestToSettingsFromDefault(t *testing.T) {
	want := settings.Default()

	got := ToSettings(FromSettings(want))
	assert.Equal(t, want, got)
}

func TestToSettingsClampsOutOfRange(t *testing.T) {
	r := Record{
		SchemaVersion: 1,
		FallSpeed:     1e9,
		ColumnCount:   1 << 40,
		TargetFPS:     -7,
		HeadColor:     0x1FFFFFFFFF,
		SymbolSetID:   "latin",
	}

	s := ToSettings(r)
	assert.Equal(t, settings.MaxFallSpeed, s.FallSpeed)
	assert.Equal(t, settings.MaxColumnCount, s.ColumnCount)
	assert.Equal(t, settings.MinTargetFPS, s.TargetFPS)
	assert.Equal(t, uint32(0xFFFFFFFF), s.HeadColor)
}

func TestToSettingsZeroRecordIsValid(t *testing.T) {
	s := ToSettings(Record{})

	// Wire zeros clamp to range minimums; the result is valid, just not
	// the defaults. Fresh-install detection happens on the raw record.
	assert.Equal(t, s, settings.Clamp(s))
	assert.Equal(t, 1, s.SchemaVersion)
	assert.Equal(t, settings.MinFallSpeed, s.FallSpeed)
	assert.Equal(t, settings.Default().SymbolSetID, s.SymbolSetID)
}

func TestToSettingsDecodesCustomSets(t *testing.T) {
	r := Record{
		SchemaVersion:     1,
		SymbolSetsJSON:    `[{"id":"a","name":"A","characters":"xy"}]`,
		ActiveCustomSetID: "a",
	}

	s := ToSettings(r)
	require.Len(t, s.SavedCustomSets, 1)
	assert.Equal(t, "A", s.SavedCustomSets[0].Name)
	assert.Equal(t, settings.CustomSetFontDefault, s.SavedCustomSets[0].FontFileName)
	assert.Equal(t, "a", s.ActiveCustomSetID)
}

func TestToSettingsMalformedCustomSetsBlob(t *testing.T) {
	r := FromSettings(settings.Default())
	r.SymbolSetsJSON = "{{{"

	s := ToSettings(r)
	assert.Empty(t, s.SavedCustomSets)
	assert.Equal(t, settings.Default().FallSpeed, s.FallSpeed)
}

func TestFromSettingsEncodesCustomSets(t *testing.T) {
	s := settings.Default().WithCustomSets([]settings.CustomSet{
		{ID: "a", Name: "A", Characters: "xy", FontFileName: "monospace.ttf"},
	})

	r := FromSettings(s)
	assert.NotEmpty(t, r.SymbolSetsJSON)

	back := ToSettings(r)
	assert.Equal(t, s.SavedCustomSets, back.SavedCustomSets)
}

func TestPersistedRoundTripThroughCodec(t *testing.T) {
	want := settings.Default().WithCustomSets([]settings.CustomSet{
		{ID: "a", Name: "A", Characters: "xy", FontFileName: "monospace.ttf"},
	})
	want.ThemePresetID = "amber"
	want.AlwaysShowHints = true

	data := Marshal(FromSettings(want))
	r, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, want, ToSettings(r))
}
