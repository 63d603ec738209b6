package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		SchemaVersion:         1,
		FallSpeed:             2.5,
		ColumnCount:           150,
		LineSpacing:           1.0,
		ActivePercentage:      0.7,
		SpeedVariance:         0.2,
		GlowIntensity:         1.0,
		FlickerAmount:         0.2,
		MutationRate:          0.05,
		GrainDensity:          200,
		GrainOpacity:          0.05,
		TargetFPS:             60,
		BackgroundColor:       0xFF000000,
		HeadColor:             0xFFD0FFD0,
		BrightTrailColor:      0xFF00FF66,
		TrailColor:            0xFF00CC44,
		DimColor:              0xFF006622,
		UIAccent:              0xFF00FF66,
		UIOverlayBg:           0xCC000000,
		UISelectionBg:         0x4000FF66,
		AdvancedColorsEnabled: true,
		LinkUIAndRainColors:   true,
		FontSize:              14,
		SymbolSetID:           "katakana",
		SymbolSetsJSON:        `[{"id":"x","name":"X","characters":"ab","fontFileName":"monospace.ttf"}]`,
		ActiveCustomSetID:     "x",
		MaxTrailLength:        25,
		MaxBrightTrailLength:  8,
		ThemePresetID:         "amber",
		ColumnStartDelay:      0.1,
		ColumnRestartDelay:    0.25,
		AlwaysShowHints:       true,
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := sampleRecord()

	got, err := Unmarshal(Marshal(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarshalOmitsZeroFields(t *testing.T) {
	assert.Empty(t, Marshal(Record{}))

	// A single non-zero field encodes to just that field.
	data := Marshal(Record{SchemaVersion: 1})
	assert.Len(t, data, 2)
}

func TestUnmarshalEmptyIsZeroRecord(t *testing.T) {
	r, err := Unmarshal(nil)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestRecordIsZero(t *testing.T) {
	assert.True(t, Record{}.IsZero())
	assert.False(t, Record{SchemaVersion: 1}.IsZero())
	assert.False(t, Record{SymbolSetID: "latin"}.IsZero())
}

func TestUnmarshalSkipsUnknownTags(t *testing.T) {
	data := Marshal(Record{SchemaVersion: 1, FallSpeed: 2.0})

	// Append a varint field with a tag a future writer might use.
	data = binary.AppendUvarint(data, 99<<3|wireVarint)
	data = binary.AppendUvarint(data, 12345)

	// And a bytes field with another unknown tag.
	data = binary.AppendUvarint(data, 100<<3|wireBytes)
	data = binary.AppendUvarint(data, 5)
	data = append(data, "hello"...)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.SchemaVersion)
	assert.Equal(t, 2.0, got.FallSpeed)
}

func TestUnmarshalTruncated(t *testing.T) {
	full := Marshal(sampleRecord())
	for _, cut := range []int{1, len(full) / 2, len(full) - 1} {
		_, err := Unmarshal(full[:cut])
		// Some prefixes happen to end on a field boundary; the rest
		// must report truncation instead of panicking.
		if err != nil {
			assert.ErrorIs(t, err, ErrTruncated)
		}
	}
}

func TestUnmarshalGarbage(t *testing.T) {
	inputs := [][]byte{
		{0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x0A, 0xFF, 0x01},
		{0x07},
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_, _ = Unmarshal(in)
		})
	}
}

func TestUnmarshalRejectsUnknownWireType(t *testing.T) {
	// Wire type 7 is unused.
	data := binary.AppendUvarint(nil, 1<<3|7)
	_, err := Unmarshal(data)
	assert.Error(t, err)
}
