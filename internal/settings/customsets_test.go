package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCustomSetsEmpty(t *testing.T) {
	assert.Equal(t, "", EncodeCustomSets(nil))
	assert.Equal(t, "", EncodeCustomSets([]CustomSet{}))
}

func TestCustomSetsRoundTrip(t *testing.T) {
	sets := []CustomSet{
		{ID: "one", Name: "Kana", Characters: "アイウ", FontFileName: "custom.ttf"},
		{ID: "two", Name: "Blocks", Characters: "░▒▓", FontFileName: CustomSetFontDefault},
	}

	encoded := EncodeCustomSets(sets)
	require.NotEmpty(t, encoded)

	decoded := DecodeCustomSets(encoded)
	assert.Equal(t, sets, decoded)
}

func TestDecodeCustomSetsMalformed(t *testing.T) {
	// A corrupt blob degrades to no custom sets, never an error.
	assert.Nil(t, DecodeCustomSets("not json"))
	assert.Nil(t, DecodeCustomSets("{\"customSets\": 42}"))
	assert.Nil(t, DecodeCustomSets(""))
}

func TestDecodeCustomSetsFillsDefaultFont(t *testing.T) {
	decoded := DecodeCustomSets(`[{"id":"x","name":"X","characters":"ab"}]`)
	require.Len(t, decoded, 1)
	assert.Equal(t, CustomSetFontDefault, decoded[0].FontFileName)
}
