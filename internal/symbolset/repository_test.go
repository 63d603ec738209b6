package symbolset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/colors"
	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
)

func TestMain(m *testing.M) {
	colors.Silence(true)
	os.Exit(m.Run())
}

func newRepository(t *testing.T) *Repository {
	t.Helper()
	backend, err := store.NewFileBackend(filepath.Join(t.TempDir(), "settings.rain"))
	require.NoError(t, err)
	s, err := store.New(backend)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewRepository(s)
}

func TestCreateAndList(t *testing.T) {
	r := newRepository(t)

	set, err := r.Create("Kana", "アイウ", "")
	require.NoError(t, err)
	assert.NotEmpty(t, set.ID)
	assert.Equal(t, settings.CustomSetFontDefault, set.FontFileName)

	sets := r.List()
	require.Len(t, sets, 1)
	assert.Equal(t, set, sets[0])
}

func TestCreateRequiresName(t *testing.T) {
	r := newRepository(t)

	_, err := r.Create("", "ab", "")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Empty(t, r.List())
}

func TestUpsertReplacesByID(t *testing.T) {
	r := newRepository(t)

	set, err := r.Create("Original", "ab", "")
	require.NoError(t, err)

	set.Name = "Renamed"
	set.Characters = "cd"
	require.NoError(t, r.Upsert(set))

	sets := r.List()
	require.Len(t, sets, 1)
	assert.Equal(t, "Renamed", sets[0].Name)
	assert.Equal(t, "cd", sets[0].Characters)
}

func TestUpsertAppendsNewID(t *testing.T) {
	r := newRepository(t)

	require.NoError(t, r.Upsert(settings.CustomSet{Name: "A", Characters: "a"}))
	require.NoError(t, r.Upsert(settings.CustomSet{Name: "B", Characters: "b"}))

	assert.Len(t, r.List(), 2)
}

func TestDeleteClearsActiveReference(t *testing.T) {
	r := newRepository(t)

	set, err := r.Create("Kana", "アイウ", "")
	require.NoError(t, err)
	require.NoError(t, r.SetActive(set.ID))
	require.Equal(t, set.ID, r.ActiveID())

	require.NoError(t, r.Delete(set.ID))
	assert.Empty(t, r.List())
	assert.Empty(t, r.ActiveID())
}

func TestDeleteKeepsOtherActive(t *testing.T) {
	r := newRepository(t)

	keep, err := r.Create("Keep", "ab", "")
	require.NoError(t, err)
	drop, err := r.Create("Drop", "cd", "")
	require.NoError(t, err)

	require.NoError(t, r.SetActive(keep.ID))
	require.NoError(t, r.Delete(drop.ID))

	assert.Equal(t, keep.ID, r.ActiveID())
	assert.Len(t, r.List(), 1)
}

func TestDeleteUnknownID(t *testing.T) {
	r := newRepository(t)
	assert.ErrorIs(t, r.Delete("missing"), ErrSetNotFound)
}

func TestSetActiveValidatesExistence(t *testing.T) {
	r := newRepository(t)

	assert.ErrorIs(t, r.SetActive("missing"), ErrSetNotFound)

	set, err := r.Create("Kana", "アイウ", "")
	require.NoError(t, err)
	require.NoError(t, r.SetActive(set.ID))

	// Clearing is always allowed.
	require.NoError(t, r.SetActive(""))
	assert.Empty(t, r.ActiveID())
}

func TestBuiltinLookupFallsBack(t *testing.T) {
	assert.Equal(t, settings.SymbolSetMixed, Lookup("no-such-set").ID)
	assert.Equal(t, settings.SymbolSetBinary, Lookup(settings.SymbolSetBinary).ID)
	assert.True(t, IsBuiltin(settings.SymbolSetKatakana))
	assert.False(t, IsBuiltin("custom-thing"))
}

func TestGlyphsForPrefersActiveCustomSet(t *testing.T) {
	s := settings.Default().WithCustomSets([]settings.CustomSet{
		{ID: "x", Name: "X", Characters: "xyz"},
	})

	// No active set: the built-in pool wins.
	assert.Equal(t, Lookup(s.SymbolSetID).Glyphs, GlyphsFor(s))

	s.ActiveCustomSetID = "x"
	assert.Equal(t, "xyz", GlyphsFor(s))

	// An empty custom pool falls back to the built-in set.
	s.SavedCustomSets[0].Characters = ""
	assert.Equal(t, Lookup(s.SymbolSetID).Glyphs, GlyphsFor(s))

	// A dangling reference falls back too.
	s.ActiveCustomSetID = "gone"
	assert.Equal(t, Lookup(s.SymbolSetID).Glyphs, GlyphsFor(s))
}
