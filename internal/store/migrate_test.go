package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/config"
	"github.com/termrain/termrain/internal/settings"
)

const legacyTOML = `
fall_speed = 3.5
column_count = 220
target_fps = 90
head_color = -3080240
link_colors = true
symbol_set = "binary"
theme_preset = "amber"
max_trail_length = 40
`

func setupStateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TERMRAIN_STATE_DIR", dir)
	config.Load()
	t.Cleanup(config.Load)
	return dir
}

func TestMigrateLegacyImportsAndRemovesFile(t *testing.T) {
	dir := setupStateDir(t)
	legacyPath := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(legacyPath, []byte(legacyTOML), 0o644))

	s, err := OpenBackend(config.BackendFile)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, MigrateLegacy(s))

	got := s.Settings()
	assert.Equal(t, 3.5, got.FallSpeed)
	assert.Equal(t, 220, got.ColumnCount)
	assert.Equal(t, 90, got.TargetFPS)
	// -3080240 is the two's-complement reading of 0xFFD0FFD0.
	assert.Equal(t, uint32(0xFFD0FFD0), got.HeadColor)
	assert.True(t, got.LinkUIAndRainColors)
	assert.Equal(t, settings.SymbolSetBinary, got.SymbolSetID)
	assert.Equal(t, "amber", got.ThemePresetID)
	assert.Equal(t, 40, got.MaxTrailLength)

	// Keys absent from the legacy file keep their defaults.
	assert.Equal(t, settings.Default().FontSize, got.FontSize)

	// The legacy file is consumed and the store is now written.
	_, err = os.Stat(legacyPath)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, s.NeverWritten())
}

func TestMigrateLegacyClampsValues(t *testing.T) {
	dir := setupStateDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"),
		[]byte("fall_speed = 500.0\ncolumn_count = 2\n"), 0o644))

	s, err := OpenBackend(config.BackendFile)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, MigrateLegacy(s))

	got := s.Settings()
	assert.Equal(t, settings.MaxFallSpeed, got.FallSpeed)
	assert.Equal(t, settings.MinColumnCount, got.ColumnCount)
}

func TestMigrateLegacyNoFileIsNoop(t *testing.T) {
	setupStateDir(t)

	s, err := OpenBackend(config.BackendFile)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, MigrateLegacy(s))
	assert.Equal(t, settings.Default(), s.Settings())
	assert.True(t, s.NeverWritten())
}

func TestMigrateLegacySkippedOnceWritten(t *testing.T) {
	dir := setupStateDir(t)

	s, err := OpenBackend(config.BackendFile)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Update(func(cur settings.Settings) settings.Settings {
		cur.FallSpeed = 6.0
		return cur
	})
	require.NoError(t, err)

	legacyPath := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(legacyPath, []byte(legacyTOML), 0o644))

	require.NoError(t, MigrateLegacy(s))

	// The written slot wins and the legacy file stays put.
	assert.Equal(t, 6.0, s.Settings().FallSpeed)
	_, err = os.Stat(legacyPath)
	assert.NoError(t, err)
}

func TestMigrateLegacyMalformedFileErrors(t *testing.T) {
	dir := setupStateDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"),
		[]byte("not = [valid toml"), 0o644))

	s, err := OpenBackend(config.BackendFile)
	require.NoError(t, err)
	defer s.Close()

	err = MigrateLegacy(s)
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse legacy settings")

	// Defaults still serve and the file is kept for a retry.
	assert.Equal(t, settings.Default(), s.Settings())
	assert.True(t, s.NeverWritten())
}

func TestOpenRunsMigration(t *testing.T) {
	dir := setupStateDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"),
		[]byte("fall_speed = 2.5\n"), 0o644))

	s, err := Open()
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 2.5, s.Settings().FallSpeed)
}
