package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/colors"
)

func TestMain(m *testing.M) {
	colors.Silence(true)
	os.Exit(m.Run())
}

func TestDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	Load()
	t.Cleanup(Load)

	assert.Equal(t, BackendFile, Get("storage_backend", ""))
	assert.False(t, GetBool("log_enabled", true))
	assert.Equal(t, "info", Get("log_level", ""))
	assert.Equal(t, 10, GetInt("log_max_files", 0))
	assert.Contains(t, ConfigDir(), "termrain")
	assert.Contains(t, StateDir(), "termrain")
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TERMRAIN_STORAGE_BACKEND", BackendSQLite)
	t.Setenv("TERMRAIN_LOG_LEVEL", "debug")
	t.Setenv("TERMRAIN_STATE_DIR", "/tmp/rain-state")
	Load()
	t.Cleanup(Load)

	assert.Equal(t, BackendSQLite, Get("storage_backend", ""))
	assert.Equal(t, "debug", Get("log_level", ""))
	assert.Equal(t, "/tmp/rain-state", StateDir())
}

func TestFileValuesLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "storage_backend = \"sqlite\"\nlog_enabled = true\nlog_max_files = 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("TERMRAIN_CONFIG_PATH", path)
	Load()
	t.Cleanup(Load)

	assert.Equal(t, BackendSQLite, Get("storage_backend", ""))
	assert.True(t, GetBool("log_enabled", false))
	assert.Equal(t, 3, GetInt("log_max_files", 0))
}

func TestEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"warn\"\n"), 0o644))

	t.Setenv("TERMRAIN_CONFIG_PATH", path)
	t.Setenv("TERMRAIN_LOG_LEVEL", "error")
	Load()
	t.Cleanup(Load)

	assert.Equal(t, "error", Get("log_level", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("TERMRAIN_STORAGE_BACKEND", "punchcards")
	t.Setenv("TERMRAIN_LOG_MAX_FILES", "-2")
	Load()
	t.Cleanup(Load)

	assert.Equal(t, BackendFile, Get("storage_backend", ""))
	assert.Equal(t, 10, GetInt("log_max_files", 0))
}

func TestBoolNormalization(t *testing.T) {
	t.Setenv("TERMRAIN_LOG_ENABLED", "yes")
	Load()
	t.Cleanup(Load)

	assert.True(t, GetBool("log_enabled", false))
}

func TestGetFallbacks(t *testing.T) {
	Load()
	t.Cleanup(Load)

	assert.Equal(t, "fb", Get("no_such_key", "fb"))
	assert.True(t, GetBool("no_such_key", true))
	assert.Equal(t, 42, GetInt("no_such_key", 42))
}
