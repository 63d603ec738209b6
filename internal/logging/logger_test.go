package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termrain/termrain/internal/config"
)

func setupLogEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TERMRAIN_STATE_DIR", dir)
	config.Load()
	t.Cleanup(config.Load)
	return dir
}

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	// All calls are safe on the no-op logger.
	logger.Info("ignored")
	logger.With("k", "v").Error("also ignored")
	assert.NoError(t, logger.Shutdown())
}

func TestInitWritesJSONLines(t *testing.T) {
	stateDir := setupLogEnv(t)

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "test"

	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("hello", "answer", 42)
	logger.With("component", "store").Warn("careful")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(filepath.Join(stateDir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "termrain_"))

	data, err := os.ReadFile(filepath.Join(stateDir, "logs", entries[0].Name()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record), line)
		assert.NotEmpty(t, record["msg"])
		assert.Equal(t, "test", record["command"])
	}
}

func TestLevelFiltering(t *testing.T) {
	stateDir := setupLogEnv(t)

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "error"
	cfg.Command = "test"

	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Error("kept")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(filepath.Join(stateDir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(stateDir, "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "kept")
}

func TestRotationKeepsNewestFiles(t *testing.T) {
	stateDir := setupLogEnv(t)
	logDir := filepath.Join(stateDir, "logs")
	require.NoError(t, os.MkdirAll(logDir, 0o700))

	// Seed more files than the retention limit allows.
	for _, name := range []string{"termrain_a.log", "termrain_b.log", "termrain_c.log", "termrain_d.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(logDir, name), []byte("x"), 0o600))
	}

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.MaxFiles = 2
	cfg.Command = "test"

	logger, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	// Rotation trims the seeded files down to MaxFiles before the new
	// file opens, so exactly MaxFiles+1 remain.
	assert.Len(t, entries, 3)
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("bogus"))
	assert.NotEqual(t, parseLevel("debug"), parseLevel("error"))
}
