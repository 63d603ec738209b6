package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/termrain/termrain/internal/colors"
	"github.com/termrain/termrain/internal/config"
)

const (
	settingsFileName = "settings.rain"
	settingsDBName   = "settings.db"
)

// SettingsFilePath returns the well-known path of the file-backed slot.
func SettingsFilePath() string {
	return filepath.Join(config.StateDir(), settingsFileName)
}

// SettingsDBPath returns the well-known path of the sqlite-backed slot.
func SettingsDBPath() string {
	return filepath.Join(config.StateDir(), settingsDBName)
}

// Open creates the settings store using the configured backend and runs the
// one-time legacy migration check.
func Open() (*Store, error) {
	config.Load()
	backend := config.Get("storage_backend", config.BackendFile)
	s, err := OpenBackend(backend)
	if err != nil {
		return nil, err
	}
	if err := MigrateLegacy(s); err != nil {
		// Migration failures leave the legacy file in place for a retry;
		// the store itself is usable with defaults.
		colors.Warning(fmt.Sprintf("legacy settings migration failed: %v", err))
	}
	return s, nil
}

// OpenBackend creates the settings store for the named backend. Unknown
// names fall back to the file backend with a warning.
func OpenBackend(backend string) (*Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", config.BackendFile:
		return openFile()
	case config.BackendSQLite:
		b, err := NewSQLiteBackend(SettingsDBPath())
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return openFile()
		}
		return New(b)
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to file", backend))
		return openFile()
	}
}

func openFile() (*Store, error) {
	b, err := NewFileBackend(SettingsFilePath())
	if err != nil {
		return nil, err
	}
	return New(b)
}
