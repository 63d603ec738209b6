// Package config provides application configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/termrain/termrain/internal/colors"
)

// File permission constants.
const (
	// FileModeDir is the permission for directories (rwxr-xr-x).
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--).
	FileModeFile os.FileMode = 0644
)

// Storage backend identifiers.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var (
	mu       sync.RWMutex
	config   map[string]string
	defaults map[string]string
	loaded   bool
)

// Load initializes configuration: defaults, then the TOML config file, then
// environment overrides (TERMRAIN_* wins), then validation. Safe to call more
// than once; later calls reload from scratch.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)

	setDefaults()
	loadFromFile()
	loadFromEnv()
	validate()
	loaded = true
}

func ensureLoaded() {
	mu.RLock()
	ok := loaded
	mu.RUnlock()
	if !ok {
		Load()
	}
}

func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "termrain"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "termrain"))
	setDefault("storage_backend", BackendFile)
	setDefault("log_enabled", "false")
	setDefault("log_level", "info")
	setDefault("log_max_files", "10")
	setDefault("debug", "false")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// loadFromFile merges keys from the TOML config file, if one exists.
func loadFromFile() {
	configPath := os.Getenv("TERMRAIN_CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(config["config_dir"], "config.toml")
		if _, err := os.Stat(configPath); err != nil {
			return
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceValue converts a TOML value to its string representation.
func coerceValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies TERMRAIN_* environment overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "TERMRAIN_") {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], "TERMRAIN_"))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

// validate normalizes configured values, falling back to defaults with a
// warning on invalid input.
func validate() {
	for key, validator := range validators {
		value := config[key]
		normalized, ok := validator(value)
		if !ok {
			colors.Warning(fmt.Sprintf("invalid %s value %q, using default: %s", key, value, defaults[key]))
			config[key] = defaults[key]
			continue
		}
		config[key] = normalized
	}
}

// Get returns a config value, or fallback when unset.
func Get(key, fallback string) string {
	ensureLoaded()
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := config[key]; ok && v != "" {
		return v
	}
	return fallback
}

// GetBool returns a boolean config value, or fallback on parse failure.
func GetBool(key string, fallback bool) bool {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(normalizeBool(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// GetInt returns an integer config value, or fallback on parse failure.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// ConfigDir returns the configuration directory.
func ConfigDir() string {
	return Get("config_dir", "")
}

// StateDir returns the state directory used for persisted data and logs.
func StateDir() string {
	return Get("state_dir", "")
}

func normalizeBool(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return v
	}
}
