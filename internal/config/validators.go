package config

import (
	"strconv"
	"strings"
)

// validator normalizes a value, reporting false when it cannot be accepted.
type validator func(value string) (normalized string, ok bool)

var validators = map[string]validator{
	"storage_backend": enumValidator(BackendFile, BackendSQLite),
	"log_enabled":     boolValidator,
	"log_level":       enumValidator("debug", "info", "warn", "warning", "error"),
	"log_max_files":   positiveIntValidator,
	"debug":           boolValidator,
}

func enumValidator(allowed ...string) validator {
	set := make(map[string]bool, len(allowed))
	for _, v := range allowed {
		set[v] = true
	}
	return func(value string) (string, bool) {
		lower := strings.ToLower(strings.TrimSpace(value))
		if !set[lower] {
			return "", false
		}
		return lower, true
	}
}

func boolValidator(value string) (string, bool) {
	normalized := normalizeBool(value)
	if normalized != "true" && normalized != "false" {
		return "", false
	}
	return normalized, true
}

func positiveIntValidator(value string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}
