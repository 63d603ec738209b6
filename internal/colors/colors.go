// Package colors provides terminal output helpers.
package colors

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// ANSI color constants.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger mirrors console output into a structured logger once one exists.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled atomic.Bool
	silenced     atomic.Bool
	loggerMu     sync.RWMutex
	mirror       Logger
)

func init() {
	if v := os.Getenv("TERMRAIN_DEBUG"); v == "true" || v == "1" {
		debugEnabled.Store(true)
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// SetLogger sets the structured logger that console output is mirrored to.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	mirror = l
}

// Silence suppresses all direct terminal writes. The settings TUI owns the
// terminal while it runs; stray writes corrupt the display. Mirrored
// structured logging continues.
func Silence(on bool) {
	silenced.Store(on)
}

func logger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return mirror
}

// Error writes an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := logger(); l != nil {
		l.Error(msg)
	}
	if silenced.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, "%sError:%s %s\n", Red, Reset, msg)
}

// Warning writes a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := logger(); l != nil {
		l.Warn(msg)
	}
	if silenced.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, "%sWarning:%s %s\n", Yellow, Reset, msg)
}

// Info writes an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := logger(); l != nil {
		l.Info(msg)
	}
	if silenced.Load() {
		return
	}
	fmt.Fprintf(os.Stdout, "%s%s%s\n", Blue, msg, Reset)
}

// Success writes a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := logger(); l != nil {
		l.Info(msg, "type", "success")
	}
	if silenced.Load() {
		return
	}
	fmt.Fprintf(os.Stdout, "%s%s%s %s\n", Green, checkmark, Reset, msg)
}

// Debug writes a debug message to stderr when debug output is enabled.
func Debug(msgs ...string) {
	if !debugEnabled.Load() {
		return
	}
	msg := strings.Join(msgs, " ")
	if l := logger(); l != nil {
		l.Debug(msg)
	}
	if silenced.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, "%sDebug:%s %s\n", Cyan, Reset, msg)
}
