// Package errors provides user-facing error presentation handlers.
package errors

import (
	"sync"
	"time"

	"github.com/termrain/termrain/internal/colors"
)

// ErrorHandler presents recoverable-with-signal failures to the user.
// CLI commands print immediately; the TUI queues messages for its banner.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// CLIHandler prints messages through the colors package.
type CLIHandler struct{}

// NewCLIHandler creates a CLI error handler.
func NewCLIHandler() *CLIHandler { return &CLIHandler{} }

func (h *CLIHandler) Error(msg string)   { colors.Error(msg) }
func (h *CLIHandler) Warning(msg string) { colors.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { colors.Info(msg) }
func (h *CLIHandler) Success(msg string) { colors.Success(msg) }

// MessageType classifies a queued TUI message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// Message is a queued user-facing message.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler queues messages for display in the TUI status banner.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	notify   func(msg Message)
}

// NewTUIHandler creates a handler that calls notify for each queued message.
func NewTUIHandler(notify func(msg Message)) *TUIHandler {
	return &TUIHandler{notify: notify}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(text string, t MessageType) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msg := Message{Text: text, Type: t, Timestamp: time.Now()}
	h.messages = append(h.messages, msg)
	if h.notify != nil {
		h.notify(msg)
	}
}

// Latest returns the most recent message, if any.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Clear discards all queued messages.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
