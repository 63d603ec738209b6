// Package store provides the versioned single-slot settings store.
package store

import "errors"

// ErrNotFound indicates the slot has never been written.
var ErrNotFound = errors.New("store: record not found")

// Backend persists one encoded settings record. Writes replace the whole
// record atomically; there is no partial-field update at this layer.
type Backend interface {
	// Read returns the stored record bytes, or ErrNotFound when the slot
	// has never been written.
	Read() ([]byte, error)
	// Write atomically replaces the stored record.
	Write(data []byte) error
	// Close releases backend resources.
	Close() error
}
