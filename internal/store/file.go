package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/termrain/termrain/internal/config"
)

// FileBackend stores the record as a single binary file, replaced atomically
// via a temp file and rename.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend at the given path, creating the
// parent directory if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("file backend: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), config.FileModeDir); err != nil {
		return nil, fmt.Errorf("file backend: create directory: %w", err)
	}
	return &FileBackend{path: path}, nil
}

// Read returns the stored record bytes.
func (b *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("file backend: read: %w", err)
	}
	return data, nil
}

// Write replaces the stored record atomically. The temp file lands in the
// same directory so the rename never crosses filesystems.
func (b *FileBackend) Write(data []byte) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("file backend: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("file backend: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("file backend: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("file backend: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, config.FileModeFile); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("file backend: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("file backend: replace record: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error { return nil }
