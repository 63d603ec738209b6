package store

import (
	"fmt"
	"sync"

	"github.com/termrain/termrain/internal/colors"
	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/wire"
)

// Store is the single-slot, versioned settings store.
//
// Reads recover from corruption silently: a missing or unparseable record
// yields the documented defaults, because settings are convenience state and
// must never block startup. Writes propagate errors: silently losing an
// explicit confirm is not acceptable. All updates are serialized; at most
// one write is in flight per Store.
type Store struct {
	mu      sync.Mutex
	backend Backend
	current settings.Settings

	// neverWritten is true while the slot still holds its zero-value
	// default, which gates the one-time legacy migration.
	neverWritten bool

	watchMu  sync.Mutex
	watchers map[int]chan settings.Settings
	nextID   int
}

// New opens a store over the given backend and reads the slot once.
func New(backend Backend) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("store: backend cannot be nil")
	}
	s := &Store{
		backend:  backend,
		watchers: make(map[int]chan settings.Settings),
	}
	s.load()
	return s, nil
}

// load reads the slot, recovering to defaults on any failure. Corrupted
// bytes are discarded, not preserved.
func (s *Store) load() {
	data, err := s.backend.Read()
	if err != nil {
		if err != ErrNotFound {
			colors.Warning(fmt.Sprintf("settings store unreadable, using defaults: %v", err))
		}
		s.current = settings.Default()
		s.neverWritten = true
		return
	}

	record, err := wire.Unmarshal(data)
	if err != nil {
		colors.Warning(fmt.Sprintf("settings store corrupted, using defaults: %v", err))
		s.current = settings.Default()
		s.neverWritten = true
		return
	}

	if record.IsZero() {
		s.current = settings.Default()
		s.neverWritten = true
		return
	}

	s.current = wire.ToSettings(record)
	s.neverWritten = false
}

// Settings returns the latest committed settings.
func (s *Store) Settings() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update atomically replaces the record: fn receives the current settings
// and returns the next. The result is clamped before persisting, so an
// arbitrary external update cannot smuggle out-of-range values into the
// slot. On write failure the in-memory record is left unchanged and the
// error propagates.
func (s *Store) Update(fn func(settings.Settings) settings.Settings) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := settings.Clamp(fn(s.current))
	data := wire.Marshal(wire.FromSettings(next))
	if err := s.backend.Write(data); err != nil {
		return s.current, fmt.Errorf("store: write settings: %w", err)
	}

	s.current = next
	s.neverWritten = false
	s.notify(next)
	return next, nil
}

// Replace persists the given settings wholesale. Equivalent to an Update
// that ignores the current record.
func (s *Store) Replace(next settings.Settings) (settings.Settings, error) {
	return s.Update(func(settings.Settings) settings.Settings { return next })
}

// Watch subscribes to committed settings changes. The returned channel
// replays the latest record immediately, then receives every subsequent
// commit; slow consumers only ever lag by one record (stale pending values
// are replaced, not queued). The cancel function must be called when done.
func (s *Store) Watch() (<-chan settings.Settings, func()) {
	ch := make(chan settings.Settings, 1)

	// Register and replay under the store lock so no commit can slip in
	// between the snapshot and the registration.
	s.mu.Lock()
	s.watchMu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = ch
	ch <- s.current
	s.watchMu.Unlock()
	s.mu.Unlock()

	cancel := func() {
		s.watchMu.Lock()
		defer s.watchMu.Unlock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
	}
	return ch, cancel
}

// notify pushes the committed record to every watcher, replacing any stale
// pending value so late readers always observe the latest commit.
func (s *Store) notify(current settings.Settings) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for _, ch := range s.watchers {
		select {
		case ch <- current:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- current
		}
	}
}

// NeverWritten reports whether the slot still holds its zero-value default.
func (s *Store) NeverWritten() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.neverWritten
}

// Close closes the underlying backend and all watcher channels.
func (s *Store) Close() error {
	s.watchMu.Lock()
	for id, ch := range s.watchers {
		delete(s.watchers, id)
		close(ch)
	}
	s.watchMu.Unlock()
	return s.backend.Close()
}
