package symbolset

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
)

var (
	// ErrSetNotFound indicates the referenced custom set does not exist.
	ErrSetNotFound = errors.New("symbolset: custom set not found")
	// ErrEmptyName indicates a custom set with no name.
	ErrEmptyName = errors.New("symbolset: custom set name cannot be empty")
)

// Repository manages user-defined custom sets stored inside the settings
// slot. All writes go through the store's serialized read-modify-write
// update, so concurrent upserts cannot lose entries.
type Repository struct {
	store *store.Store
}

// NewRepository creates a repository over the given store.
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// List returns the saved custom sets in stored order. A corrupted blob has
// already decoded to an empty list at the wire boundary; List never errors.
func (r *Repository) List() []settings.CustomSet {
	current := r.store.Settings()
	out := make([]settings.CustomSet, len(current.SavedCustomSets))
	copy(out, current.SavedCustomSets)
	return out
}

// ActiveID returns the active custom set ID, empty when none is selected.
func (r *Repository) ActiveID() string {
	return r.store.Settings().ActiveCustomSetID
}

// Create generates a new custom set and persists it.
func (r *Repository) Create(name, characters, fontFileName string) (settings.CustomSet, error) {
	if name == "" {
		return settings.CustomSet{}, ErrEmptyName
	}
	if fontFileName == "" {
		fontFileName = settings.CustomSetFontDefault
	}
	set := settings.CustomSet{
		ID:           uuid.NewString(),
		Name:         name,
		Characters:   characters,
		FontFileName: fontFileName,
	}
	if err := r.Upsert(set); err != nil {
		return settings.CustomSet{}, err
	}
	return set, nil
}

// Upsert replaces the entry with the same ID, or appends when none exists.
func (r *Repository) Upsert(set settings.CustomSet) error {
	if set.Name == "" {
		return ErrEmptyName
	}
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	if set.FontFileName == "" {
		set.FontFileName = settings.CustomSetFontDefault
	}

	_, err := r.store.Update(func(s settings.Settings) settings.Settings {
		sets := make([]settings.CustomSet, len(s.SavedCustomSets))
		copy(sets, s.SavedCustomSets)

		replaced := false
		for i := range sets {
			if sets[i].ID == set.ID {
				sets[i] = set
				replaced = true
				break
			}
		}
		if !replaced {
			sets = append(sets, set)
		}
		return s.WithCustomSets(sets)
	})
	if err != nil {
		return fmt.Errorf("save custom set: %w", err)
	}
	return nil
}

// Delete removes the set with the given ID. Deleting the active set also
// clears the active reference.
func (r *Repository) Delete(id string) error {
	found := false
	_, err := r.store.Update(func(s settings.Settings) settings.Settings {
		sets := make([]settings.CustomSet, 0, len(s.SavedCustomSets))
		for _, set := range s.SavedCustomSets {
			if set.ID == id {
				found = true
				continue
			}
			sets = append(sets, set)
		}
		if !found {
			return s
		}
		s = s.WithCustomSets(sets)
		if s.ActiveCustomSetID == id {
			s.ActiveCustomSetID = ""
		}
		return s
	})
	if err != nil {
		return fmt.Errorf("delete custom set: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}
	return nil
}

// SetActive selects the active custom set. An empty ID clears the selection.
func (r *Repository) SetActive(id string) error {
	if id != "" {
		if _, ok := r.store.Settings().CustomSetByID(id); !ok {
			return fmt.Errorf("%w: %s", ErrSetNotFound, id)
		}
	}
	_, err := r.store.Update(func(s settings.Settings) settings.Settings {
		if id != "" {
			if _, ok := s.CustomSetByID(id); !ok {
				// Deleted concurrently; leave the selection unchanged.
				return s
			}
		}
		s.ActiveCustomSetID = id
		return s
	})
	if err != nil {
		return fmt.Errorf("set active custom set: %w", err)
	}
	return nil
}
