package symbolset

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/termrain/termrain/internal/settings"
)

// ExportVersion tags exported payloads for future format evolution.
const ExportVersion = "1.0"

// importedNameSuffix marks entries duplicated during a colliding import.
const importedNameSuffix = " (Imported)"

// exportPayload is the shareable JSON envelope for custom sets.
type exportPayload struct {
	Version    string               `json:"version"`
	ExportedAt int64                `json:"exportedAt"`
	CustomSets []settings.CustomSet `json:"customSets"`
}

// ExportJSON wraps the given sets in a versioned, timestamped envelope.
// Round-trips preserve every field exactly, including an empty list.
func ExportJSON(sets []settings.CustomSet) (string, error) {
	if sets == nil {
		sets = []settings.CustomSet{}
	}
	payload := exportPayload{
		Version:    ExportVersion,
		ExportedAt: time.Now().UnixMilli(),
		CustomSets: sets,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode custom sets: %w", err)
	}
	return string(data), nil
}

// ImportJSON parses an exported payload. Unlike List, a malformed payload
// surfaces as an error carrying the parse failure, because the user
// explicitly asked for this import and must hear that it failed.
func ImportJSON(raw string) ([]settings.CustomSet, error) {
	var payload exportPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	sets := payload.CustomSets
	for i := range sets {
		if sets[i].FontFileName == "" {
			sets[i].FontFileName = settings.CustomSetFontDefault
		}
	}
	return sets, nil
}

// ImportAndMerge parses raw and merges the result into the stored list:
// entries with a fresh ID are added as-is; entries whose ID collides with a
// stored set are duplicated under a newly generated ID with the imported
// suffix appended to the name. The existing entry is never overwritten.
// Returns the number of sets added.
func (r *Repository) ImportAndMerge(raw string) (int, error) {
	imported, err := ImportJSON(raw)
	if err != nil {
		return 0, err
	}
	if len(imported) == 0 {
		return 0, nil
	}

	added := 0
	_, err = r.store.Update(func(s settings.Settings) settings.Settings {
		existing := make(map[string]bool, len(s.SavedCustomSets))
		for _, set := range s.SavedCustomSets {
			existing[set.ID] = true
		}

		sets := make([]settings.CustomSet, len(s.SavedCustomSets))
		copy(sets, s.SavedCustomSets)

		added = 0
		for _, set := range imported {
			if set.ID == "" || existing[set.ID] {
				set.ID = uuid.NewString()
				set.Name += importedNameSuffix
			}
			existing[set.ID] = true
			sets = append(sets, set)
			added++
		}
		return s.WithCustomSets(sets)
	})
	if err != nil {
		return 0, fmt.Errorf("merge imported custom sets: %w", err)
	}
	return added, nil
}
