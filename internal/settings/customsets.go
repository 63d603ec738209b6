package settings

import "encoding/json"

// EncodeCustomSets encodes the saved custom set list as the JSON blob held by
// the persisted record. A nil or empty list encodes as an empty string. The
// list is encoded independently of the outer wire schema on purpose: new
// CustomSet fields never force a wire migration.
func EncodeCustomSets(sets []CustomSet) string {
	if len(sets) == 0 {
		return ""
	}
	data, err := json.Marshal(sets)
	if err != nil {
		// []CustomSet contains only strings; marshal cannot fail.
		return ""
	}
	return string(data)
}

// DecodeCustomSets decodes the persisted JSON blob. Malformed input yields an
// empty list, never an error: a corrupted blob costs the user their custom
// sets, not their whole settings record.
func DecodeCustomSets(blob string) []CustomSet {
	if blob == "" {
		return nil
	}
	var sets []CustomSet
	if err := json.Unmarshal([]byte(blob), &sets); err != nil {
		return nil
	}
	for i := range sets {
		if sets[i].FontFileName == "" {
			sets[i].FontFileName = CustomSetFontDefault
		}
	}
	return sets
}
