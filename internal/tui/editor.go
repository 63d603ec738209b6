// Package tui provides the interactive rain view and settings editor.
package tui

import (
	"reflect"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
)

// Editor holds the draft copy of settings mutated live by UI controls.
//
// The draft never touches the persistent store until Commit: an uncommitted
// draft cannot leak into storage, and Revert discards it against the last
// persisted baseline. Single-owner: the bubbletea event loop serializes all
// mutations.
type Editor struct {
	store    *store.Store
	baseline settings.Settings
	draft    settings.Settings
}

// NewEditor creates an editor whose draft and baseline start at the store's
// current record (the CLEAN state).
func NewEditor(st *store.Store) *Editor {
	current := st.Settings()
	return &Editor{store: st, baseline: current, draft: current}
}

// Draft returns the working copy.
func (e *Editor) Draft() settings.Settings { return e.draft }

// Baseline returns the last persisted record.
func (e *Editor) Baseline() settings.Settings { return e.baseline }

// Dirty reports whether the draft differs from the persisted baseline.
func (e *Editor) Dirty() bool {
	return !reflect.DeepEqual(e.draft, e.baseline)
}

// Apply applies a single-field mutation to the draft only.
func (e *Editor) Apply(m settings.Mutation) {
	e.draft = m.Apply(e.draft)
}

// SetDraft replaces the whole draft, e.g. when a picker composes several
// field changes at once.
func (e *Editor) SetDraft(s settings.Settings) {
	e.draft = settings.Clamp(s)
}

// Commit persists the draft. On success the draft becomes the new baseline
// (CLEAN). On write failure the draft stays dirty and the error propagates
// so the UI can show it; the change must not appear to have succeeded.
func (e *Editor) Commit() error {
	if !e.Dirty() {
		return nil
	}
	committed, err := e.store.Replace(e.draft)
	if err != nil {
		return err
	}
	e.baseline = committed
	e.draft = committed
	return nil
}

// Revert discards the draft, reloading the last persisted baseline.
func (e *Editor) Revert() {
	e.baseline = e.store.Settings()
	e.draft = e.baseline
}

// ResetToDefaults replaces the draft with the documented defaults, keeping
// the user's saved custom set library. Stays dirty until committed.
func (e *Editor) ResetToDefaults() {
	defaults := settings.Default()
	defaults.SavedCustomSets = e.draft.SavedCustomSets
	e.draft = defaults
}

// Refresh adopts an externally committed record as the new baseline when the
// editor is clean; a dirty draft is kept so live edits survive background
// commits (e.g. a custom set import from the CLI).
func (e *Editor) Refresh(current settings.Settings) {
	if !e.Dirty() {
		e.baseline = current
		e.draft = current
		return
	}
	e.baseline = current
}
