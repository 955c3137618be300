// Package validation checks a loaded State for integrity problems. It reports
// conflicts and never changes anything.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

type ConflictType string

const (
	ConflictDuplicatePresetID     ConflictType = "duplicate_preset_id"
	ConflictDuplicateExerciseName ConflictType = "duplicate_exercise_name"
	ConflictInvalidRepRange       ConflictType = "invalid_rep_range"
	ConflictDuplicateSetID        ConflictType = "duplicate_set_id"
	ConflictDuplicateSetIndex     ConflictType = "duplicate_set_index"
	ConflictInvalidSet            ConflictType = "invalid_set"
	ConflictDanglingSession       ConflictType = "dangling_session"
	ConflictOrphanSessionSet      ConflictType = "orphan_session_set"
	ConflictDuplicateSwap         ConflictType = "duplicate_swap"
	ConflictSwapHistoryOverCap    ConflictType = "swap_history_over_cap"
)

type Conflict struct {
	Type        ConflictType
	Description string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport renders the conflicts grouped by type
func (r ValidationResult) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	byType := make(map[ConflictType][]string)
	var types []string
	for _, c := range r.Conflicts {
		if _, ok := byType[c.Type]; !ok {
			types = append(types, string(c.Type))
		}
		byType[c.Type] = append(byType[c.Type], c.Description)
	}
	sort.Strings(types)

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(r.Conflicts))
	for _, t := range types {
		fmt.Fprintf(&b, "\n%s:\n", strings.ReplaceAll(t, "_", " "))
		for _, d := range byType[ConflictType(t)] {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type Validator struct {
	swapCap int
}

// New returns a Validator. A swapCap of zero skips the history size check.
func New(swapCap int) *Validator {
	return &Validator{swapCap: swapCap}
}

// ValidateState runs every check
func (v *Validator) ValidateState(state models.State) ValidationResult {
	var conflicts []Conflict
	conflicts = append(conflicts, v.ValidatePresets(state.Presets).Conflicts...)
	conflicts = append(conflicts, v.ValidateSets(state.Sets).Conflicts...)
	conflicts = append(conflicts, v.ValidateSession(state).Conflicts...)
	conflicts = append(conflicts, v.ValidateSwapHistory(state.SwapHistory).Conflicts...)
	if conflicts == nil {
		conflicts = []Conflict{}
	}
	return ValidationResult{Conflicts: conflicts}
}

func (v *Validator) ValidatePresets(presets []models.Preset) ValidationResult {
	conflicts := []Conflict{}
	ids := make(map[string]bool)

	for _, p := range presets {
		if ids[p.ID] {
			conflicts = append(conflicts, Conflict{ConflictDuplicatePresetID, fmt.Sprintf("preset id %s is used more than once", p.ID)})
		}
		ids[p.ID] = true

		names := make(map[string]bool)
		for _, ex := range p.Exercises {
			if names[ex.Name] {
				conflicts = append(conflicts, Conflict{ConflictDuplicateExerciseName, fmt.Sprintf("%q lists %q twice", p.Name, ex.Name)})
			}
			names[ex.Name] = true

			if err := models.ValidateRepRange(ex.RepMin, ex.RepMax); err != nil {
				conflicts = append(conflicts, Conflict{ConflictInvalidRepRange, fmt.Sprintf("%q / %q: %v", p.Name, ex.Name, err)})
			}
		}
	}
	return ValidationResult{Conflicts: conflicts}
}

// ValidateSets reports bad entries and repeated (date, exercise, set) triples.
// Repeats are tolerated by the app, so they are reported for cleanup only.
func (v *Validator) ValidateSets(sets []models.SetEntry) ValidationResult {
	conflicts := []Conflict{}
	ids := make(map[string]bool)
	slots := make(map[string]int)

	for _, e := range sets {
		if ids[e.ID] {
			conflicts = append(conflicts, Conflict{ConflictDuplicateSetID, fmt.Sprintf("set id %s is used more than once", e.ID)})
		}
		ids[e.ID] = true

		if err := e.Validate(); err != nil {
			conflicts = append(conflicts, Conflict{ConflictInvalidSet, fmt.Sprintf("set %s: %v", e.ID, err)})
		}

		key := fmt.Sprintf("%s %s #%d", e.Date, e.ExerciseName, e.SetIndex)
		slots[key]++
		if slots[key] == 2 {
			conflicts = append(conflicts, Conflict{ConflictDuplicateSetIndex, fmt.Sprintf("%s logged more than once (latest entry is shown)", key)})
		}
	}
	return ValidationResult{Conflicts: conflicts}
}

// ValidateSession checks the active session against the catalog and the log
func (v *Validator) ValidateSession(state models.State) ValidationResult {
	conflicts := []Conflict{}
	session := state.Session

	if session != nil && session.PresetID != "" && state.FindPreset(session.PresetID) < 0 {
		conflicts = append(conflicts, Conflict{ConflictDanglingSession, fmt.Sprintf("active session %s refers to missing preset %s", session.ID, session.PresetID)})
	}
	if session != nil {
		for _, ex := range session.Exercises {
			if err := models.ValidateRepRange(ex.RepMin, ex.RepMax); err != nil {
				conflicts = append(conflicts, Conflict{ConflictInvalidRepRange, fmt.Sprintf("session / %q: %v", ex.Name, err)})
			}
		}
	}

	// Sets tagged with the active session must share its date
	for _, e := range state.Sets {
		if session != nil && e.SessionID == session.ID && e.Date != session.Date {
			conflicts = append(conflicts, Conflict{ConflictOrphanSessionSet, fmt.Sprintf("set %s is tagged with the active session but dated %s", e.ID, e.Date)})
		}
	}
	return ValidationResult{Conflicts: conflicts}
}

func (v *Validator) ValidateSwapHistory(history []models.SwapEntry) ValidationResult {
	conflicts := []Conflict{}
	seen := make(map[models.SwapEntry]bool)
	for _, h := range history {
		if seen[h] {
			conflicts = append(conflicts, Conflict{ConflictDuplicateSwap, fmt.Sprintf("%s -> %s recorded more than once", h.From, h.To)})
		}
		seen[h] = true
	}
	if v.swapCap > 0 && len(history) > v.swapCap {
		conflicts = append(conflicts, Conflict{ConflictSwapHistoryOverCap, fmt.Sprintf("%d entries exceed the limit of %d", len(history), v.swapCap)})
	}
	return ValidationResult{Conflicts: conflicts}
}
