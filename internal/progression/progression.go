// Package progression implements double progression: goal proposals before a
// set and advisory verdicts after one.
package progression

import (
	"sort"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Rule is the rep window and load step for one exercise
type Rule struct {
	RepMin          int
	RepMax          int
	WeightIncrement float64
}

// Settings tunes verdict thresholds
type Settings struct {
	EffortMin         int
	EffortMax         int
	RegressionRepDrop int
	CeilingMinSets    int
}

func DefaultSettings() Settings {
	return Settings{
		EffortMin:         constants.EffortBandMin,
		EffortMax:         constants.EffortBandMax,
		RegressionRepDrop: constants.RegressionRepDrop,
		CeilingMinSets:    constants.CeilingMinSets,
	}
}

type Engine struct {
	settings Settings
}

func NewEngine(settings Settings) *Engine {
	return &Engine{settings: settings}
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// sortedDays returns the distinct dates in entries, newest first
func sortedDays(entries []models.SetEntry) []string {
	seen := make(map[string]bool)
	var days []string
	for _, en := range entries {
		if !seen[en.Date] {
			seen[en.Date] = true
			days = append(days, en.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// forExercise keeps the entries of one exercise, optionally on one date
func forExercise(history []models.SetEntry, exercise, date string) []models.SetEntry {
	var out []models.SetEntry
	for _, en := range history {
		if en.ExerciseName != exercise {
			continue
		}
		if date != "" && en.Date != date {
			continue
		}
		out = append(out, en)
	}
	return out
}

// sameDaySets returns entry together with the other sets of its exercise on
// its date, ordered by set index and then by logging order, plus the position
// of entry in that order. An entry already present in history (same id) is
// replaced by the given value.
func sameDaySets(entry models.SetEntry, history []models.SetEntry) ([]models.SetEntry, int) {
	type slot struct {
		entry models.SetEntry
		self  bool
	}
	var slots []slot
	found := false
	for _, en := range forExercise(history, entry.ExerciseName, entry.Date) {
		if !found && entry.ID != "" && en.ID == entry.ID {
			slots = append(slots, slot{entry, true})
			found = true
			continue
		}
		slots = append(slots, slot{en, false})
	}
	if !found {
		slots = append(slots, slot{entry, true})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].entry.SetIndex < slots[j].entry.SetIndex
	})

	day := make([]models.SetEntry, len(slots))
	pos := 0
	for i, sl := range slots {
		day[i] = sl.entry
		if sl.self {
			pos = i
		}
	}
	return day, pos
}
