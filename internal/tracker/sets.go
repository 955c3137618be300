package tracker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
	"github.com/kimurataturyu-sys/workout-log/internal/progression"
)

// NextSetIndex is one past the highest set index logged for exercise on date
func (t *Tracker) NextSetIndex(date, exercise string) int {
	next := 1
	for _, e := range t.state.Sets {
		if e.Date == date && e.ExerciseName == exercise && e.SetIndex >= next {
			next = e.SetIndex + 1
		}
	}
	return next
}

// LogSet appends a set and returns the verdict on it. A zero set index is
// filled in automatically. While a session runs on the same date the entry
// is tagged with the session id.
func (t *Tracker) LogSet(in models.SetInput) (models.SetEntry, progression.Verdict, error) {
	in.ExerciseName = strings.TrimSpace(in.ExerciseName)
	if in.Date == "" {
		in.Date = t.Today()
	}
	if in.SetIndex == 0 {
		in.SetIndex = t.NextSetIndex(in.Date, in.ExerciseName)
	}

	entry, err := models.NewSetEntry(in, t.now())
	if err != nil {
		return models.SetEntry{}, progression.Verdict{}, err
	}
	if s := t.state.Session; s != nil && s.Date == entry.Date {
		entry.SessionID = s.ID
	}

	history := t.state.Sets
	verdict := t.engine.Evaluate(entry, history, t.Rule(entry.ExerciseName))

	err = t.mutate(func(s *models.State) error {
		s.Sets = append(s.Sets, entry)
		return nil
	})
	return entry, verdict, err
}

// EditSet replaces the user fields of a logged set, keeping its id, session
// tag and logging time
func (t *Tracker) EditSet(id string, in models.SetInput) (models.SetEntry, progression.Verdict, error) {
	idx := t.state.FindSet(id)
	if idx < 0 {
		return models.SetEntry{}, progression.Verdict{}, fmt.Errorf("set %s: %w", id, errors.ErrNotFound)
	}

	entry := t.state.Sets[idx]
	entry.Date = in.Date
	entry.ExerciseName = strings.TrimSpace(in.ExerciseName)
	entry.SetIndex = in.SetIndex
	entry.Weight = in.Weight
	entry.Reps = in.Reps
	entry.EffortRating = in.EffortRating
	if err := entry.Validate(); err != nil {
		return models.SetEntry{}, progression.Verdict{}, err
	}

	verdict := t.engine.Evaluate(entry, t.state.Sets, t.Rule(entry.ExerciseName))
	err := t.mutate(func(s *models.State) error {
		s.Sets[idx] = entry
		return nil
	})
	return entry, verdict, err
}

func (t *Tracker) DeleteSet(id string) (models.SetEntry, error) {
	var removed models.SetEntry
	err := t.mutate(func(s *models.State) error {
		idx := s.FindSet(id)
		if idx < 0 {
			return fmt.Errorf("set %s: %w", id, errors.ErrNotFound)
		}
		removed = s.Sets[idx]
		s.Sets = append(s.Sets[:idx], s.Sets[idx+1:]...)
		return nil
	})
	return removed, err
}

// SetFilter narrows History. Empty fields match everything.
type SetFilter struct {
	Exercise string
	Date     string
	From     string
	To       string
	Limit    int
}

// History returns matching sets, newest day first, then by set index
func (t *Tracker) History(f SetFilter) []models.SetEntry {
	var out []models.SetEntry
	for _, e := range t.State().Sets {
		switch {
		case f.Exercise != "" && !strings.EqualFold(e.ExerciseName, f.Exercise):
			continue
		case f.Date != "" && e.Date != f.Date:
			continue
		case f.From != "" && e.Date < f.From:
			continue
		case f.To != "" && e.Date > f.To:
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		if out[i].ExerciseName != out[j].ExerciseName {
			return out[i].ExerciseName < out[j].ExerciseName
		}
		return out[i].SetIndex < out[j].SetIndex
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
