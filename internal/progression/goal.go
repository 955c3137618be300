package progression

import (
	"fmt"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

type Status int

const (
	StatusInformational Status = iota
	StatusReadyToProgress
	StatusOnTrack
	StatusCaution
)

func (s Status) String() string {
	switch s {
	case StatusReadyToProgress:
		return "ready-to-progress"
	case StatusOnTrack:
		return "on-track"
	case StatusCaution:
		return "caution"
	default:
		return "informational"
	}
}

// Goal is the target for the next session of an exercise. Weight and Reps
// are only meaningful when HasTarget is set.
type Goal struct {
	HasTarget bool
	Weight    float64
	Reps      int
	Status    Status
	Message   string
	// Basis is the best set of the previous session, nil on a first attempt
	Basis *models.SetEntry
}

// ProposeGoal looks at the most recent day strictly before date on which
// exercise was trained, picks its heaviest set (reps break ties) and applies
// double progression to it.
func (e *Engine) ProposeGoal(history []models.SetEntry, exercise, date string, rule Rule) Goal {
	best, ok := previousBest(history, exercise, date)
	if !ok {
		return Goal{
			Status:  StatusInformational,
			Message: fmt.Sprintf("first time: aim for %d-%d reps", rule.RepMin, rule.RepMax),
		}
	}

	goal := Goal{HasTarget: true, Basis: &best}
	switch {
	case best.Reps >= rule.RepMax:
		goal.Weight = best.Weight + rule.WeightIncrement
		goal.Reps = rule.RepMin
		goal.Status = StatusReadyToProgress
		goal.Message = fmt.Sprintf("previous ceiling reached: increase weight, reset to %d reps", rule.RepMin)
	case best.Reps >= rule.RepMin:
		goal.Weight = best.Weight
		goal.Reps = best.Reps + 1
		goal.Status = StatusOnTrack
		goal.Message = "same weight, one more rep"
	default:
		goal.Weight = best.Weight
		goal.Reps = rule.RepMin
		goal.Status = StatusCaution
		goal.Message = fmt.Sprintf("stabilize at %d reps first", rule.RepMin)
	}
	return goal
}

func previousBest(history []models.SetEntry, exercise, date string) (models.SetEntry, bool) {
	entries := forExercise(history, exercise, "")
	for _, day := range sortedDays(entries) {
		if day >= date {
			continue
		}
		var best models.SetEntry
		found := false
		for _, en := range entries {
			if en.Date != day {
				continue
			}
			if !found || en.Weight > best.Weight || (en.Weight == best.Weight && en.Reps > best.Reps) {
				best = en
				found = true
			}
		}
		return best, found
	}
	return models.SetEntry{}, false
}
