package models

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/errors"
)

// SetEntry is one logged set. Exercise names are loose references: renaming
// an exercise later never rewrites history.
type SetEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	ExerciseName string  `json:"exerciseName"`
	SetIndex     int     `json:"setIndex"` // 1-based
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	EffortRating *int    `json:"effortRating"`        // reps in reserve, nil when not recorded
	SessionID    string  `json:"sessionId,omitempty"` // owning session, if logged during one
	LoggedAt     string  `json:"loggedAt,omitempty"`  // RFC3339
}

// SetInput carries the user-supplied fields of a set
type SetInput struct {
	Date         string
	ExerciseName string
	SetIndex     int
	Weight       float64
	Reps         int
	EffortRating *int
}

// NewSetEntry validates input and stamps a fresh id and logging time
func NewSetEntry(in SetInput, now time.Time) (SetEntry, error) {
	entry := SetEntry{
		ID:           uuid.New().String(),
		Date:         in.Date,
		ExerciseName: strings.TrimSpace(in.ExerciseName),
		SetIndex:     in.SetIndex,
		Weight:       in.Weight,
		Reps:         in.Reps,
		EffortRating: in.EffortRating,
		LoggedAt:     now.UTC().Format(time.RFC3339),
	}
	if err := entry.Validate(); err != nil {
		return SetEntry{}, err
	}
	return entry, nil
}

func (e SetEntry) Validate() error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if e.ExerciseName == "" {
		return errors.NewValidation("exercise", "exercise name cannot be empty")
	}
	if e.SetIndex < 1 {
		return errors.NewValidation("setIndex", "must be at least 1, got %d", e.SetIndex)
	}
	if !IsFinite(e.Weight) || e.Weight < 0 {
		return errors.NewValidation("weight", "must be a non-negative number, got %v", e.Weight)
	}
	if e.Reps < 0 {
		return errors.NewValidation("reps", "must not be negative, got %d", e.Reps)
	}
	if e.EffortRating != nil && (*e.EffortRating < 0 || *e.EffortRating > constants.EffortMax) {
		return errors.NewValidation("effort", "must be between 0 and %d, got %d", constants.EffortMax, *e.EffortRating)
	}
	return nil
}

// ValidateDate requires an ISO calendar day
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return errors.NewValidation("date", "expected YYYY-MM-DD, got %q", date)
	}
	return nil
}

// IsFinite rejects NaN and the infinities, which JSON cannot encode
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Effort returns a pointer to v, for building optional effort ratings
func Effort(v int) *int {
	return &v
}
