package models

import (
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/errors"
)

// ExerciseDefinition is one exercise in a preset with its target rep range.
// Name is the identity within a preset.
type ExerciseDefinition struct {
	Name            string  `json:"name"`
	RepMin          int     `json:"repMin"`
	RepMax          int     `json:"repMax"`
	WeightIncrement float64 `json:"weightIncrement"`
}

// NewExerciseDefinition builds a validated definition
func NewExerciseDefinition(name string, repMin, repMax int, increment float64) (ExerciseDefinition, error) {
	def := ExerciseDefinition{
		Name:            strings.TrimSpace(name),
		RepMin:          repMin,
		RepMax:          repMax,
		WeightIncrement: increment,
	}
	if err := def.Validate(); err != nil {
		return ExerciseDefinition{}, err
	}
	return def, nil
}

func (d ExerciseDefinition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidation("name", "exercise name cannot be empty")
	}
	if err := ValidateRepRange(d.RepMin, d.RepMax); err != nil {
		return err
	}
	if !IsFinite(d.WeightIncrement) || d.WeightIncrement < 0 {
		return errors.NewValidation("weightIncrement", "must be a non-negative number, got %v", d.WeightIncrement)
	}
	return nil
}

// ValidateRepRange requires 1 <= repMin < repMax
func ValidateRepRange(repMin, repMax int) error {
	if repMin < 1 {
		return errors.NewValidation("repMin", "must be at least 1, got %d", repMin)
	}
	if repMin >= repMax {
		return errors.NewValidation("repRange", "repMin (%d) must be below repMax (%d)", repMin, repMax)
	}
	return nil
}
