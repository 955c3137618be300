package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kimurataturyu-sys/workout-log/internal/errors"
)

// Preset is a reusable named template of exercises used to start a session
type Preset struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	WorkoutTag string               `json:"workoutTag"`
	Exercises  []ExerciseDefinition `json:"exercises"`
}

// NewPreset creates a preset with a fresh id and no exercises
func NewPreset(name, workoutTag string) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, errors.NewValidation("name", "preset name cannot be empty")
	}
	return Preset{
		ID:         uuid.New().String(),
		Name:       name,
		WorkoutTag: strings.TrimSpace(workoutTag),
		Exercises:  []ExerciseDefinition{},
	}, nil
}

// ExerciseIndex returns the position of the named exercise, or -1
func (p Preset) ExerciseIndex(name string) int {
	for i, ex := range p.Exercises {
		if ex.Name == name {
			return i
		}
	}
	return -1
}

func (p Preset) clone() Preset {
	if p.Exercises != nil {
		p.Exercises = append(make([]ExerciseDefinition, 0, len(p.Exercises)), p.Exercises...)
	}
	return p
}
