package catalog

import "github.com/kimurataturyu-sys/workout-log/internal/models"

type starterPreset struct {
	tag       string
	name      string
	exercises []models.ExerciseDefinition
}

// A push/pull/legs split to start from
var starterPresets = []starterPreset{
	{
		tag:  "PUSH",
		name: "Push | chest, front delts, triceps",
		exercises: []models.ExerciseDefinition{
			{Name: "Bench Press", RepMin: 6, RepMax: 8, WeightIncrement: 2.5},
			{Name: "Smith Incline Press", RepMin: 8, RepMax: 10, WeightIncrement: 2.5},
			{Name: "Smith Overhead Press", RepMin: 6, RepMax: 10, WeightIncrement: 2.5},
			{Name: "Lateral Raise", RepMin: 12, RepMax: 15, WeightIncrement: 1},
			{Name: "Overhead Triceps Extension", RepMin: 10, RepMax: 12, WeightIncrement: 2.5},
		},
	},
	{
		tag:  "PULL",
		name: "Pull | back, biceps",
		exercises: []models.ExerciseDefinition{
			{Name: "Chin-up", RepMin: 5, RepMax: 10, WeightIncrement: 2.5},
			{Name: "Seated Row", RepMin: 8, RepMax: 12, WeightIncrement: 2.5},
			{Name: "Deadlift", RepMin: 3, RepMax: 6, WeightIncrement: 5},
			{Name: "Incline Dumbbell Curl", RepMin: 8, RepMax: 12, WeightIncrement: 1},
		},
	},
	{
		tag:  "LEGS",
		name: "Legs",
		exercises: []models.ExerciseDefinition{
			{Name: "Barbell Squat", RepMin: 5, RepMax: 8, WeightIncrement: 5},
			{Name: "Leg Press", RepMin: 8, RepMax: 12, WeightIncrement: 5},
			{Name: "Romanian Deadlift", RepMin: 6, RepMax: 10, WeightIncrement: 5},
			{Name: "Leg Curl", RepMin: 10, RepMax: 12, WeightIncrement: 2.5},
		},
	},
}

// SeedStarterPresets installs the starter split when the catalog is empty.
// Returns how many presets were added.
func (c *Catalog) SeedStarterPresets() (int, error) {
	if len(c.state.Presets) > 0 {
		return 0, nil
	}
	for _, sp := range starterPresets {
		preset, err := c.Create(sp.name, sp.tag)
		if err != nil {
			return 0, err
		}
		for _, def := range sp.exercises {
			if err := c.AddExercise(preset.ID, def); err != nil {
				return 0, err
			}
		}
	}
	return len(starterPresets), nil
}
