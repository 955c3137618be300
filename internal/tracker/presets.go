package tracker

import (
	"github.com/kimurataturyu-sys/workout-log/internal/catalog"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

func (t *Tracker) Presets() []models.Preset {
	return t.State().Presets
}

// Preset resolves ref as an id, a name or a workout tag
func (t *Tracker) Preset(ref string) (models.Preset, error) {
	s := t.State()
	return t.catalogOf(&s).Resolve(ref)
}

func (t *Tracker) CreatePreset(name, workoutTag string) (models.Preset, error) {
	var created models.Preset
	err := t.mutate(func(s *models.State) error {
		p, err := t.catalogOf(s).Create(name, workoutTag)
		created = p
		return err
	})
	if err == nil {
		logger.Info("Created preset", "id", created.ID, "name", created.Name)
	}
	return created, err
}

func (t *Tracker) RenamePreset(ref, name string) error {
	return t.mutate(func(s *models.State) error {
		c := t.catalogOf(s)
		p, err := c.Resolve(ref)
		if err != nil {
			return err
		}
		return c.Rename(p.ID, name)
	})
}

// DeletePreset removes a preset and reports whether the active session went with it
func (t *Tracker) DeletePreset(ref string) (bool, error) {
	var cleared bool
	err := t.mutate(func(s *models.State) error {
		c := t.catalogOf(s)
		p, err := c.Resolve(ref)
		if err != nil {
			return err
		}
		cleared, err = c.Delete(p.ID)
		return err
	})
	if cleared {
		logger.Info("Active session cleared with its preset", "preset", ref)
	}
	return cleared, err
}

func (t *Tracker) AddExercise(ref, name string, repMin, repMax int, increment float64) (models.ExerciseDefinition, error) {
	def, err := models.NewExerciseDefinition(name, repMin, repMax, increment)
	if err != nil {
		return models.ExerciseDefinition{}, err
	}
	err = t.mutate(func(s *models.State) error {
		c := t.catalogOf(s)
		p, err := c.Resolve(ref)
		if err != nil {
			return err
		}
		if err := c.AddExercise(p.ID, def); err != nil {
			return err
		}
		updated, _ := c.Get(p.ID)
		def = updated.Exercises[len(updated.Exercises)-1]
		return nil
	})
	return def, err
}

func (t *Tracker) RemoveExercise(ref string, index int) error {
	return t.mutate(func(s *models.State) error {
		c := t.catalogOf(s)
		p, err := c.Resolve(ref)
		if err != nil {
			return err
		}
		return c.RemoveExercise(p.ID, index)
	})
}

func (t *Tracker) MoveExercise(ref string, index int, dir catalog.Direction) error {
	return t.mutate(func(s *models.State) error {
		c := t.catalogOf(s)
		p, err := c.Resolve(ref)
		if err != nil {
			return err
		}
		return c.Reorder(p.ID, index, dir)
	})
}

// SeedStarterPresets installs the starter split into an empty catalog
func (t *Tracker) SeedStarterPresets() (int, error) {
	var n int
	err := t.mutate(func(s *models.State) error {
		var err error
		n, err = t.catalogOf(s).SeedStarterPresets()
		return err
	})
	return n, err
}
