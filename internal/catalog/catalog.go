// Package catalog manages the user's presets: named, ordered exercise lists.
package catalog

import (
	"fmt"
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Direction moves an exercise within its preset
type Direction int

const (
	Up Direction = iota
	Down
)

// ParseDirection accepts "up" or "down"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return Up, errors.NewValidation("direction", "expected up or down, got %q", s)
	}
}

// Catalog edits the presets held in a State
type Catalog struct {
	state *models.State
	// defaultIncrement replaces a zero weight increment on added exercises
	defaultIncrement float64
}

func New(state *models.State, defaultIncrement float64) *Catalog {
	return &Catalog{state: state, defaultIncrement: defaultIncrement}
}

// Create adds a preset with no exercises
func (c *Catalog) Create(name, workoutTag string) (models.Preset, error) {
	preset, err := models.NewPreset(name, workoutTag)
	if err != nil {
		return models.Preset{}, err
	}
	c.state.Presets = append(c.state.Presets, preset)
	return preset, nil
}

func (c *Catalog) Get(id string) (models.Preset, error) {
	idx := c.state.FindPreset(id)
	if idx < 0 {
		return models.Preset{}, fmt.Errorf("preset %s: %w", id, errors.ErrNotFound)
	}
	return c.state.Presets[idx], nil
}

// Resolve finds a preset by id, then by case-insensitive name or workout tag
func (c *Catalog) Resolve(ref string) (models.Preset, error) {
	if p, err := c.Get(ref); err == nil {
		return p, nil
	}
	for _, p := range c.state.Presets {
		if strings.EqualFold(p.Name, ref) || (p.WorkoutTag != "" && strings.EqualFold(p.WorkoutTag, ref)) {
			return p, nil
		}
	}
	return models.Preset{}, fmt.Errorf("preset %s: %w", ref, errors.ErrNotFound)
}

func (c *Catalog) List() []models.Preset {
	return c.state.Presets
}

func (c *Catalog) Rename(id, name string) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidation("name", "preset name cannot be empty")
	}
	c.state.Presets[idx].Name = name
	return nil
}

// Delete removes a preset. A session started from it is cleared as well.
func (c *Catalog) Delete(id string) (sessionCleared bool, err error) {
	idx, err := c.index(id)
	if err != nil {
		return false, err
	}
	c.state.Presets = append(c.state.Presets[:idx], c.state.Presets[idx+1:]...)

	if c.state.Session != nil && c.state.Session.PresetID == id {
		c.state.Session = nil
		return true, nil
	}
	return false, nil
}

func (c *Catalog) AddExercise(id string, def models.ExerciseDefinition) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	def.Name = strings.TrimSpace(def.Name)
	if err := def.Validate(); err != nil {
		return err
	}
	if c.state.Presets[idx].ExerciseIndex(def.Name) >= 0 {
		return errors.NewValidation("name", "exercise %q already exists in this preset", def.Name)
	}
	if def.WeightIncrement == 0 {
		def.WeightIncrement = c.defaultIncrement
	}
	c.state.Presets[idx].Exercises = append(c.state.Presets[idx].Exercises, def)
	return nil
}

func (c *Catalog) RemoveExercise(id string, index int) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	exercises := c.state.Presets[idx].Exercises
	if index < 0 || index >= len(exercises) {
		return errors.NewValidation("index", "no exercise at position %d", index)
	}
	c.state.Presets[idx].Exercises = append(exercises[:index], exercises[index+1:]...)
	return nil
}

// Reorder swaps the exercise at index with its neighbour. Moving past either
// end is a no-op.
func (c *Catalog) Reorder(id string, index int, dir Direction) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	exercises := c.state.Presets[idx].Exercises
	if index < 0 || index >= len(exercises) {
		return errors.NewValidation("index", "no exercise at position %d", index)
	}

	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if target < 0 || target >= len(exercises) {
		return nil
	}
	exercises[index], exercises[target] = exercises[target], exercises[index]
	return nil
}

// FindExercise returns the first definition with this name across all presets
func (c *Catalog) FindExercise(name string) (models.ExerciseDefinition, bool) {
	for _, p := range c.state.Presets {
		if i := p.ExerciseIndex(name); i >= 0 {
			return p.Exercises[i], true
		}
	}
	return models.ExerciseDefinition{}, false
}

// ExerciseNames lists every exercise name in the catalog, in catalog order, without duplicates
func (c *Catalog) ExerciseNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range c.state.Presets {
		for _, ex := range p.Exercises {
			if !seen[ex.Name] {
				seen[ex.Name] = true
				names = append(names, ex.Name)
			}
		}
	}
	return names
}

func (c *Catalog) index(id string) (int, error) {
	idx := c.state.FindPreset(id)
	if idx < 0 {
		return -1, fmt.Errorf("preset %s: %w", id, errors.ErrNotFound)
	}
	return idx, nil
}
