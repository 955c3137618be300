// Package session runs the Idle -> Active -> Idle lifecycle of a workout.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
	"github.com/kimurataturyu-sys/workout-log/internal/swap"
)

// ExerciseLookup finds an exercise definition by name. *catalog.Catalog satisfies it.
type ExerciseLookup interface {
	FindExercise(name string) (models.ExerciseDefinition, bool)
}

// Machine applies session transitions to a State. It holds no session of its
// own; the state passed in is the only source of truth.
type Machine struct {
	policy  string
	repMin  int
	repMax  int
	swapCap int
}

// NewMachine builds a Machine. An unknown policy is treated as strict.
func NewMachine(policy string, repMin, repMax, swapCap int) *Machine {
	if policy != constants.SessionPolicyReplace {
		policy = constants.SessionPolicyStrict
	}
	return &Machine{policy: policy, repMin: repMin, repMax: repMax, swapCap: swapCap}
}

func (m *Machine) Policy() string {
	return m.policy
}

// guard is the only place the one-active-session rule is enforced
func guard(state *models.State, op string, want models.Phase) error {
	if state.Phase() != want {
		return &errors.StateConflictError{Op: op, State: state.Phase().String()}
	}
	return nil
}

// Start snapshots the preset into a new active session
func (m *Machine) Start(state *models.State, preset models.Preset, date string, now time.Time) (*models.Session, error) {
	if state.Phase() == models.PhaseActive && m.policy == constants.SessionPolicyStrict {
		return nil, guard(state, "start a session", models.PhaseIdle)
	}
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}
	if len(preset.Exercises) == 0 {
		return nil, errors.NewValidation("preset", "%q has no exercises", preset.Name)
	}

	exercises := make([]models.SessionExercise, 0, len(preset.Exercises))
	for _, ex := range preset.Exercises {
		exercises = append(exercises, models.SessionExercise{Name: ex.Name, RepMin: ex.RepMin, RepMax: ex.RepMax})
	}

	session := &models.Session{
		ID:            uuid.New().String(),
		Date:          date,
		PresetID:      preset.ID,
		WorkoutTag:    preset.WorkoutTag,
		Exercises:     exercises,
		Substitutions: []models.Substitution{},
		StartedAt:     now.UTC().Format(time.RFC3339),
	}
	state.Session = session
	return session, nil
}

// AddAdHocExercise appends an exercise with the default rep range. The
// source preset is not touched.
func (m *Machine) AddAdHocExercise(state *models.State, name string) error {
	if err := guard(state, "add an exercise", models.PhaseActive); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidation("name", "exercise name cannot be empty")
	}
	if state.Session.ExerciseIndex(name) >= 0 {
		return errors.NewValidation("name", "%q is already in this session", name)
	}
	state.Session.Exercises = append(state.Session.Exercises, models.SessionExercise{
		Name:   name,
		RepMin: m.repMin,
		RepMax: m.repMax,
	})
	return nil
}

// Substitute replaces the exercise at index with toName and records the swap
// in both the session log and the global history.
func (m *Machine) Substitute(state *models.State, index int, toName string, lookup ExerciseLookup) (models.Substitution, error) {
	if err := guard(state, "swap an exercise", models.PhaseActive); err != nil {
		return models.Substitution{}, err
	}
	session := state.Session
	if index < 0 || index >= len(session.Exercises) {
		return models.Substitution{}, errors.NewValidation("index", "no exercise at position %d", index)
	}
	toName = strings.TrimSpace(toName)
	if toName == "" {
		return models.Substitution{}, errors.NewValidation("name", "replacement exercise name cannot be empty")
	}

	prior := session.Exercises[index]
	if prior.Name == toName {
		return models.Substitution{}, errors.NewValidation("name", "%q is already at position %d", toName, index)
	}

	next := models.SessionExercise{Name: toName, RepMin: prior.RepMin, RepMax: prior.RepMax}
	if lookup != nil {
		if def, ok := lookup.FindExercise(toName); ok {
			next.RepMin, next.RepMax = def.RepMin, def.RepMax
		}
	}
	session.Exercises[index] = next

	sub := models.Substitution{From: prior.Name, To: toName}
	session.Substitutions = append(session.Substitutions, sub)
	state.SwapHistory = swap.Record(state.SwapHistory, sub.From, sub.To, m.swapCap)
	return sub, nil
}

// Finish ends the session. Logged sets are already in the log, so nothing
// else changes.
func (m *Machine) Finish(state *models.State) (*models.Session, error) {
	if err := guard(state, "finish", models.PhaseActive); err != nil {
		return nil, err
	}
	finished := state.Session
	state.Session = nil
	return finished, nil
}

// Cancel ends the session and drops every set logged under its id.
// It returns how many sets were discarded.
func (m *Machine) Cancel(state *models.State) (int, error) {
	if err := guard(state, "cancel", models.PhaseActive); err != nil {
		return 0, err
	}
	id := state.Session.ID

	kept := make([]models.SetEntry, 0, len(state.Sets))
	for _, e := range state.Sets {
		if e.SessionID != "" && e.SessionID == id {
			continue
		}
		kept = append(kept, e)
	}
	discarded := len(state.Sets) - len(kept)

	state.Sets = kept
	state.Session = nil
	return discarded, nil
}
