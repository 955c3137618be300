package session

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type lookupFunc func(string) (models.ExerciseDefinition, bool)

func (f lookupFunc) FindExercise(name string) (models.ExerciseDefinition, bool) { return f(name) }

func pushPreset() models.Preset {
	return models.Preset{
		ID:         "p1",
		Name:       "Push",
		WorkoutTag: "PUSH",
		Exercises: []models.ExerciseDefinition{
			{Name: "Bench", RepMin: 6, RepMax: 8, WeightIncrement: 2.5},
			{Name: "Dip", RepMin: 8, RepMax: 12, WeightIncrement: 2.5},
		},
	}
}

func strictMachine() *Machine {
	return NewMachine(constants.SessionPolicyStrict, 8, 12, 50)
}

func TestStartThenFinish(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()
	preset := pushPreset()
	before := pushPreset()

	session, err := m.Start(&state, preset, "2026-03-01", now)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if state.Phase() != models.PhaseActive {
		t.Fatalf("expected active, got %s", state.Phase())
	}
	if session.PresetID != "p1" || session.WorkoutTag != "PUSH" || len(session.Exercises) != 2 {
		t.Errorf("unexpected session snapshot: %+v", session)
	}
	if session.ID == "" || len(session.Substitutions) != 0 {
		t.Errorf("expected fresh id and no substitutions: %+v", session)
	}

	if _, err := m.Finish(&state); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if state.Phase() != models.PhaseIdle {
		t.Errorf("expected idle after finish, got %s", state.Phase())
	}
	if !reflect.DeepEqual(preset, before) {
		t.Errorf("preset modified: %+v", preset)
	}
}

func TestStartPolicy(t *testing.T) {
	t.Run("strict rejects", func(t *testing.T) {
		m := strictMachine()
		state := models.DefaultState()
		first, _ := m.Start(&state, pushPreset(), "2026-03-01", now)

		_, err := m.Start(&state, pushPreset(), "2026-03-02", now)
		if !errors.IsStateConflict(err) {
			t.Fatalf("expected state conflict, got %v", err)
		}
		if state.Session.ID != first.ID {
			t.Error("active session replaced under strict policy")
		}
	})

	t.Run("replace discards previous", func(t *testing.T) {
		m := NewMachine(constants.SessionPolicyReplace, 8, 12, 50)
		state := models.DefaultState()
		first, _ := m.Start(&state, pushPreset(), "2026-03-01", now)

		second, err := m.Start(&state, pushPreset(), "2026-03-02", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID == first.ID || state.Session.Date != "2026-03-02" {
			t.Errorf("expected session to be replaced, got %+v", state.Session)
		}
	})

	t.Run("unknown policy is strict", func(t *testing.T) {
		if p := NewMachine("whatever", 8, 12, 50).Policy(); p != constants.SessionPolicyStrict {
			t.Errorf("expected strict, got %s", p)
		}
	})
}

func TestStartRejectsEmptyPresetAndBadDate(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()

	empty := models.Preset{ID: "p", Name: "Empty", Exercises: []models.ExerciseDefinition{}}
	if _, err := m.Start(&state, empty, "2026-03-01", now); !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := m.Start(&state, pushPreset(), "yesterday", now); !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if state.Session != nil {
		t.Error("session created by rejected start")
	}
}

func TestTransitionsRequireActive(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()

	checks := map[string]func() error{
		"add":    func() error { return m.AddAdHocExercise(&state, "Curl") },
		"swap":   func() error { _, err := m.Substitute(&state, 0, "Curl", nil); return err },
		"finish": func() error { _, err := m.Finish(&state); return err },
		"cancel": func() error { _, err := m.Cancel(&state); return err },
	}
	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			if err := fn(); !errors.IsStateConflict(err) {
				t.Errorf("expected state conflict, got %v", err)
			}
		})
	}
}

func TestAddAdHocExercise(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()
	preset := pushPreset()
	m.Start(&state, preset, "2026-03-01", now)

	if err := m.AddAdHocExercise(&state, " Curl "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := state.Session.Exercises[len(state.Session.Exercises)-1]
	if last != (models.SessionExercise{Name: "Curl", RepMin: 8, RepMax: 12}) {
		t.Errorf("unexpected ad-hoc exercise: %+v", last)
	}
	if len(preset.Exercises) != 2 {
		t.Error("ad-hoc exercise written back to preset")
	}

	if err := m.AddAdHocExercise(&state, "Bench"); !errors.IsValidation(err) {
		t.Errorf("expected duplicate rejection, got %v", err)
	}
	if err := m.AddAdHocExercise(&state, ""); !errors.IsValidation(err) {
		t.Errorf("expected empty name rejection, got %v", err)
	}
}

func TestSubstitute(t *testing.T) {
	catalog := lookupFunc(func(name string) (models.ExerciseDefinition, bool) {
		if name == "DB Press" {
			return models.ExerciseDefinition{Name: name, RepMin: 10, RepMax: 15}, true
		}
		return models.ExerciseDefinition{}, false
	})

	tests := []struct {
		name    string
		to      string
		wantMin int
		wantMax int
	}{
		{"range from catalog", "DB Press", 10, 15},
		{"unknown keeps prior range", "Floor Press", 6, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := strictMachine()
			state := models.DefaultState()
			m.Start(&state, pushPreset(), "2026-03-01", now)

			sub, err := m.Substitute(&state, 0, tt.to, catalog)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sub != (models.Substitution{From: "Bench", To: tt.to}) {
				t.Errorf("unexpected substitution: %+v", sub)
			}
			got := state.Session.Exercises[0]
			if got.Name != tt.to || got.RepMin != tt.wantMin || got.RepMax != tt.wantMax {
				t.Errorf("got %+v, want %s %d-%d", got, tt.to, tt.wantMin, tt.wantMax)
			}
			if len(state.Session.Substitutions) != 1 {
				t.Errorf("expected one logged substitution, got %d", len(state.Session.Substitutions))
			}
			if len(state.SwapHistory) != 1 || state.SwapHistory[0] != (models.SwapEntry{From: "Bench", To: tt.to}) {
				t.Errorf("unexpected swap history: %+v", state.SwapHistory)
			}
		})
	}
}

func TestSubstituteRejections(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()
	m.Start(&state, pushPreset(), "2026-03-01", now)

	for _, idx := range []int{-1, 2} {
		if _, err := m.Substitute(&state, idx, "X", nil); !errors.IsValidation(err) {
			t.Errorf("index %d: expected validation error, got %v", idx, err)
		}
	}
	if _, err := m.Substitute(&state, 0, "  ", nil); !errors.IsValidation(err) {
		t.Errorf("expected validation error for empty name, got %v", err)
	}
	if len(state.SwapHistory) != 0 {
		t.Errorf("history changed by rejected swaps: %v", state.SwapHistory)
	}
}

func TestSubstituteHistoryNeverExceedsCap(t *testing.T) {
	m := NewMachine(constants.SessionPolicyStrict, 8, 12, 5)
	state := models.DefaultState()
	m.Start(&state, pushPreset(), "2026-03-01", now)

	for i := 0; i < 30; i++ {
		if _, err := m.Substitute(&state, 0, fmt.Sprintf("Press %d", i), nil); err != nil {
			t.Fatalf("swap %d failed: %v", i, err)
		}
		if len(state.SwapHistory) > 5 {
			t.Fatalf("history size %d exceeds cap after %d swaps", len(state.SwapHistory), i+1)
		}
	}
}

func TestCancelDiscardsTaggedSets(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()
	session, _ := m.Start(&state, pushPreset(), "2026-03-01", now)

	state.Sets = []models.SetEntry{
		{ID: "old", Date: "2026-02-27", ExerciseName: "Bench", SetIndex: 1, Weight: 95, Reps: 8},
		{ID: "a", Date: "2026-03-01", ExerciseName: "Bench", SetIndex: 1, Weight: 100, Reps: 8, SessionID: session.ID},
		{ID: "loose", Date: "2026-03-01", ExerciseName: "Curl", SetIndex: 1, Weight: 20, Reps: 10},
		{ID: "b", Date: "2026-03-01", ExerciseName: "Bench", SetIndex: 2, Weight: 100, Reps: 7, SessionID: session.ID},
		{ID: "other", Date: "2026-02-20", ExerciseName: "Bench", SetIndex: 1, Weight: 90, Reps: 8, SessionID: "another"},
	}

	n, err := m.Cancel(&state)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 discarded, got %d", n)
	}
	if state.Phase() != models.PhaseIdle {
		t.Error("expected idle after cancel")
	}
	var ids []string
	for _, e := range state.Sets {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"old", "loose", "other"}) {
		t.Errorf("unexpected remaining sets: %v", ids)
	}
}

func TestFinishKeepsTaggedSets(t *testing.T) {
	m := strictMachine()
	state := models.DefaultState()
	session, _ := m.Start(&state, pushPreset(), "2026-03-01", now)
	state.Sets = []models.SetEntry{{ID: "a", SessionID: session.ID}}

	finished, err := m.Finish(&state)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if finished.ID != session.ID {
		t.Error("Finish returned the wrong session")
	}
	if len(state.Sets) != 1 {
		t.Errorf("finish discarded sets: %v", state.Sets)
	}
}
