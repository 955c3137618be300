package storage

import (
	"encoding/json"
	"testing"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	apperrors "github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

func sampleState() models.State {
	state := models.DefaultState()
	state.Presets = []models.Preset{{
		ID:         "p1",
		Name:       "Push",
		WorkoutTag: "PUSH",
		Exercises:  []models.ExerciseDefinition{{Name: "Bench", RepMin: 6, RepMax: 8, WeightIncrement: 2.5}},
	}}
	state.Sets = []models.SetEntry{
		{ID: "s1", Date: "2026-01-01", ExerciseName: "Bench", SetIndex: 1, Weight: 100, Reps: 8, EffortRating: models.Effort(2)},
		{ID: "s2", Date: "2026-01-01", ExerciseName: "Bench", SetIndex: 2, Weight: 100, Reps: 7},
	}
	state.Session = &models.Session{ID: "sess", Date: "2026-01-02", PresetID: "p1", Exercises: []models.SessionExercise{{Name: "Bench", RepMin: 6, RepMax: 8}}}
	state.SwapHistory = []models.SwapEntry{{From: "Bench", To: "Dumbbell Press"}}
	return state
}

func TestRepository_LoadEmptyReturnsDefaults(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	state := repo.Load()
	if state.Presets == nil || state.Sets == nil || state.SwapHistory == nil {
		t.Fatal("expected initialized empty collections")
	}
	if len(state.Presets) != 0 || len(state.Sets) != 0 || state.Session != nil {
		t.Errorf("expected empty default state, got %+v", state)
	}
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	repo := NewRepository(store)

	repo.Save(sampleState())
	for _, key := range constants.StateKeys {
		if _, ok := store.Values[key]; !ok {
			t.Errorf("key %s not written", key)
		}
	}

	state := repo.Load()
	if len(state.Presets) != 1 || state.Presets[0].Exercises[0].Name != "Bench" {
		t.Errorf("presets not restored: %+v", state.Presets)
	}
	if len(state.Sets) != 2 || *state.Sets[0].EffortRating != 2 || state.Sets[1].EffortRating != nil {
		t.Errorf("sets not restored: %+v", state.Sets)
	}
	if state.Session == nil || state.Session.ID != "sess" {
		t.Errorf("session not restored: %+v", state.Session)
	}
	if len(state.SwapHistory) != 1 {
		t.Errorf("swap history not restored: %+v", state.SwapHistory)
	}
}

func TestRepository_CorruptKeyIsRepairedIndependently(t *testing.T) {
	store := NewMemoryStore()
	var reported []error
	repo := NewRepository(store, WithReporter(func(err error) { reported = append(reported, err) }))
	repo.Save(sampleState())

	store.Values[constants.KeyPresets] = []byte("{not json")

	state := repo.Load()
	if len(state.Presets) != 0 {
		t.Errorf("expected presets reset to empty, got %d", len(state.Presets))
	}
	if len(state.Sets) != 2 || state.Sets[0].ID != "s1" || state.Sets[1].ID != "s2" {
		t.Errorf("expected sets preserved, got %+v", state.Sets)
	}
	if state.Session == nil {
		t.Error("expected session preserved")
	}
	if len(reported) != 1 {
		t.Fatalf("expected one repair report, got %d", len(reported))
	}
	corrupt, ok := reported[0].(*apperrors.DataCorruptionError)
	if !ok || corrupt.Key != constants.KeyPresets {
		t.Errorf("expected DataCorruptionError for presets, got %v", reported[0])
	}
}

func TestRepository_ShapeRepairs(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s models.State)
	}{
		{"null sets", constants.KeySets, "null", func(t *testing.T, s models.State) {
			if s.Sets == nil || len(s.Sets) != 0 {
				t.Errorf("expected empty sets, got %v", s.Sets)
			}
		}},
		{"object instead of array", constants.KeySwapHistory, `{"from":"a"}`, func(t *testing.T, s models.State) {
			if len(s.SwapHistory) != 0 {
				t.Errorf("expected empty swap history, got %v", s.SwapHistory)
			}
		}},
		{"corrupt session", constants.KeySession, `{"id": 5`, func(t *testing.T, s models.State) {
			if s.Session != nil {
				t.Errorf("expected no session, got %+v", s.Session)
			}
		}},
		{"null exercises inside preset", constants.KeyPresets, `[{"id":"p","name":"x","exercises":null}]`, func(t *testing.T, s models.State) {
			if len(s.Presets) != 1 || s.Presets[0].Exercises == nil {
				t.Errorf("expected preset with empty exercises, got %+v", s.Presets)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			repo := NewRepository(store)
			repo.Save(sampleState())
			store.Values[tt.key] = []byte(tt.value)
			tt.check(t, repo.Load())
		})
	}
}

func TestRepository_NullSessionIsIdle(t *testing.T) {
	store := NewMemoryStore()
	var reported []error
	repo := NewRepository(store, WithReporter(func(err error) { reported = append(reported, err) }))

	state := sampleState()
	state.Session = nil
	repo.Save(state)

	if string(store.Values[constants.KeySession]) != "null" {
		t.Errorf("expected null session, got %s", store.Values[constants.KeySession])
	}
	if loaded := repo.Load(); loaded.Session != nil {
		t.Error("expected idle session after reload")
	}
	if len(reported) != 0 {
		t.Errorf("null session should not be reported as corruption: %v", reported)
	}
}

func TestRepository_SaveFailureIsSwallowed(t *testing.T) {
	store := NewMemoryStore()
	store.FailWrites = true
	var reported []error
	repo := NewRepository(store, WithReporter(func(err error) { reported = append(reported, err) }))

	repo.Save(sampleState())

	if len(reported) != 1 {
		t.Errorf("expected save failure to be reported once, got %d", len(reported))
	}
	if len(store.Values) != 0 {
		t.Error("expected nothing written")
	}
}

func TestRepository_SavesEmptyArraysNotNull(t *testing.T) {
	store := NewMemoryStore()
	repo := NewRepository(store)
	repo.Save(models.State{})

	var sets []models.SetEntry
	if err := json.Unmarshal(store.Values[constants.KeySets], &sets); err != nil || sets == nil {
		t.Errorf("expected empty array for sets, got %s", store.Values[constants.KeySets])
	}
}
