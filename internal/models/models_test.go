package models

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/kimurataturyu-sys/workout-log/internal/errors"
)

func TestNewExerciseDefinition(t *testing.T) {
	tests := []struct {
		name    string
		exName  string
		repMin  int
		repMax  int
		inc     float64
		wantErr bool
	}{
		{"valid", "Bench Press", 6, 8, 2.5, false},
		{"trims name", "  Squat  ", 5, 8, 5, false},
		{"zero increment allowed", "Curl", 8, 12, 0, false},
		{"empty name", "   ", 6, 8, 2.5, true},
		{"equal range", "Row", 8, 8, 2.5, true},
		{"inverted range", "Row", 10, 8, 2.5, true},
		{"non-positive min", "Row", 0, 8, 2.5, true},
		{"negative increment", "Row", 6, 8, -1, true},
		{"NaN increment", "Row", 6, 8, math.NaN(), true},
		{"infinite increment", "Row", 6, 8, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := NewExerciseDefinition(tt.exName, tt.repMin, tt.repMax, tt.inc)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if def.Name == "" || def.Name[0] == ' ' {
				t.Errorf("name not trimmed: %q", def.Name)
			}
		})
	}
}

func TestNewSetEntry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	valid := SetInput{Date: "2026-03-01", ExerciseName: "Bench", SetIndex: 1, Weight: 100, Reps: 8}

	entry, err := NewSetEntry(valid, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected id to be assigned")
	}
	if entry.LoggedAt != "2026-03-01T10:00:00Z" {
		t.Errorf("unexpected loggedAt: %s", entry.LoggedAt)
	}

	bad := []struct {
		name   string
		mutate func(in *SetInput)
	}{
		{"bad date", func(in *SetInput) { in.Date = "03/01/2026" }},
		{"empty exercise", func(in *SetInput) { in.ExerciseName = "" }},
		{"zero set index", func(in *SetInput) { in.SetIndex = 0 }},
		{"negative weight", func(in *SetInput) { in.Weight = -1 }},
		{"NaN weight", func(in *SetInput) { in.Weight = math.NaN() }},
		{"infinite weight", func(in *SetInput) { in.Weight = math.Inf(1) }},
		{"negative reps", func(in *SetInput) { in.Reps = -2 }},
		{"effort too high", func(in *SetInput) { in.EffortRating = Effort(11) }},
		{"negative effort", func(in *SetInput) { in.EffortRating = Effort(-1) }},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if _, err := NewSetEntry(in, now); !errors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	state := DefaultState()
	state.Presets = append(state.Presets, Preset{ID: "p1", Name: "Push", Exercises: []ExerciseDefinition{{Name: "Bench", RepMin: 6, RepMax: 8}}})
	state.Sets = append(state.Sets, SetEntry{ID: "s1", EffortRating: Effort(2)})
	state.Session = &Session{ID: "x", Exercises: []SessionExercise{{Name: "Bench"}}}

	clone := state.Clone()
	clone.Presets[0].Exercises[0].Name = "Changed"
	*clone.Sets[0].EffortRating = 0
	clone.Session.Exercises[0].Name = "Changed"

	if state.Presets[0].Exercises[0].Name != "Bench" {
		t.Error("preset exercises shared with clone")
	}
	if *state.Sets[0].EffortRating != 2 {
		t.Error("effort rating shared with clone")
	}
	if state.Session.Exercises[0].Name != "Bench" {
		t.Error("session exercises shared with clone")
	}
}

func TestStateCloneKeepsEmptySlices(t *testing.T) {
	state := DefaultState()
	state.Presets = append(state.Presets, Preset{ID: "p1", Exercises: []ExerciseDefinition{}}, Preset{ID: "p2"})
	state.Session = &Session{ID: "x", Exercises: []SessionExercise{}, Substitutions: []Substitution{}}

	clone := state.Clone()
	if clone.Presets[0].Exercises == nil {
		t.Error("empty preset exercises became nil")
	}
	if clone.Presets[1].Exercises != nil {
		t.Error("nil preset exercises became non-nil")
	}
	if clone.Session.Exercises == nil || clone.Session.Substitutions == nil {
		t.Error("empty session slices became nil")
	}
	if !reflect.DeepEqual(state, clone) {
		t.Errorf("clone differs from original:\n%+v\n%+v", state, clone)
	}
}

func TestPhase(t *testing.T) {
	state := DefaultState()
	if state.Phase() != PhaseIdle {
		t.Errorf("expected idle, got %s", state.Phase())
	}
	state.Session = &Session{ID: "s"}
	if state.Phase() != PhaseActive {
		t.Errorf("expected active, got %s", state.Phase())
	}
}

func TestParseMetricKind(t *testing.T) {
	tests := map[string]MetricKind{
		"e1rm":    MetricOneRepMax,
		"weight":  MetricWeight,
		"REPS":    MetricReps,
		"volume":  MetricVolume,
		"unknown": MetricOneRepMax,
		"":        MetricOneRepMax,
	}
	for in, want := range tests {
		if got := ParseMetricKind(in); got != want {
			t.Errorf("ParseMetricKind(%q) = %s, want %s", in, got, want)
		}
	}
}
