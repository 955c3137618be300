package validation

import (
	"strings"
	"testing"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

func hasConflict(result ValidationResult, kind ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == kind {
			return true
		}
	}
	return false
}

func cleanState() models.State {
	state := models.DefaultState()
	state.Presets = []models.Preset{{
		ID: "p1", Name: "Push",
		Exercises: []models.ExerciseDefinition{
			{Name: "Bench", RepMin: 6, RepMax: 8},
			{Name: "Dip", RepMin: 8, RepMax: 12},
		},
	}}
	state.Sets = []models.SetEntry{
		{ID: "a", Date: "2026-03-01", ExerciseName: "Bench", SetIndex: 1, Weight: 100, Reps: 8, SessionID: "s"},
		{ID: "b", Date: "2026-03-01", ExerciseName: "Bench", SetIndex: 2, Weight: 100, Reps: 7, SessionID: "s"},
	}
	state.Session = &models.Session{ID: "s", Date: "2026-03-01", PresetID: "p1",
		Exercises: []models.SessionExercise{{Name: "Bench", RepMin: 6, RepMax: 8}}}
	state.SwapHistory = []models.SwapEntry{{From: "Bench", To: "DB Press"}}
	return state
}

func TestValidateState_NoConflicts(t *testing.T) {
	result := New(50).ValidateState(cleanState())
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %v", result.Conflicts)
	}
	if result.Conflicts == nil {
		t.Error("expected empty, non-nil conflict list")
	}
}

func TestValidateState_Conflicts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *models.State)
		want   ConflictType
	}{
		{"duplicate preset id", func(s *models.State) {
			s.Presets = append(s.Presets, models.Preset{ID: "p1", Name: "Copy"})
		}, ConflictDuplicatePresetID},
		{"duplicate exercise", func(s *models.State) {
			s.Presets[0].Exercises = append(s.Presets[0].Exercises, models.ExerciseDefinition{Name: "Bench", RepMin: 1, RepMax: 2})
		}, ConflictDuplicateExerciseName},
		{"inverted rep range", func(s *models.State) {
			s.Presets[0].Exercises[1].RepMin = 15
		}, ConflictInvalidRepRange},
		{"session rep range", func(s *models.State) {
			s.Session.Exercises[0].RepMax = 0
		}, ConflictInvalidRepRange},
		{"duplicate set id", func(s *models.State) {
			s.Sets[1].ID = "a"
		}, ConflictDuplicateSetID},
		{"duplicate set index", func(s *models.State) {
			s.Sets[1].SetIndex = 1
		}, ConflictDuplicateSetIndex},
		{"invalid set", func(s *models.State) {
			s.Sets[0].Weight = -5
		}, ConflictInvalidSet},
		{"dangling session", func(s *models.State) {
			s.Presets = nil
		}, ConflictDanglingSession},
		{"session set on another date", func(s *models.State) {
			s.Sets[0].Date = "2026-02-28"
		}, ConflictOrphanSessionSet},
		{"duplicate swap", func(s *models.State) {
			s.SwapHistory = append(s.SwapHistory, models.SwapEntry{From: "Bench", To: "DB Press"})
		}, ConflictDuplicateSwap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := cleanState()
			tt.mutate(&state)
			result := New(50).ValidateState(state)
			if !hasConflict(result, tt.want) {
				t.Errorf("expected %s, got %v", tt.want, result.Conflicts)
			}
		})
	}
}

func TestValidateSwapHistory_Cap(t *testing.T) {
	history := []models.SwapEntry{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "A", To: "D"}}
	if !hasConflict(New(2).ValidateSwapHistory(history), ConflictSwapHistoryOverCap) {
		t.Error("expected over-cap conflict")
	}
	if New(0).ValidateSwapHistory(history).HasConflicts() {
		t.Error("zero cap should disable the size check")
	}
}

func TestValidationResult_FormatReport(t *testing.T) {
	result := ValidationResult{
		Conflicts: []Conflict{
			{Type: ConflictDuplicateSetIndex, Description: "2026-03-01 Bench #1 logged more than once"},
			{Type: ConflictDanglingSession, Description: "active session s refers to missing preset p1"},
		},
	}

	report := result.FormatReport()
	if !strings.HasPrefix(report, "Found 2 conflict(s):") {
		t.Errorf("unexpected header: %q", report)
	}
	// Groups are sorted by type name
	if strings.Index(report, "dangling session") > strings.Index(report, "duplicate set index") {
		t.Errorf("groups out of order:\n%s", report)
	}
}

func TestValidationResult_FormatReport_NoConflicts(t *testing.T) {
	result := ValidationResult{Conflicts: []Conflict{}}
	if report := result.FormatReport(); report != "No conflicts detected." {
		t.Errorf("Expected 'No conflicts detected.', got: %s", report)
	}
}
