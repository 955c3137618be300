package progress

import (
	"testing"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

func entry(date string, index int, weight float64, reps int) models.SetEntry {
	return models.SetEntry{Date: date, ExerciseName: "Bench", SetIndex: index, Weight: weight, Reps: reps}
}

func values(ds Dataset) []interface{} {
	out := make([]interface{}, len(ds.Values))
	for i, v := range ds.Values {
		if v == nil {
			out[i] = nil
		} else {
			out[i] = *v
		}
	}
	return out
}

func equalValues(t *testing.T, ds Dataset, want []interface{}) {
	t.Helper()
	got := values(ds)
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", ds.Label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", ds.Label, got, want)
		}
	}
}

var sample = []models.SetEntry{
	entry("2026-03-03", 1, 100, 8),
	entry("2026-03-01", 1, 100, 6),
	entry("2026-03-01", 2, 90, 10),
	{Date: "2026-03-02", ExerciseName: "Squat", SetIndex: 1, Weight: 140, Reps: 5},
	entry("2026-03-03", 2, 100, 7),
}

func TestBuild_BySet(t *testing.T) {
	chart := Build(sample, "Bench", models.MetricWeight, ModeBySet)

	if len(chart.Labels) != 2 || chart.Labels[0] != "2026-03-01" || chart.Labels[1] != "2026-03-03" {
		t.Fatalf("unexpected labels: %v", chart.Labels)
	}
	if len(chart.Datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(chart.Datasets))
	}
	equalValues(t, chart.Datasets[0], []interface{}{100.0, 100.0})
	equalValues(t, chart.Datasets[1], []interface{}{90.0, 100.0})
}

func TestBuild_MissingSetIsNil(t *testing.T) {
	entries := []models.SetEntry{
		entry("2026-03-01", 1, 100, 8),
		entry("2026-03-01", 2, 100, 8),
		entry("2026-03-02", 1, 100, 8),
	}
	chart := Build(entries, "Bench", models.MetricReps, ModeBySet)
	equalValues(t, chart.Datasets[1], []interface{}{8.0, nil})
}

func TestBuild_Daily(t *testing.T) {
	tests := []struct {
		kind models.MetricKind
		want []interface{}
	}{
		{models.MetricVolume, []interface{}{1500.0, 1500.0}},
		{models.MetricWeight, []interface{}{100.0, 100.0}},
		{models.MetricReps, []interface{}{10.0, 8.0}},
		{models.MetricOneRepMax, []interface{}{120.0, 127.0}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			chart := Build(sample, "Bench", tt.kind, ModeDaily)
			if len(chart.Datasets) != 1 {
				t.Fatalf("expected one dataset, got %d", len(chart.Datasets))
			}
			equalValues(t, chart.Datasets[0], tt.want)
		})
	}
}

func TestBuild_BothAndDuplicates(t *testing.T) {
	entries := []models.SetEntry{
		entry("2026-03-01", 1, 100, 8),
		entry("2026-03-01", 1, 105, 6),
	}
	chart := Build(entries, "Bench", models.MetricWeight, ModeBoth)
	if len(chart.Datasets) != 2 {
		t.Fatalf("expected by-set plus daily, got %d", len(chart.Datasets))
	}
	equalValues(t, chart.Datasets[0], []interface{}{105.0})
	equalValues(t, chart.Datasets[1], []interface{}{105.0})
}

func TestBuild_Empty(t *testing.T) {
	if !Build(sample, "Deadlift", models.MetricWeight, ModeBoth).Empty() {
		t.Error("expected empty chart")
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"by-set": ModeBySet, "daily": ModeDaily, "BOTH": ModeBoth, "": ModeBySet} {
		if got, err := ParseMode(in); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("weekly"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
