package metric

import (
	"testing"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

func TestEstimatedOneRepMax(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{100, 0, 100},
		{100, 10, 133},
		{100, 1, 103},
		{60, 8, 76},
		{0, 10, 0},
		{82.5, -3, 82.5},
	}
	for _, tt := range tests {
		if got := EstimatedOneRepMax(tt.weight, tt.reps); got != tt.want {
			t.Errorf("EstimatedOneRepMax(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
		}
	}
}

func TestVolume(t *testing.T) {
	if got := Volume(102.5, 6); got != 615 {
		t.Errorf("Volume = %v, want 615", got)
	}
	if got := Volume(100, 0); got != 0 {
		t.Errorf("Volume with zero reps = %v, want 0", got)
	}
}

func TestValue(t *testing.T) {
	entry := models.SetEntry{Weight: 100, Reps: 10}
	tests := []struct {
		kind models.MetricKind
		want float64
	}{
		{models.MetricOneRepMax, 133},
		{models.MetricWeight, 100},
		{models.MetricReps, 10},
		{models.MetricVolume, 1000},
		{models.MetricKind(42), 133},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := Value(entry, tt.kind); got != tt.want {
				t.Errorf("Value(%s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}
