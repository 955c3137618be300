// Package metric derives numbers from a logged set. Everything here is pure.
package metric

import (
	"math"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// EstimatedOneRepMax uses the Epley formula, rounded to the nearest unit.
// With no reps the weight itself is returned.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if reps <= 0 {
		return weight
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// Volume is weight times reps
func Volume(weight float64, reps int) float64 {
	return weight * float64(reps)
}

// Value returns the metric of the given kind for entry
func Value(entry models.SetEntry, kind models.MetricKind) float64 {
	switch kind {
	case models.MetricWeight:
		return entry.Weight
	case models.MetricReps:
		return float64(entry.Reps)
	case models.MetricVolume:
		return Volume(entry.Weight, entry.Reps)
	case models.MetricOneRepMax:
		return EstimatedOneRepMax(entry.Weight, entry.Reps)
	default:
		return EstimatedOneRepMax(entry.Weight, entry.Reps)
	}
}
