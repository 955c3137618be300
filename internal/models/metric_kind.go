package models

import "strings"

// MetricKind selects a derived value of a set
type MetricKind int

const (
	MetricOneRepMax MetricKind = iota
	MetricWeight
	MetricReps
	MetricVolume
)

var metricNames = map[MetricKind]string{
	MetricOneRepMax: "e1rm",
	MetricWeight:    "weight",
	MetricReps:      "reps",
	MetricVolume:    "volume",
}

func (k MetricKind) String() string {
	if name, ok := metricNames[k]; ok {
		return name
	}
	return metricNames[MetricOneRepMax]
}

// ParseMetricKind maps a name to a kind. Unknown names fall back to e1RM.
func ParseMetricKind(s string) MetricKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight":
		return MetricWeight
	case "reps":
		return MetricReps
	case "volume":
		return MetricVolume
	default:
		return MetricOneRepMax
	}
}
