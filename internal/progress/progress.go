// Package progress turns set entries into chart series. It produces data
// only; drawing is left to whatever consumes a Chart.
package progress

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/metric"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Mode selects which datasets Build produces
type Mode int

const (
	ModeBySet Mode = iota
	ModeDaily
	ModeBoth
)

// ParseMode accepts "by-set", "daily" or "both"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "by-set", "set":
		return ModeBySet, nil
	case "daily", "day":
		return ModeDaily, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeBySet, fmt.Errorf("unknown chart mode %q (expected by-set, daily or both)", s)
	}
}

// Dataset is one line of a chart. A nil value marks a date with no data.
type Dataset struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}

type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Empty reports whether there is nothing to plot
func (c Chart) Empty() bool {
	return len(c.Labels) == 0
}

// Build collects exercise's entries by date and set number. When the same
// (date, set) pair was logged twice the later entry wins.
func Build(entries []models.SetEntry, exercise string, kind models.MetricKind, mode Mode) Chart {
	byDay := make(map[string]map[int]models.SetEntry)
	setNumbers := make(map[int]bool)
	for _, e := range entries {
		if e.ExerciseName != exercise {
			continue
		}
		if byDay[e.Date] == nil {
			byDay[e.Date] = make(map[int]models.SetEntry)
		}
		byDay[e.Date][e.SetIndex] = e
		setNumbers[e.SetIndex] = true
	}

	labels := make([]string, 0, len(byDay))
	for d := range byDay {
		labels = append(labels, d)
	}
	sort.Strings(labels)

	chart := Chart{Labels: labels}
	if mode == ModeBySet || mode == ModeBoth {
		chart.Datasets = append(chart.Datasets, bySet(labels, byDay, setNumbers, kind)...)
	}
	if mode == ModeDaily || mode == ModeBoth {
		chart.Datasets = append(chart.Datasets, daily(labels, byDay, kind))
	}
	return chart
}

func bySet(labels []string, byDay map[string]map[int]models.SetEntry, setNumbers map[int]bool, kind models.MetricKind) []Dataset {
	numbers := make([]int, 0, len(setNumbers))
	for n := range setNumbers {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	datasets := make([]Dataset, 0, len(numbers))
	for _, n := range numbers {
		ds := Dataset{Label: fmt.Sprintf("Set %d %s", n, kind), Values: make([]*float64, len(labels))}
		for i, d := range labels {
			if e, ok := byDay[d][n]; ok {
				v := metric.Value(e, kind)
				ds.Values[i] = &v
			}
		}
		datasets = append(datasets, ds)
	}
	return datasets
}

// daily sums volume per day and takes the best set for every other metric
func daily(labels []string, byDay map[string]map[int]models.SetEntry, kind models.MetricKind) Dataset {
	label := fmt.Sprintf("Daily max %s", kind)
	if kind == models.MetricVolume {
		label = "Daily total volume"
	}
	ds := Dataset{Label: label, Values: make([]*float64, len(labels))}
	for i, d := range labels {
		var agg float64
		first := true
		for _, e := range byDay[d] {
			v := metric.Value(e, kind)
			switch {
			case kind == models.MetricVolume:
				agg += v
			case first || v > agg:
				agg = v
			}
			first = false
		}
		ds.Values[i] = &agg
	}
	return ds
}
