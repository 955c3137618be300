package progression

import (
	"fmt"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

type VerdictKind int

const (
	VerdictOverreaching VerdictKind = iota
	VerdictEffortOffTarget
	VerdictRegression
	VerdictCeilingMet
	VerdictOnTrack
	VerdictMaintain
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictOverreaching:
		return "overreaching"
	case VerdictEffortOffTarget:
		return "effort-off-target"
	case VerdictRegression:
		return "regression"
	case VerdictCeilingMet:
		return "ceiling-met"
	case VerdictOnTrack:
		return "on-track"
	default:
		return "maintain"
	}
}

// Warning reports whether the verdict asks the lifter to back off
func (k VerdictKind) Warning() bool {
	return k == VerdictOverreaching || k == VerdictEffortOffTarget || k == VerdictRegression
}

type Verdict struct {
	Kind    VerdictKind
	Message string
}

// Evaluate judges a just-logged entry against the other sets of the same
// exercise on the same day. Effort checks run before rep checks.
func (e *Engine) Evaluate(entry models.SetEntry, history []models.SetEntry, rule Rule) Verdict {
	s := e.settings

	if entry.EffortRating != nil {
		effort := *entry.EffortRating
		if effort <= 0 {
			return Verdict{VerdictOverreaching, "overreaching: repeat or reduce next time"}
		}
		if effort < s.EffortMin || effort > s.EffortMax {
			return Verdict{VerdictEffortOffTarget, "effort rating outside target band: adjust load"}
		}
	}

	day, pos := sameDaySets(entry, history)

	if prev, ok := precedingAtWeight(day, pos); ok && prev.Reps-entry.Reps >= s.RegressionRepDrop {
		return Verdict{VerdictRegression, fmt.Sprintf("regression of %d+ reps: reduce load now, no need to grind it out", s.RegressionRepDrop)}
	}

	if len(day) >= s.CeilingMinSets && allAtCeiling(day, rule.RepMax) {
		return Verdict{VerdictCeilingMet, "ceiling met on every set: raise weight next session"}
	}

	if entry.Reps < rule.RepMax {
		return Verdict{VerdictOnTrack, "on track: keep pushing reps at this weight"}
	}
	return Verdict{VerdictMaintain, "weight is appropriate: maintain"}
}

// precedingAtWeight finds the closest earlier set at the weight of day[pos]
func precedingAtWeight(day []models.SetEntry, pos int) (models.SetEntry, bool) {
	for i := pos - 1; i >= 0; i-- {
		if day[i].Weight == day[pos].Weight {
			return day[i], true
		}
	}
	return models.SetEntry{}, false
}

func allAtCeiling(day []models.SetEntry, repMax int) bool {
	weight := day[0].Weight
	for _, en := range day {
		if en.Weight != weight || en.Reps < repMax {
			return false
		}
	}
	return true
}
