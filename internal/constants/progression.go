package constants

const (
	// Ad-hoc exercises added to a running session get this rep range
	DefaultRepMin = 8
	DefaultRepMax = 12

	// DefaultWeightIncrement is used when an exercise definition has none (kg)
	DefaultWeightIncrement = 2.5

	// Effort rating (reps in reserve) target band, inclusive.
	// A rating of 0 means the set was taken to failure.
	EffortBandMin = 1
	EffortBandMax = 2
	EffortMax     = 10

	// RegressionRepDrop is the same-weight rep drop that triggers a regression verdict
	RegressionRepDrop = 3

	// CeilingMinSets is how many same-day sets must hit repMax before a weight raise is advised
	CeilingMinSets = 3

	// SwapHistoryCap bounds the persisted swap history
	SwapHistoryCap = 50

	// Session start policies
	SessionPolicyStrict  = "strict"
	SessionPolicyReplace = "replace"
)

func init() {
	if DefaultRepMin >= DefaultRepMax {
		panic("DefaultRepMin must be below DefaultRepMax")
	}
	if EffortBandMin > EffortBandMax {
		panic("EffortBandMin must not exceed EffortBandMax")
	}
}
