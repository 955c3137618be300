package backup

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Snapshot is the export file format
type Snapshot struct {
	Version     string             `json:"version"`
	ExportedAt  string             `json:"exportedAt"`
	Presets     []models.Preset    `json:"presets"`
	Sets        []models.SetEntry  `json:"sets"`
	Session     *models.Session    `json:"session"`
	SwapHistory []models.SwapEntry `json:"swapHistory"`
}

// Export serializes the whole state as an indented snapshot
func Export(state models.State, now time.Time) ([]byte, error) {
	state = state.Clone()
	snap := Snapshot{
		Version:     constants.ExportVersion,
		ExportedAt:  now.UTC().Format(time.RFC3339),
		Presets:     state.Presets,
		Sets:        state.Sets,
		Session:     state.Session,
		SwapHistory: state.SwapHistory,
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Import parses a snapshot. Anything other than a well-formed snapshot with
// the current version tag is rejected as a whole.
func Import(data []byte) (models.State, error) {
	var header struct {
		Version *string `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return models.State{}, &errors.ImportFormatError{Reason: "file is not valid JSON", Err: err}
	}
	if header.Version == nil || *header.Version == "" {
		return models.State{}, &errors.ImportFormatError{Reason: "missing version tag"}
	}
	if *header.Version != constants.ExportVersion {
		return models.State{}, &errors.ImportFormatError{Reason: "unsupported version " + *header.Version}
	}

	var snap Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return models.State{}, &errors.ImportFormatError{Reason: "malformed snapshot", Err: err}
	}
	if snap.Presets == nil || snap.Sets == nil || snap.SwapHistory == nil {
		return models.State{}, &errors.ImportFormatError{Reason: "collections must be arrays, not null"}
	}

	for i := range snap.Presets {
		if snap.Presets[i].ID == "" {
			return models.State{}, &errors.ImportFormatError{Reason: "preset without id"}
		}
		if snap.Presets[i].Exercises == nil {
			snap.Presets[i].Exercises = []models.ExerciseDefinition{}
		}
	}
	for _, e := range snap.Sets {
		if e.ID == "" {
			return models.State{}, &errors.ImportFormatError{Reason: "set without id"}
		}
		if err := e.Validate(); err != nil {
			return models.State{}, &errors.ImportFormatError{Reason: "invalid set " + e.ID, Err: err}
		}
	}

	return models.State{
		Presets:     snap.Presets,
		Sets:        snap.Sets,
		Session:     snap.Session,
		SwapHistory: snap.SwapHistory,
	}, nil
}
