package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	apperrors "github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Repository turns the keyed Provider into a models.State. It guarantees
// shape only: a key that cannot be decoded is reset to its default while the
// other keys are kept.
type Repository struct {
	provider Provider
	report   func(error)
}

// Option configures a Repository
type Option func(*Repository)

// WithReporter receives save failures and repaired keys in addition to the log
func WithReporter(fn func(error)) Option {
	return func(r *Repository) {
		r.report = fn
	}
}

func NewRepository(provider Provider, opts ...Option) *Repository {
	r := &Repository{provider: provider}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Provider returns the underlying keyed store
func (r *Repository) Provider() Provider {
	return r.provider
}

// Load never fails. Missing or corrupt keys come back as defaults.
func (r *Repository) Load() models.State {
	state := models.DefaultState()

	var presets []models.Preset
	if r.decode(constants.KeyPresets, &presets, true) {
		for i := range presets {
			if presets[i].Exercises == nil {
				presets[i].Exercises = []models.ExerciseDefinition{}
			}
		}
		state.Presets = presets
	}

	var sets []models.SetEntry
	if r.decode(constants.KeySets, &sets, true) {
		state.Sets = sets
	}

	var session *models.Session
	if r.decode(constants.KeySession, &session, false) {
		state.Session = session
	}

	var swaps []models.SwapEntry
	if r.decode(constants.KeySwapHistory, &swaps, true) {
		state.SwapHistory = swaps
	}

	return state
}

// decode reads key into dst and reports whether dst should be used.
// requireValue treats a JSON null as corruption (array keys must be arrays).
func (r *Repository) decode(key string, dst interface{}, requireValue bool) bool {
	raw, err := r.provider.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return false
	}
	if err != nil {
		r.repaired(key, err)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		r.repaired(key, err)
		return false
	}

	if requireValue && string(raw) == "null" {
		r.repaired(key, fmt.Errorf("expected an array, got null"))
		return false
	}

	return true
}

func (r *Repository) repaired(key string, err error) {
	corrupt := &apperrors.DataCorruptionError{Key: key, Err: err}
	logger.Warn("Resetting corrupt stored data", "key", key, "error", err)
	if r.report != nil {
		r.report(corrupt)
	}
}

// Save writes every key in one provider call. Failures are logged and
// reported, never returned.
func (r *Repository) Save(state models.State) {
	if err := r.save(state); err != nil {
		logger.Error("Failed to save state", "error", err)
		if r.report != nil {
			r.report(err)
		}
	}
}

func (r *Repository) save(state models.State) error {
	if state.Presets == nil {
		state.Presets = []models.Preset{}
	}
	if state.Sets == nil {
		state.Sets = []models.SetEntry{}
	}
	if state.SwapHistory == nil {
		state.SwapHistory = []models.SwapEntry{}
	}

	values := make(map[string][]byte, len(constants.StateKeys))
	fields := map[string]interface{}{
		constants.KeyPresets:     state.Presets,
		constants.KeySets:        state.Sets,
		constants.KeySession:     state.Session,
		constants.KeySwapHistory: state.SwapHistory,
	}
	for _, key := range constants.StateKeys {
		data, err := json.Marshal(fields[key])
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", key, err)
		}
		values[key] = data
	}

	return r.provider.PutAll(values)
}
