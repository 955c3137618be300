// Package tracker is the single writer over the workout state. Every
// mutation runs on a copy of the state, is committed only on success and is
// then saved.
package tracker

import (
	"sort"
	"strings"
	"time"

	"github.com/kimurataturyu-sys/workout-log/internal/backup"
	"github.com/kimurataturyu-sys/workout-log/internal/catalog"
	"github.com/kimurataturyu-sys/workout-log/internal/config"
	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
	"github.com/kimurataturyu-sys/workout-log/internal/progress"
	"github.com/kimurataturyu-sys/workout-log/internal/progression"
	"github.com/kimurataturyu-sys/workout-log/internal/session"
	"github.com/kimurataturyu-sys/workout-log/internal/storage"
	"github.com/kimurataturyu-sys/workout-log/internal/swap"
	"github.com/kimurataturyu-sys/workout-log/internal/validation"
)

type Tracker struct {
	repo    *storage.Repository
	cfg     *config.Config
	state   models.State
	machine *session.Machine
	engine  *progression.Engine
	now     func() time.Time
}

// New loads the state from repo. Load never fails; damaged keys come back empty.
func New(repo *storage.Repository, cfg *config.Config) *Tracker {
	if cfg == nil {
		cfg = config.Default()
	}
	t := &Tracker{
		repo:    repo,
		cfg:     cfg,
		machine: session.NewMachine(cfg.Session.Policy, cfg.Session.RepMin, cfg.Session.RepMax, cfg.Swap.HistoryCap),
		engine: progression.NewEngine(progression.Settings{
			EffortMin:         cfg.Progression.EffortMin,
			EffortMax:         cfg.Progression.EffortMax,
			RegressionRepDrop: cfg.Progression.RegressionRepDrop,
			CeilingMinSets:    cfg.Progression.CeilingMinSets,
		}),
		now: time.Now,
	}
	t.state = repo.Load()
	logger.Debug("Loaded state",
		"presets", len(t.state.Presets),
		"sets", len(t.state.Sets),
		"phase", t.state.Phase(),
	)
	return t
}

// SetClock replaces the time source used for ids, timestamps and "today"
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// Today is the current date in YYYY-MM-DD form
func (t *Tracker) Today() string {
	return t.now().Format(constants.DateFormat)
}

// State returns a copy of the current state
func (t *Tracker) State() models.State {
	return t.state.Clone()
}

func (t *Tracker) Phase() models.Phase {
	return t.state.Phase()
}

// mutate applies fn to a copy of the state. The copy replaces the state and
// is saved only when fn succeeds.
func (t *Tracker) mutate(fn func(s *models.State) error) error {
	next := t.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	t.state = next
	t.repo.Save(t.state)
	return nil
}

func (t *Tracker) catalogOf(s *models.State) *catalog.Catalog {
	return catalog.New(s, t.cfg.Progression.WeightIncrement)
}

// Rule resolves the rep window and increment for an exercise. The rep range
// comes from the active session, then the catalog, then the defaults; the
// increment from the catalog or the default.
func (t *Tracker) Rule(exercise string) progression.Rule {
	rule := progression.Rule{
		RepMin:          t.cfg.Session.RepMin,
		RepMax:          t.cfg.Session.RepMax,
		WeightIncrement: t.cfg.Progression.WeightIncrement,
	}

	def, inCatalog := t.catalogOf(&t.state).FindExercise(exercise)
	if inCatalog {
		rule.RepMin, rule.RepMax = def.RepMin, def.RepMax
		if def.WeightIncrement > 0 {
			rule.WeightIncrement = def.WeightIncrement
		}
	}

	if s := t.state.Session; s != nil {
		if i := s.ExerciseIndex(exercise); i >= 0 {
			rule.RepMin, rule.RepMax = s.Exercises[i].RepMin, s.Exercises[i].RepMax
		}
	}
	return rule
}

// Goal proposes the target for exercise on date
func (t *Tracker) Goal(exercise, date string) (progression.Goal, error) {
	if err := models.ValidateDate(date); err != nil {
		return progression.Goal{}, err
	}
	return t.engine.ProposeGoal(t.state.Sets, exercise, date, t.Rule(exercise)), nil
}

// Candidates ranks replacements for fromName
func (t *Tracker) Candidates(fromName string) []string {
	return swap.Candidates(
		strings.TrimSpace(fromName),
		t.catalogOf(&t.state).ExerciseNames(),
		t.LoggedExerciseNames(),
		t.state.SwapHistory,
	)
}

// LoggedExerciseNames lists every exercise that appears in the log, sorted
func (t *Tracker) LoggedExerciseNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range t.state.Sets {
		if !seen[e.ExerciseName] {
			seen[e.ExerciseName] = true
			names = append(names, e.ExerciseName)
		}
	}
	sort.Strings(names)
	return names
}

// KnownExerciseNames merges the active session, the catalog and the log
func (t *Tracker) KnownExerciseNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(n string) {
		if n != "" && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	if s := t.state.Session; s != nil {
		for _, ex := range s.Exercises {
			add(ex.Name)
		}
	}
	for _, n := range t.catalogOf(&t.state).ExerciseNames() {
		add(n)
	}
	for _, n := range t.LoggedExerciseNames() {
		add(n)
	}
	return names
}

// Series builds chart data for one exercise
func (t *Tracker) Series(exercise string, kind models.MetricKind, mode progress.Mode) progress.Chart {
	return progress.Build(t.state.Sets, exercise, kind, mode)
}

func (t *Tracker) Export() ([]byte, error) {
	return backup.Export(t.state, t.now())
}

// Import replaces the whole state with a snapshot. A rejected snapshot
// leaves the state and the store untouched.
func (t *Tracker) Import(data []byte) error {
	imported, err := backup.Import(data)
	if err != nil {
		logger.Warn("Import rejected", "error", err)
		return err
	}
	return t.mutate(func(s *models.State) error {
		*s = imported
		return nil
	})
}

// Validate reports integrity problems in the current state
func (t *Tracker) Validate() validation.ValidationResult {
	return validation.New(t.cfg.Swap.HistoryCap).ValidateState(t.state)
}
