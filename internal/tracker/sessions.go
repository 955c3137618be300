package tracker

import (
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Session returns a copy of the active session, or nil when idle
func (t *Tracker) Session() *models.Session {
	return t.State().Session
}

func (t *Tracker) StartSession(ref, date string) (*models.Session, error) {
	var started *models.Session
	err := t.mutate(func(s *models.State) error {
		p, err := t.catalogOf(s).Resolve(ref)
		if err != nil {
			return err
		}
		started, err = t.machine.Start(s, p, date, t.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Started session", "id", started.ID, "preset", started.PresetID, "date", started.Date)
	return t.Session(), nil
}

func (t *Tracker) AddAdHocExercise(name string) error {
	return t.mutate(func(s *models.State) error {
		return t.machine.AddAdHocExercise(s, name)
	})
}

func (t *Tracker) Substitute(index int, toName string) (models.Substitution, error) {
	var sub models.Substitution
	err := t.mutate(func(s *models.State) error {
		var err error
		sub, err = t.machine.Substitute(s, index, toName, t.catalogOf(s))
		return err
	})
	if err == nil {
		logger.Info("Swapped exercise", "from", sub.From, "to", sub.To)
	}
	return sub, err
}

func (t *Tracker) FinishSession() (*models.Session, error) {
	var finished *models.Session
	err := t.mutate(func(s *models.State) error {
		var err error
		finished, err = t.machine.Finish(s)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Finished session", "id", finished.ID)
	return finished, nil
}

// CancelSession ends the session and returns how many of its sets were discarded
func (t *Tracker) CancelSession() (int, error) {
	var discarded int
	err := t.mutate(func(s *models.State) error {
		var err error
		discarded, err = t.machine.Cancel(s)
		return err
	})
	if err == nil {
		logger.Info("Cancelled session", "discardedSets", discarded)
	}
	return discarded, err
}
