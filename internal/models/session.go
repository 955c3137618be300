package models

// SessionExercise is the snapshot of one exercise inside a running session
type SessionExercise struct {
	Name   string `json:"name"`
	RepMin int    `json:"repMin"`
	RepMax int    `json:"repMax"`
}

// Substitution records an exercise swapped out during a session
type Substitution struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Session is one concrete run of a preset. Its exercises are copied from the
// preset at start time and never follow later preset edits.
type Session struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"`
	PresetID      string            `json:"presetId"`
	WorkoutTag    string            `json:"workoutTag"`
	Exercises     []SessionExercise `json:"exercises"`
	Substitutions []Substitution    `json:"substitutions"`
	StartedAt     string            `json:"startedAt,omitempty"`
}

// ExerciseIndex returns the position of the named exercise, or -1
func (s Session) ExerciseIndex(name string) int {
	for i, ex := range s.Exercises {
		if ex.Name == name {
			return i
		}
	}
	return -1
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.Exercises != nil {
		c.Exercises = append(make([]SessionExercise, 0, len(s.Exercises)), s.Exercises...)
	}
	if s.Substitutions != nil {
		c.Substitutions = append(make([]Substitution, 0, len(s.Substitutions)), s.Substitutions...)
	}
	return &c
}
