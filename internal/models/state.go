package models

// Phase is the session lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	default:
		return "idle"
	}
}

// State holds every persisted collection
type State struct {
	Presets     []Preset    `json:"presets"`
	Sets        []SetEntry  `json:"sets"`
	Session     *Session    `json:"session"`
	SwapHistory []SwapEntry `json:"swapHistory"`
}

// DefaultState returns empty collections and no active session
func DefaultState() State {
	return State{
		Presets:     []Preset{},
		Sets:        []SetEntry{},
		Session:     nil,
		SwapHistory: []SwapEntry{},
	}
}

// Phase reports whether a session is running
func (s *State) Phase() Phase {
	if s.Session != nil {
		return PhaseActive
	}
	return PhaseIdle
}

// Clone returns a deep copy so callers can mutate without touching s
func (s State) Clone() State {
	c := State{
		Presets:     make([]Preset, len(s.Presets)),
		Sets:        make([]SetEntry, len(s.Sets)),
		Session:     s.Session.clone(),
		SwapHistory: append([]SwapEntry{}, s.SwapHistory...),
	}
	for i, p := range s.Presets {
		c.Presets[i] = p.clone()
	}
	for i, e := range s.Sets {
		if e.EffortRating != nil {
			e.EffortRating = Effort(*e.EffortRating)
		}
		c.Sets[i] = e
	}
	return c
}

// FindPreset returns the index of the preset with the given id, or -1
func (s *State) FindPreset(id string) int {
	for i, p := range s.Presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FindSet returns the index of the set entry with the given id, or -1
func (s *State) FindSet(id string) int {
	for i, e := range s.Sets {
		if e.ID == id {
			return i
		}
	}
	return -1
}
