package snake

// Status is the lifecycle stage of the game loop
type Status int

const (
	NotStarted Status = iota
	Running
	Stopped
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Death names the terminal condition that ended a session
type Death int

const (
	Alive Death = iota
	HitWall
	AteSelf
)

// State is the mutable game state of one session
type State struct {
	// Snake is ordered head first
	Snake []Segment

	Dir   Direction
	Score int
	Food  Segment

	// Ticks counts completed ticks
	Ticks int

	// moved is the direction applied by the last tick
	moved Direction
}

// NewState creates a one-segment snake at start with no direction chosen
func NewState(start, food Segment) *State {
	return &State{
		Snake: []Segment{start},
		Dir:   None,
		Food:  food,
	}
}

// Head returns the first segment
func (s *State) Head() Segment {
	return s.Snake[0]
}

// Turn applies a direction request, rejecting a reversal of either the
// pending direction or the direction the last tick moved in.
// It returns true when the direction changed.
func (s *State) Turn(d Direction) bool {
	if d == None || d == s.Dir {
		return false
	}
	if s.Dir != None && d == s.Dir.Opposite() {
		return false
	}
	if s.moved != None && d == s.moved.Opposite() {
		return false
	}
	s.Dir = d
	return true
}

// Snapshot is a read-only copy of the state used for rendering
type Snapshot struct {
	Status Status
	Snake  []Segment
	Dir    Direction
	Score  int
	Food   Segment
	Ticks  int
}

// Snapshot copies the state so callers cannot alias the body slice
func (s *State) Snapshot(status Status) Snapshot {
	body := make([]Segment, len(s.Snake))
	copy(body, s.Snake)
	return Snapshot{
		Status: status,
		Snake:  body,
		Dir:    s.Dir,
		Score:  s.Score,
		Food:   s.Food,
		Ticks:  s.Ticks,
	}
}
