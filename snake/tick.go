package snake

// TickResult describes what one tick did to the state
type TickResult struct {
	// Ate is set when the head was on the food; TailDropped otherwise
	Ate         bool
	TailDropped bool

	// Walls is evaluated against the head before the move
	Walls Walls

	Head  Segment
	Death Death
}

// Step advances the state by one tick.
//
// Boundary policy: walls are checked against the current head before the
// step is applied, so a snake is allowed to sit one cell outside the arena
// for a single tick. A wall death still completes the move so the body is
// never empty; it takes precedence over a self collision on the same tick.
func Step(a Arena, s *State, spawn func() Segment) TickResult {
	var res TickResult
	head := s.Head()

	if head == s.Food {
		s.Score++
		s.Food = spawn()
		res.Ate = true
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
		res.TailDropped = true
	}

	res.Walls = a.Check(head)

	next := s.Dir.Step(head, a.Box)
	s.Snake = append([]Segment{next}, s.Snake...)
	s.moved = s.Dir
	res.Head = next
	s.Ticks++

	switch {
	case res.Walls.Any():
		res.Death = HitWall
	case Collides(next, s.Snake[1:]):
		res.Death = AteSelf
	}
	return res
}

// Collides reports whether head equals any of the given segments
func Collides(head Segment, body []Segment) bool {
	for _, seg := range body {
		if seg == head {
			return true
		}
	}
	return false
}
