package snake

import "math/rand"

// Arena is the rectangle of cells the snake may legally occupy.
// Legal cells are [X0, X0+Width) x [Y0, Y0+Height).
type Arena struct {
	Box    int
	X0, Y0 int
	Width  int
	Height int
}

// Walls reports which sides of the arena a segment lies beyond
type Walls struct {
	West, East, North, South bool
}

// Any is true when at least one side is violated
func (w Walls) Any() bool {
	return w.West || w.East || w.North || w.South
}

// Check computes the four boundary violations for a segment
func (a Arena) Check(s Segment) Walls {
	return Walls{
		West:  s.X < a.X0*a.Box,
		East:  s.X >= (a.X0+a.Width)*a.Box,
		North: s.Y < a.Y0*a.Box,
		South: s.Y >= (a.Y0+a.Height)*a.Box,
	}
}

// Contains reports whether the segment is inside the arena
func (a Arena) Contains(s Segment) bool {
	return !a.Check(s).Any()
}

// RandomCell picks a uniformly random cell inside the arena.
// It does not look at the snake body.
func (a Arena) RandomCell(rng *rand.Rand) Segment {
	return Cell(a.X0+rng.Intn(a.Width), a.Y0+rng.Intn(a.Height), a.Box)
}
