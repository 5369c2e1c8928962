package snake

import "fmt"

// Segment is one grid coordinate in pixel units, always a multiple of the cell size
type Segment struct {
	X, Y int
}

// Cell builds a segment from cell coordinates
func Cell(cx, cy, box int) Segment {
	return Segment{X: cx * box, Y: cy * box}
}

// CellCoords returns the segment position in cell units
func (s Segment) CellCoords(box int) (int, int) {
	return s.X / box, s.Y / box
}

func (s Segment) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// Direction is the current heading of the snake
type Direction int

const (
	None Direction = iota
	Left
	Up
	Right
	Down
)

var directionNames = map[Direction]string{
	None:  "none",
	Left:  "left",
	Up:    "up",
	Right: "right",
	Down:  "down",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a lowercase name back to a Direction.
// The empty string maps to None.
func ParseDirection(name string) (Direction, bool) {
	if name == "" {
		return None, true
	}
	for d, n := range directionNames {
		if n == name {
			return d, true
		}
	}
	return None, false
}

// Opposite returns the reverse heading. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return None
}

// Step moves a segment one cell in the direction
func (d Direction) Step(s Segment, box int) Segment {
	switch d {
	case Left:
		s.X -= box
	case Right:
		s.X += box
	case Up:
		s.Y -= box
	case Down:
		s.Y += box
	}
	return s
}
