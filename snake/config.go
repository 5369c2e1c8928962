package snake

import "time"

// Config holds the arena geometry and timing parameters of the snake game
type Config struct {
	// Box is the size of each grid cell in pixels
	Box int

	// CanvasWidth is the width of the drawing surface in pixels
	CanvasWidth int

	// CanvasHeight is the height of the drawing surface in pixels
	CanvasHeight int

	// ArenaX0Boxes is the first legal column, in cells
	ArenaX0Boxes int

	// ArenaY0Boxes is the first legal row, in cells
	ArenaY0Boxes int

	// ArenaWidthBoxes is the number of legal columns
	ArenaWidthBoxes int

	// ArenaHeightBoxes is the number of legal rows
	ArenaHeightBoxes int

	// StartXBoxes and StartYBoxes place the initial head, in cells
	StartXBoxes int
	StartYBoxes int

	// DefaultFPS is the tick rate used until the speed slider moves
	DefaultFPS int

	// MinFPS and MaxFPS bound the speed slider
	MinFPS int
	MaxFPS int

	// ReattachInput re-registers the direction listener on every start.
	// When false, a restart through the speed slider leaves keys ignored.
	ReattachInput bool
}

// DefaultConfig returns the classic 608x608 board with a 17x15 arena
func DefaultConfig() Config {
	return Config{
		Box:              32,
		CanvasWidth:      608,
		CanvasHeight:     608,
		ArenaX0Boxes:     1,
		ArenaY0Boxes:     3,
		ArenaWidthBoxes:  17,
		ArenaHeightBoxes: 15,
		StartXBoxes:      9,
		StartYBoxes:      10,
		DefaultFPS:       10,
		MinFPS:           1,
		MaxFPS:           30,
		ReattachInput:    true,
	}
}

// Arena returns the legal movement rectangle described by the config
func (c Config) Arena() Arena {
	return Arena{
		Box:    c.Box,
		X0:     c.ArenaX0Boxes,
		Y0:     c.ArenaY0Boxes,
		Width:  c.ArenaWidthBoxes,
		Height: c.ArenaHeightBoxes,
	}
}

// Start returns the initial head segment
func (c Config) Start() Segment {
	return Cell(c.StartXBoxes, c.StartYBoxes, c.Box)
}

// ClampFPS limits a requested frame rate to the slider range
func (c Config) ClampFPS(fps int) int {
	return max(c.MinFPS, min(fps, c.MaxFPS))
}

// Interval converts a frame rate into the timer period
func (c Config) Interval(fps int) time.Duration {
	return time.Second / time.Duration(c.ClampFPS(fps))
}
