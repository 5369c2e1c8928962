package game

import (
	"time"

	"snakeloop/snake"
)

// Config holds game configuration
type Config struct {
	// Snake is the board geometry and timing
	Snake snake.Config

	// PanelHeight is the height of the message and speed panel under the board
	PanelHeight int

	// Title is the window title
	Title string

	// Scale multiplies the window size; the logical screen is unchanged
	Scale float64

	// AssetDir is a directory with ground and food images; empty uses the built-in ones
	AssetDir string

	// GroundFile and FoodFile name the images inside the asset directory;
	// empty picks ground/food with whichever of .svg or .png exists
	GroundFile string
	FoodFile   string

	// ScriptPath points to a JavaScript pilot; empty means keyboard only
	ScriptPath string

	// ProfilesDir receives CPU profiles captured with F2
	ProfilesDir string

	// ProfileDuration is how long each capture runs
	ProfileDuration time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Snake:       snake.DefaultConfig(),
		PanelHeight: 72,
		Title:       "Snake",
		Scale:       1.0,

		ProfilesDir:     "profiles",
		ProfileDuration: 5 * time.Second,
	}
}

// ScreenWidth returns the logical screen width in pixels
func (c Config) ScreenWidth() int {
	return c.Snake.CanvasWidth
}

// ScreenHeight returns the logical screen height: board plus panel
func (c Config) ScreenHeight() int {
	return c.Snake.CanvasHeight + c.PanelHeight
}
