package game

import (
	"context"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"snakeloop/assets"
	"snakeloop/snake"
	"snakeloop/widget"
)

// loadResult carries the outcome of the background asset load to the game thread
type loadResult struct {
	set assets.Set
	err error
}

// Game adapts the snake controller to ebiten's Update/Draw loop
type Game struct {
	config   Config
	ctrl     *snake.Controller
	renderer *Renderer
	input    *KeyboardInput
	slider   *widget.Slider
	profiler *Profiler
	logger   *log.Logger

	loaded chan loadResult
	cancel context.CancelFunc

	// now is the clock used for ticks
	now func() time.Time
}

// NewGame creates a game and starts loading the board images in the background.
// The controller starts the first round once both images are decoded.
func NewGame(config Config, ctrl *snake.Controller, fsys fs.FS, spec assets.Spec, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}

	top := config.Snake.CanvasHeight
	slider := widget.NewSlider(12, top+42, 320, 20,
		config.Snake.MinFPS, config.Snake.MaxFPS, config.Snake.DefaultFPS)

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		config:   config,
		ctrl:     ctrl,
		renderer: NewRenderer(config),
		input:    NewKeyboardInput(),
		slider:   slider,
		profiler: NewProfiler(config.ProfilesDir, config.ProfileDuration, logger),
		logger:   logger,
		loaded:   make(chan loadResult, 1),
		cancel:   cancel,
		now:      time.Now,
	}

	go func() {
		set, err := assets.Load(ctx, fsys, spec, logger)
		g.loaded <- loadResult{set: set, err: err}
	}()

	return g
}

// Close stops a pending asset load
func (g *Game) Close() {
	g.cancel()
}

// Update advances the game by one frame
func (g *Game) Update() error {
	now := g.now()

	select {
	case res := <-g.loaded:
		if res.err != nil {
			g.logger.Printf("Asset load failed: %v", res.err)
		} else {
			g.renderer.SetImages(res.set)
		}
		g.ctrl.AssetsLoaded(now, res.err)
	default:
	}

	g.input.Update()

	if g.input.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Toggle grid overlay with F1
	if g.input.JustPressed(ebiten.KeyF1) {
		debug := GetDebugState()
		debug.ShowGrid = !debug.ShowGrid
		g.logger.Printf("Grid overlay: %v", debug.ShowGrid)
	}

	// Capture a CPU profile with F2
	if g.input.JustPressed(ebiten.KeyF2) {
		if path, err := g.profiler.Capture("manual"); err != nil {
			g.logger.Printf("Profile capture failed: %v", err)
		} else {
			g.logger.Printf("Capturing CPU profile to %s", path)
		}
	}

	if g.input.JustPressed(ebiten.KeyR, ebiten.KeyEnter) {
		g.ctrl.Restart(now)
	}

	for _, d := range g.input.Arrows() {
		g.ctrl.HandleArrow(d)
	}

	g.updateSpeed(now)

	g.ctrl.Advance(now)
	return nil
}

// updateSpeed feeds the slider from the mouse and the +/- keys. Every change
// restarts the round at the new rate, the same as releasing the slider.
func (g *Game) updateSpeed(now time.Time) {
	changed := false

	cx, cy := ebiten.CursorPosition()
	if g.slider.Update(cx, cy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)) {
		changed = true
	}
	if g.input.JustPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) && g.slider.Step(1) {
		changed = true
	}
	if g.input.JustPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) && g.slider.Step(-1) {
		changed = true
	}

	if changed {
		g.ctrl.SetSpeed(g.slider.Value, now)
	}
}

// Draw renders the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.ctrl.Snapshot(), g.ctrl.Message(), g.slider, g.ctrl.Arena(), GetDebugState().ShowGrid)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth(), g.config.ScreenHeight()
}
