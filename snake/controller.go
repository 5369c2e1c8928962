package snake

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Message is the user-visible status line and its color
type Message struct {
	Text  string
	Color color.NRGBA
}

var (
	colorInfo   = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	colorActive = color.NRGBA{R: 120, G: 220, B: 120, A: 255}
	colorDanger = color.NRGBA{R: 235, G: 70, B: 60, A: 255}
)

const (
	msgLoading    = "Loading images..."
	msgReady      = "Press an arrow key to start moving"
	msgMoving     = "Go! Eat the food and stay inside the field"
	msgHitWall    = "Game over: the snake hit the wall"
	msgAteSelf    = "Game over: the snake ate itself"
	msgLoadFailed = "Could not load the game images"
)

// Pilot supplies a direction request before every tick.
// Returning None leaves the direction unchanged.
type Pilot interface {
	Steer(snap Snapshot, arena Arena) (Direction, error)
}

// Controller owns a game session: state, timer and input listener.
// It is not safe for concurrent use; the frame loop is its only caller.
type Controller struct {
	cfg    Config
	arena  Arena
	rng    *rand.Rand
	logger *log.Logger
	pilot  Pilot

	state  *State
	status Status
	timer  Timer
	fps    int

	ready      bool
	listening  bool
	everListen bool
	steered    bool

	session string
	message Message
}

// NewController creates a controller waiting for its assets
func NewController(cfg Config, rng *rand.Rand, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		cfg:     cfg,
		arena:   cfg.Arena(),
		rng:     rng,
		logger:  logger,
		status:  NotStarted,
		fps:     cfg.ClampFPS(cfg.DefaultFPS),
		message: Message{Text: msgLoading, Color: colorInfo},
	}
}

// SetPilot installs a non-keyboard direction source
func (c *Controller) SetPilot(p Pilot) {
	c.pilot = p
}

// Arena returns the legal movement rectangle
func (c *Controller) Arena() Arena {
	return c.arena
}

// AssetsLoaded is the single join point of the asset loader.
// A failure leaves the game unstarted with an error message.
func (c *Controller) AssetsLoaded(now time.Time, err error) {
	if err != nil {
		c.ready = false
		c.message = Message{Text: fmt.Sprintf("%s: %v", msgLoadFailed, err), Color: colorDanger}
		c.logger.Printf("asset loading failed: %v", err)
		return
	}
	c.ready = true
	c.logger.Printf("assets ready")
	c.TryStart(now)
}

// TryStart begins a new session when assets are ready and no session runs
func (c *Controller) TryStart(now time.Time) bool {
	if !c.ready || c.status == Running {
		return false
	}

	c.state = NewState(c.cfg.Start(), c.arena.RandomCell(c.rng))
	c.status = Running
	c.steered = false
	c.session = uuid.NewString()
	c.timer.Start(now, c.cfg.Interval(c.fps))

	if !c.everListen || c.cfg.ReattachInput {
		c.listening = true
		c.everListen = true
	}

	c.message = Message{Text: msgReady, Color: colorInfo}
	c.logger.Printf("session %s started at %d fps (listening=%t)", c.session, c.fps, c.listening)
	return true
}

// teardown cancels the timer and removes the listener without touching the message
func (c *Controller) teardown() {
	c.timer.Clear()
	c.listening = false
	if c.status == Running {
		c.status = Stopped
	}
}

func (c *Controller) stop(death Death) {
	c.teardown()
	switch death {
	case HitWall:
		c.message = Message{Text: msgHitWall, Color: colorDanger}
	case AteSelf:
		c.message = Message{Text: msgAteSelf, Color: colorDanger}
	}
	c.logger.Printf("session %s stopped after %d ticks: %s (score %d)",
		c.session, c.state.Ticks, c.message.Text, c.state.Score)
}

// SetSpeed applies a new slider value: the running session is torn down
// and a new one is attempted immediately.
func (c *Controller) SetSpeed(fps int, now time.Time) {
	c.fps = c.cfg.ClampFPS(fps)
	c.teardown()
	c.TryStart(now)
}

// Restart starts a new session after a stop at the current speed
func (c *Controller) Restart(now time.Time) bool {
	if c.status != Stopped {
		return false
	}
	return c.TryStart(now)
}

// HandleArrow processes one arrow key. It is ignored when the listener is
// detached or when it would reverse the snake.
func (c *Controller) HandleArrow(d Direction) bool {
	if !c.listening || c.status != Running {
		return false
	}
	if !c.state.Turn(d) {
		return false
	}
	if !c.steered {
		c.steered = true
		c.message = Message{Text: msgMoving, Color: colorActive}
	}
	return true
}

// Advance runs every tick that is due at now and returns how many ran
func (c *Controller) Advance(now time.Time) int {
	ran := 0
	for due := c.timer.Due(now); due > 0 && c.status == Running; due-- {
		c.tick()
		ran++
	}
	return ran
}

func (c *Controller) tick() {
	if c.pilot != nil {
		d, err := c.pilot.Steer(c.state.Snapshot(c.status), c.arena)
		if err != nil {
			c.logger.Printf("session %s pilot: %v", c.session, err)
		} else if d != None {
			c.HandleArrow(d)
		}
	}

	res := Step(c.arena, c.state, func() Segment { return c.arena.RandomCell(c.rng) })
	if res.Ate {
		c.logger.Printf("session %s score %d, food moved to %s", c.session, c.state.Score, c.state.Food)
	}
	if res.Death != Alive {
		c.stop(res.Death)
	}
}

// Snapshot returns a copy of the latest state for rendering.
// Before the first session it holds only the status.
func (c *Controller) Snapshot() Snapshot {
	if c.state == nil {
		return Snapshot{Status: c.status}
	}
	return c.state.Snapshot(c.status)
}

// Status returns the lifecycle stage
func (c *Controller) Status() Status {
	return c.status
}

// Message returns the current status line
func (c *Controller) Message() Message {
	return c.message
}

// FPS returns the current tick rate
func (c *Controller) FPS() int {
	return c.fps
}

// Listening reports whether arrow keys are currently accepted
func (c *Controller) Listening() bool {
	return c.listening
}

// Session returns the ID of the current or last session
func (c *Controller) Session() string {
	return c.session
}

// TimerActive reports whether the tick timer is armed
func (c *Controller) TimerActive() bool {
	return c.timer.Active()
}
