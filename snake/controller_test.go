package snake

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestController(cfg Config) *Controller {
	return NewController(cfg, rand.New(rand.NewSource(42)), log.New(io.Discard, "", 0))
}

func TestControllerWaitsForAssets(t *testing.T) {
	c := newTestController(DefaultConfig())
	t0 := time.Unix(0, 0)

	if c.TryStart(t0) {
		t.Fatalf("started before assets were loaded")
	}
	if c.Status() != NotStarted {
		t.Fatalf("status = %v", c.Status())
	}

	c.AssetsLoaded(t0, nil)
	if c.Status() != Running || !c.TimerActive() || !c.Listening() {
		t.Fatalf("status=%v timer=%t listening=%t after load", c.Status(), c.TimerActive(), c.Listening())
	}
	if c.Session() == "" {
		t.Fatalf("no session id")
	}
	if c.TryStart(t0) {
		t.Fatalf("second start while running")
	}
}

func TestControllerLoadFailureNeverStarts(t *testing.T) {
	c := newTestController(DefaultConfig())
	t0 := time.Unix(0, 0)

	c.AssetsLoaded(t0, errors.New("ground.svg: file does not exist"))

	if c.Status() != NotStarted || c.TryStart(t0) {
		t.Fatalf("game started after load failure")
	}
	msg := c.Message()
	if !strings.Contains(msg.Text, "ground.svg") || msg.Color != colorDanger {
		t.Fatalf("message = %+v", msg)
	}
	if n := c.Advance(t0.Add(time.Hour)); n != 0 {
		t.Fatalf("ran %d ticks without a session", n)
	}
	c.SetSpeed(20, t0)
	if c.Status() != NotStarted {
		t.Fatalf("speed change started a game without assets")
	}
}

func TestControllerFirstDirectionSetsMessage(t *testing.T) {
	c := newTestController(DefaultConfig())
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)

	if got := c.Message().Text; got != msgReady {
		t.Fatalf("message = %q", got)
	}
	if !c.HandleArrow(Right) {
		t.Fatalf("first arrow rejected")
	}
	if got := c.Message().Text; got != msgMoving {
		t.Fatalf("message = %q", got)
	}
	if c.HandleArrow(Left) {
		t.Fatalf("reversal accepted")
	}
	if c.Snapshot().Dir != Right {
		t.Fatalf("dir = %v", c.Snapshot().Dir)
	}
}

func TestControllerTicksOnSchedule(t *testing.T) {
	cfg := DefaultConfig()
	c := newTestController(cfg)
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)
	c.state.Food = Cell(2, 16, cfg.Box)
	c.HandleArrow(Up)

	if n := c.Advance(t0.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("ticked %d times before the interval", n)
	}
	if n := c.Advance(t0.Add(200 * time.Millisecond)); n != 2 {
		t.Fatalf("ticked %d times, want 2", n)
	}
	if got := c.Snapshot().Snake[0]; got != Cell(9, 8, cfg.Box) {
		t.Fatalf("head = %v, want cell (9,8)", got)
	}
}

func TestControllerWallDeathStops(t *testing.T) {
	cfg := DefaultConfig()
	c := newTestController(cfg)
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)
	c.state.Snake = []Segment{Cell(0, 10, cfg.Box)}
	c.state.Food = Cell(5, 5, cfg.Box)
	c.HandleArrow(Down)

	c.Advance(t0.Add(time.Second))

	if c.Status() != Stopped {
		t.Fatalf("status = %v", c.Status())
	}
	if c.TimerActive() || c.Listening() {
		t.Fatalf("timer=%t listening=%t after stop", c.TimerActive(), c.Listening())
	}
	if got := c.Message(); got.Text != msgHitWall || got.Color != colorDanger {
		t.Fatalf("message = %+v", got)
	}
	ticks := c.Snapshot().Ticks
	if n := c.Advance(t0.Add(time.Hour)); n != 0 || c.Snapshot().Ticks != ticks {
		t.Fatalf("ticks continued after stop")
	}
	if c.HandleArrow(Left) {
		t.Fatalf("arrow accepted after stop")
	}
}

func TestControllerSelfCollisionStops(t *testing.T) {
	cfg := DefaultConfig()
	c := newTestController(cfg)
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)
	c.state.Snake = []Segment{Cell(5, 5, cfg.Box), Cell(6, 5, cfg.Box), Cell(7, 5, cfg.Box)}
	c.state.Food = Cell(12, 12, cfg.Box)

	c.Advance(t0.Add(100 * time.Millisecond))

	if c.Status() != Stopped || c.Message().Text != msgAteSelf {
		t.Fatalf("status=%v message=%q", c.Status(), c.Message().Text)
	}
}

func TestControllerTwoTurnsBetweenTicksCannotReverse(t *testing.T) {
	cfg := DefaultConfig()
	c := newTestController(cfg)
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)
	c.state.Snake = []Segment{Cell(9, 10, cfg.Box), Cell(8, 10, cfg.Box), Cell(7, 10, cfg.Box)}
	c.state.Food = Cell(15, 15, cfg.Box)
	c.HandleArrow(Right)

	if n := c.Advance(t0.Add(100 * time.Millisecond)); n != 1 {
		t.Fatalf("ticked %d times, want 1", n)
	}

	if !c.HandleArrow(Up) {
		t.Fatalf("up rejected")
	}
	if c.HandleArrow(Left) {
		t.Fatalf("left accepted before the snake moved up")
	}
	if got := c.Snapshot().Dir; got != Up {
		t.Fatalf("dir = %v, want up", got)
	}

	c.Advance(t0.Add(200 * time.Millisecond))

	if c.Status() != Running {
		t.Fatalf("status = %v, message %q", c.Status(), c.Message().Text)
	}
	if got := c.Snapshot().Snake[0]; got != Cell(10, 9, cfg.Box) {
		t.Fatalf("head = %v, want cell (10,9)", got)
	}
}

func TestControllerSpeedChangeRestarts(t *testing.T) {
	tests := []struct {
		name          string
		reattach      bool
		wantListening bool
	}{
		{"reattach", true, true},
		{"listener stays detached", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ReattachInput = tt.reattach
			c := newTestController(cfg)
			t0 := time.Unix(0, 0)
			c.AssetsLoaded(t0, nil)
			first := c.Session()
			c.HandleArrow(Up)

			c.SetSpeed(25, t0.Add(time.Millisecond))

			if c.Status() != Running || !c.TimerActive() {
				t.Fatalf("status=%v timer=%t after speed change", c.Status(), c.TimerActive())
			}
			if c.Session() == first {
				t.Fatalf("session was not recreated")
			}
			if c.FPS() != 25 {
				t.Fatalf("fps = %d", c.FPS())
			}
			if snap := c.Snapshot(); snap.Dir != None || len(snap.Snake) != 1 || snap.Score != 0 {
				t.Fatalf("state not reset: %+v", snap)
			}
			if c.Listening() != tt.wantListening {
				t.Fatalf("listening = %t, want %t", c.Listening(), tt.wantListening)
			}
			if got := c.HandleArrow(Left); got != tt.wantListening {
				t.Fatalf("HandleArrow = %t, want %t", got, tt.wantListening)
			}
		})
	}
}

func TestControllerRapidSpeedChanges(t *testing.T) {
	c := newTestController(DefaultConfig())
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)

	for fps := 1; fps <= 40; fps++ {
		c.SetSpeed(fps, t0)
	}
	if c.Status() != Running || c.FPS() != DefaultConfig().MaxFPS {
		t.Fatalf("status=%v fps=%d", c.Status(), c.FPS())
	}
	if n := c.Advance(t0.Add(c.cfg.Interval(c.FPS()))); n != 1 {
		t.Fatalf("ticks = %d, want exactly one timer", n)
	}
}

func TestControllerRestartAfterStop(t *testing.T) {
	cfg := DefaultConfig()
	c := newTestController(cfg)
	t0 := time.Unix(0, 0)

	if c.Restart(t0) {
		t.Fatalf("restart before any session")
	}
	c.AssetsLoaded(t0, nil)
	if c.Restart(t0) {
		t.Fatalf("restart while running")
	}
	c.state.Snake = []Segment{Cell(0, 10, cfg.Box)}
	c.Advance(t0.Add(time.Second))
	if c.Status() != Stopped {
		t.Fatalf("status = %v", c.Status())
	}
	if !c.Restart(t0.Add(2 * time.Second)) {
		t.Fatalf("restart after stop failed")
	}
	if c.Status() != Running || c.Snapshot().Snake[0] != cfg.Start() {
		t.Fatalf("restart did not reset the snake")
	}
}

type stubPilot struct {
	dirs  []Direction
	calls int
}

func (p *stubPilot) Steer(snap Snapshot, arena Arena) (Direction, error) {
	if p.calls >= len(p.dirs) {
		return None, errors.New("out of moves")
	}
	d := p.dirs[p.calls]
	p.calls++
	return d, nil
}

func TestControllerPilotSteersThroughListener(t *testing.T) {
	cfg := DefaultConfig()
	c := newTestController(cfg)
	pilot := &stubPilot{dirs: []Direction{Right, Left, Up}}
	c.SetPilot(pilot)
	t0 := time.Unix(0, 0)
	c.AssetsLoaded(t0, nil)
	c.state.Food = Cell(1, 16, cfg.Box)

	for i := 1; i <= 3; i++ {
		c.Advance(t0.Add(time.Duration(i) * 100 * time.Millisecond))
	}

	if pilot.calls != 3 {
		t.Fatalf("pilot consulted %d times", pilot.calls)
	}
	// right, right (reversal rejected), up
	if got := c.Snapshot().Snake[0]; got != Cell(11, 9, cfg.Box) {
		t.Fatalf("head = %v, want cell (11,9)", got)
	}
	// pilot errors are logged and the game keeps running
	c.Advance(t0.Add(400 * time.Millisecond))
	if c.Status() != Running {
		t.Fatalf("status = %v after pilot error", c.Status())
	}
}
