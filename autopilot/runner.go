// Package autopilot steers the snake with a JavaScript decide function.
package autopilot

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"snakeloop/snake"
)

//go:embed greedy.js
var GreedyScript string

var (
	ErrNoDecide         = errors.New("script must define a 'decide' function")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Point is a position in cell units
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ArenaInfo describes the legal cells, [x0, x0+width) x [y0, y0+height)
type ArenaInfo struct {
	X0     int `json:"x0"`
	Y0     int `json:"y0"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Context is passed to decide on every tick
type Context struct {
	Head      Point     `json:"head"`
	Food      Point     `json:"food"`
	Snake     []Point   `json:"snake"`
	Direction string    `json:"direction"`
	Score     int       `json:"score"`
	Ticks     int       `json:"ticks"`
	Arena     ArenaInfo `json:"arena"`
}

// BuildContext converts a snapshot into cell units
func BuildContext(snap snake.Snapshot, a snake.Arena) Context {
	toPoint := func(s snake.Segment) Point {
		x, y := s.CellCoords(a.Box)
		return Point{X: x, Y: y}
	}
	body := make([]Point, len(snap.Snake))
	for i, s := range snap.Snake {
		body[i] = toPoint(s)
	}
	ctx := Context{
		Food:      toPoint(snap.Food),
		Snake:     body,
		Direction: snap.Dir.String(),
		Score:     snap.Score,
		Ticks:     snap.Ticks,
		Arena:     ArenaInfo{X0: a.X0, Y0: a.Y0, Width: a.Width, Height: a.Height},
	}
	if len(body) > 0 {
		ctx.Head = body[0]
	}
	return ctx
}

// Runner holds one JavaScript runtime with a compiled decide function
type Runner struct {
	mu     sync.Mutex
	name   string
	vm     *goja.Runtime
	decide goja.Callable
}

// New compiles the script and looks up its decide function
func New(name, code string) (*Runner, error) {
	prog, err := goja.Compile(name, code, false)
	if err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	if _, err := vm.RunProgram(prog); err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}

	decide, ok := goja.AssertFunction(vm.Get("decide"))
	if !ok {
		return nil, ErrNoDecide
	}
	return &Runner{name: name, vm: vm, decide: decide}, nil
}

// Validate checks that code parses and defines decide
func Validate(code string) error {
	_, err := New("validate.js", code)
	return err
}

// Name returns the script name given to New
func (r *Runner) Name() string {
	return r.name
}

// Decide calls the script and parses its answer.
// undefined, null and "" mean no change.
func (r *Runner) Decide(ctx Context) (snake.Direction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.decide(goja.Undefined(), r.vm.ToValue(ctx))
	if err != nil {
		return snake.None, fmt.Errorf("decide function failed: %w", err)
	}
	if goja.IsUndefined(result) || goja.IsNull(result) {
		return snake.None, nil
	}

	name, ok := result.Export().(string)
	if !ok {
		return snake.None, fmt.Errorf("%w: %v", ErrUnknownDirection, result)
	}
	d, ok := snake.ParseDirection(name)
	if !ok {
		return snake.None, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
	return d, nil
}

// Steer implements snake.Pilot
func (r *Runner) Steer(snap snake.Snapshot, a snake.Arena) (snake.Direction, error) {
	return r.Decide(BuildContext(snap, a))
}
