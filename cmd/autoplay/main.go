package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"snakeloop/autopilot"
	"snakeloop/snake"
)

// result is the outcome of one headless game
type result struct {
	Session string
	Score   int
	Ticks   int
	Reason  string
}

func main() {
	scriptPath := flag.String("script", "greedy", "JavaScript pilot file, or \"greedy\" for the built-in one")
	games := flag.Int("games", 1, "Number of games to play")
	maxTicks := flag.Int("max-ticks", 5000, "Tick limit per game")
	seed := flag.Int64("seed", 1, "Seed for the first game; game i uses seed+i")
	fps := flag.Int("fps", snake.DefaultConfig().DefaultFPS, "Simulated speed in ticks per second")
	verbose := flag.Bool("v", false, "Log every game event")
	flag.Parse()

	code := autopilot.GreedyScript
	if *scriptPath != "greedy" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		code = string(data)
	}
	if err := autopilot.Validate(code); err != nil {
		log.Fatalf("Invalid script %s: %v", *scriptPath, err)
	}

	cfg := snake.DefaultConfig()
	cfg.DefaultFPS = cfg.ClampFPS(*fps)

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.Default()
	}

	log.Printf("Playing %d game(s) with %s at %d fps", *games, *scriptPath, cfg.DefaultFPS)

	results := make([]result, *games)
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := range results {
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		eg.Go(func() error {
			// Each game gets its own runtime; goja VMs are not goroutine safe
			pilot, err := autopilot.New(*scriptPath, code)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = play(cfg, rand.New(rand.NewSource(*seed+int64(i))), pilot, *maxTicks, logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	best, total := 0, 0
	for i, r := range results {
		fmt.Printf("game %d  session %s  score %d  ticks %d  %s\n", i, r.Session, r.Score, r.Ticks, r.Reason)
		total += r.Score
		if r.Score > results[best].Score {
			best = i
		}
	}
	if len(results) > 0 {
		fmt.Printf("best %d (game %d), mean %.2f\n", results[best].Score, best, float64(total)/float64(len(results)))
	}
}

// play runs one game on a simulated clock until the snake dies or the tick limit is hit
func play(cfg snake.Config, rng *rand.Rand, pilot snake.Pilot, maxTicks int, logger *log.Logger) result {
	ctrl := snake.NewController(cfg, rng, logger)
	ctrl.SetPilot(pilot)

	now := time.Unix(0, 0)
	ctrl.AssetsLoaded(now, nil)

	interval := cfg.Interval(ctrl.FPS())
	for ctrl.Status() == snake.Running && ctrl.Snapshot().Ticks < maxTicks {
		now = now.Add(interval)
		ctrl.Advance(now)
	}

	snap := ctrl.Snapshot()
	reason := ctrl.Message().Text
	if snap.Status == snake.Running {
		reason = "tick limit reached"
	}
	return result{
		Session: ctrl.Session(),
		Score:   snap.Score,
		Ticks:   snap.Ticks,
		Reason:  reason,
	}
}
