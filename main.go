package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"snakeloop/assets"
	"snakeloop/autopilot"
	"snakeloop/game"
	"snakeloop/snake"
)

func main() {
	config := game.DefaultConfig()

	fps := flag.Int("fps", config.Snake.DefaultFPS, "Initial snake speed in ticks per second")
	reattach := flag.Bool("reattach-input", config.Snake.ReattachInput, "Re-register arrow key input on every round start")
	seed := flag.Int64("seed", 0, "Food placement seed (0 picks one from the clock)")
	scale := flag.Float64("scale", config.Scale, "Window scale factor")
	flag.StringVar(&config.AssetDir, "assets", "", "Directory with ground and food images, .svg or .png (default: built-in)")
	flag.StringVar(&config.GroundFile, "ground", "", "Ground image file name inside -assets (default: ground.svg or ground.png)")
	flag.StringVar(&config.FoodFile, "food", "", "Food image file name inside -assets (default: food.svg or food.png)")
	flag.StringVar(&config.ScriptPath, "script", "", "JavaScript pilot file, or \"greedy\" for the built-in one")
	flag.StringVar(&config.ProfilesDir, "profiles", config.ProfilesDir, "Directory for F2 CPU profiles")
	flag.Parse()

	config.Snake.DefaultFPS = config.Snake.ClampFPS(*fps)
	config.Snake.ReattachInput = *reattach
	config.Scale = *scale

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting snake: %d fps, seed %d, reattach-input=%v", config.Snake.DefaultFPS, *seed, config.Snake.ReattachInput)

	ctrl := snake.NewController(config.Snake, rand.New(rand.NewSource(*seed)), log.Default())

	if config.ScriptPath != "" {
		pilot, err := loadPilot(config.ScriptPath)
		if err != nil {
			log.Fatalf("Failed to load pilot script: %v", err)
		}
		ctrl.SetPilot(pilot)
		log.Printf("Pilot %q steering", pilot.Name())
	}

	fsys, spec := assetSource(config)
	g := game.NewGame(config, ctrl, fsys, spec, log.Default())

	ebiten.SetWindowSize(int(float64(config.ScreenWidth())*config.Scale), int(float64(config.ScreenHeight())*config.Scale))
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// assetSource returns the built-in images or the ones in config.AssetDir
func assetSource(config game.Config) (fs.FS, assets.Spec) {
	w, h, box := config.Snake.CanvasWidth, config.Snake.CanvasHeight, config.Snake.Box
	if config.AssetDir == "" {
		return assets.Builtin(), assets.DefaultSpec(w, h, box)
	}

	fsys := os.DirFS(config.AssetDir)
	spec := assets.DirSpec(fsys, w, h, box)
	if config.GroundFile != "" {
		spec.Ground.Path = config.GroundFile
	}
	if config.FoodFile != "" {
		spec.Food.Path = config.FoodFile
	}
	log.Printf("Loading images from %s: %s, %s", config.AssetDir, spec.Ground.Path, spec.Food.Path)
	return fsys, spec
}

// loadPilot compiles the built-in greedy script or a script file
func loadPilot(path string) (*autopilot.Runner, error) {
	if path == "greedy" {
		return autopilot.New("greedy", autopilot.GreedyScript)
	}
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return autopilot.New(path, string(code))
}
