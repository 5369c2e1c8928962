package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"snakeloop/assets"
	"snakeloop/snake"
)

func main() {
	out := flag.String("out", "assets-png", "Output directory")
	box := flag.Int("box", snake.DefaultConfig().Box, "Cell size in pixels")
	canvas := flag.Int("canvas", snake.DefaultConfig().CanvasWidth, "Canvas width and height in pixels")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	spec := assets.DefaultSpec(*canvas, *canvas, *box)
	set, err := assets.Load(context.Background(), assets.Builtin(), spec, log.Default())
	if err != nil {
		log.Fatalf("Failed to rasterize built-in assets: %v", err)
	}

	files := map[string]image.Image{
		"ground.png": set.Ground,
		"food.png":   set.Food,
	}
	for name, img := range files {
		path := filepath.Join(*out, name)
		if err := assets.WritePNG(path, img); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s", path)
	}
}
