// Package assets loads the two images the snake board is drawn with.
package assets

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/sync/errgroup"
)

//go:embed ground.svg food.svg
var builtin embed.FS

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrSize              = errors.New("unexpected image size")
)

// Builtin returns the file system holding the default images
func Builtin() fs.FS {
	return builtin
}

// Asset names one image file and the pixel size it must have
type Asset struct {
	Path   string
	Width  int
	Height int
}

// Spec lists the images required before a game can start
type Spec struct {
	Ground Asset
	Food   Asset
}

// DefaultSpec returns the built-in file names sized for the given board
func DefaultSpec(canvasWidth, canvasHeight, box int) Spec {
	return Spec{
		Ground: Asset{Path: "ground.svg", Width: canvasWidth, Height: canvasHeight},
		Food:   Asset{Path: "food.svg", Width: box, Height: box},
	}
}

// extensions lists the decodable formats in lookup order
var extensions = []string{".svg", ".png"}

// Find returns the first of name.svg and name.png present in fsys.
// When neither exists it returns name.svg, which Load then reports as missing.
func Find(fsys fs.FS, name string) string {
	for _, ext := range extensions {
		if _, err := fs.Stat(fsys, name+ext); err == nil {
			return name + ext
		}
	}
	return name + extensions[0]
}

// DirSpec is DefaultSpec with each file name resolved by Find, so a directory
// of PNGs written by assetgen works without naming the files
func DirSpec(fsys fs.FS, canvasWidth, canvasHeight, box int) Spec {
	spec := DefaultSpec(canvasWidth, canvasHeight, box)
	spec.Ground.Path = Find(fsys, "ground")
	spec.Food.Path = Find(fsys, "food")
	return spec
}

// Set is the result of a successful load
type Set struct {
	Ground image.Image
	Food   image.Image
}

// Load reads both assets concurrently and returns once both are decoded.
// The first failure cancels the other load and is returned.
func Load(ctx context.Context, fsys fs.FS, spec Spec, logger *log.Logger) (Set, error) {
	if logger == nil {
		logger = log.Default()
	}

	var set Set
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		img, err := loadOne(ctx, fsys, spec.Ground)
		if err != nil {
			return fmt.Errorf("ground: %w", err)
		}
		set.Ground = img
		logger.Printf("loaded ground image %s", spec.Ground.Path)
		return nil
	})
	g.Go(func() error {
		img, err := loadOne(ctx, fsys, spec.Food)
		if err != nil {
			return fmt.Errorf("food: %w", err)
		}
		set.Food = img
		logger.Printf("loaded food image %s", spec.Food.Path)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Set{}, err
	}
	return set, nil
}

func loadOne(ctx context.Context, fsys fs.FS, a Asset) (image.Image, error) {
	data, err := fs.ReadFile(fsys, a.Path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(a.Path)) {
	case ".svg":
		return Rasterize(data, a.Width, a.Height)
	case ".png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Path, err)
		}
		if b := img.Bounds(); b.Dx() != a.Width || b.Dy() != a.Height {
			return nil, fmt.Errorf("%s is %dx%d, want %dx%d: %w",
				a.Path, b.Dx(), b.Dy(), a.Width, a.Height, ErrSize)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%s: %w", a.Path, ErrUnsupportedFormat)
}

// Rasterize renders SVG data into an RGBA image of the given size
func Rasterize(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// WritePNG saves an image to disk
func WritePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return f.Close()
}
