package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

var quiet = log.New(io.Discard, "", 0)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadBuiltin(t *testing.T) {
	spec := DefaultSpec(608, 608, 32)
	set, err := Load(context.Background(), Builtin(), spec, quiet)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := set.Ground.Bounds(); b.Dx() != 608 || b.Dy() != 608 {
		t.Fatalf("ground bounds %v", b)
	}
	if b := set.Food.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("food bounds %v", b)
	}
	r, g, _, a := set.Food.At(16, 20).RGBA()
	if a == 0 || r <= g {
		t.Fatalf("food center is not red: r=%d g=%d a=%d", r, g, a)
	}
}

func TestLoadPNG(t *testing.T) {
	fsys := fstest.MapFS{
		"ground.png": {Data: encodePNG(t, 64, 48)},
		"food.png":   {Data: encodePNG(t, 8, 8)},
	}
	spec := Spec{
		Ground: Asset{Path: "ground.png", Width: 64, Height: 48},
		Food:   Asset{Path: "food.png", Width: 8, Height: 8},
	}
	set, err := Load(context.Background(), fsys, spec, quiet)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Ground == nil || set.Food == nil {
		t.Fatalf("missing image in %+v", set)
	}
}

func TestDirSpecFindsFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"ground.png": {Data: encodePNG(t, 64, 48)},
		"food.svg":   {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8" viewBox="0 0 8 8"><rect width="8" height="8" fill="#ff0000"/></svg>`)},
	}
	spec := DirSpec(fsys, 64, 48, 8)
	if spec.Ground.Path != "ground.png" || spec.Food.Path != "food.svg" {
		t.Fatalf("paths = %q, %q", spec.Ground.Path, spec.Food.Path)
	}
	if _, err := Load(context.Background(), fsys, spec, quiet); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := Find(fstest.MapFS{}, "ground"); got != "ground.svg" {
		t.Fatalf("Find on empty dir = %q, want ground.svg", got)
	}
}

func TestLoadFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"ground.png": {Data: encodePNG(t, 64, 48)},
		"food.gif":   {Data: []byte("GIF89a")},
		"broken.png": {Data: []byte("not a png")},
	}
	tests := []struct {
		name string
		food Asset
		want error
	}{
		{"missing", Asset{Path: "food.png", Width: 8, Height: 8}, fs.ErrNotExist},
		{"format", Asset{Path: "food.gif", Width: 8, Height: 8}, ErrUnsupportedFormat},
		{"size", Asset{Path: "ground.png", Width: 8, Height: 8}, ErrSize},
		{"corrupt", Asset{Path: "broken.png", Width: 8, Height: 8}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Spec{
				Ground: Asset{Path: "ground.png", Width: 64, Height: 48},
				Food:   tt.food,
			}
			set, err := Load(context.Background(), fsys, spec, quiet)
			if err == nil {
				t.Fatalf("Load succeeded: %+v", set)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if set.Ground != nil || set.Food != nil {
				t.Fatalf("partial set returned on failure")
			}
		})
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, Builtin(), DefaultSpec(608, 608, 32), quiet)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Rasterize([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4" viewBox="0 0 4 4"><rect width="4" height="4" fill="#00ff00"/></svg>`), 4, 4)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	name := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(name, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	set, err := Load(context.Background(), os.DirFS(filepath.Dir(name)), Spec{
		Ground: Asset{Path: "out.png", Width: 4, Height: 4},
		Food:   Asset{Path: "out.png", Width: 4, Height: 4},
	}, quiet)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, g, _, _ := set.Food.At(1, 1).RGBA(); g == 0 {
		t.Fatalf("green channel lost")
	}
}
