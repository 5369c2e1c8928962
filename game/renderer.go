package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"snakeloop/assets"
	"snakeloop/snake"
	"snakeloop/widget"
)

var (
	colorHead        = color.RGBA{0, 128, 0, 255}
	colorBody        = color.RGBA{255, 255, 255, 255}
	colorOutline     = color.RGBA{255, 0, 0, 255}
	colorScore       = color.RGBA{255, 255, 255, 255}
	colorPanel       = color.RGBA{24, 24, 32, 255}
	colorTrack       = color.RGBA{90, 90, 110, 255}
	colorTrackFilled = color.RGBA{120, 180, 255, 255}
	colorKnob        = color.RGBA{230, 230, 240, 255}
	colorLabel       = color.RGBA{200, 200, 210, 255}
	colorGrid        = color.RGBA{255, 255, 0, 80}
	colorBounds      = color.RGBA{255, 255, 0, 200}
)

// scoreScale enlarges the 13px bitmap font to roughly the header height
const scoreScale = 3

// Renderer draws the board, the score and the speed panel
type Renderer struct {
	cfg    Config
	face   text.Face
	ground *ebiten.Image
	food   *ebiten.Image
}

// NewRenderer creates a renderer; images arrive later through SetImages
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetImages converts the decoded assets into GPU images. Must run on the game thread.
func (r *Renderer) SetImages(set assets.Set) {
	r.ground = toEbiten(set.Ground)
	r.food = toEbiten(set.Food)
}

// Loaded reports whether the board images are available
func (r *Renderer) Loaded() bool {
	return r.ground != nil && r.food != nil
}

func toEbiten(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// Render draws one frame
func (r *Renderer) Render(screen *ebiten.Image, snap snake.Snapshot, msg snake.Message, slider *widget.Slider, arena snake.Arena, showGrid bool) {
	screen.Fill(color.Black)

	if r.Loaded() {
		r.drawBoard(screen, snap)
		if showGrid {
			r.drawGrid(screen, arena)
			r.drawDebugInfo(screen, snap, arena)
		}
	}

	r.drawPanel(screen, msg, slider)
}

// drawBoard paints ground, food, snake and score in that order
func (r *Renderer) drawBoard(screen *ebiten.Image, snap snake.Snapshot) {
	screen.DrawImage(r.ground, nil)

	box := float32(r.cfg.Snake.Box)

	// Header icon next to the score
	r.drawImageAt(screen, r.food, float64(box), float64(box)*0.6)

	if snap.Status != snake.NotStarted {
		r.drawImageAt(screen, r.food, float64(snap.Food.X), float64(snap.Food.Y))
	}

	for i, seg := range snap.Snake {
		clr := colorBody
		if i == 0 {
			clr = colorHead
		}
		x, y := float32(seg.X), float32(seg.Y)
		vector.DrawFilledRect(screen, x, y, box, box, clr, false)
		vector.StrokeRect(screen, x, y, box, box, 1, colorOutline, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(float64(box)*2.2, float64(box)*0.55)
	op.ColorScale.ScaleWithColor(colorScore)
	text.Draw(screen, fmt.Sprintf("%d", snap.Score), r.face, op)
}

func (r *Renderer) drawImageAt(screen, img *ebiten.Image, x, y float64) {
	box := float64(r.cfg.Snake.Box)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box/float64(w), box/float64(h))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawGrid outlines every arena cell and the playable bounds
func (r *Renderer) drawGrid(screen *ebiten.Image, a snake.Arena) {
	box := float32(a.Box)
	x0, y0 := float32(a.X0*a.Box), float32(a.Y0*a.Box)
	w, h := float32(a.Width)*box, float32(a.Height)*box

	for i := 1; i < a.Width; i++ {
		x := x0 + float32(i)*box
		vector.StrokeLine(screen, x, y0, x, y0+h, 1, colorGrid, false)
	}
	for j := 1; j < a.Height; j++ {
		y := y0 + float32(j)*box
		vector.StrokeLine(screen, x0, y, x0+w, y, 1, colorGrid, false)
	}
	vector.StrokeRect(screen, x0, y0, w, h, 2, colorBounds, false)
}

// drawDebugInfo prints head and food cells plus the tick count in the top right
func (r *Renderer) drawDebugInfo(screen *ebiten.Image, snap snake.Snapshot, a snake.Arena) {
	info := fmt.Sprintf("%s  tick %d\nlen %d", snap.Status, snap.Ticks, len(snap.Snake))
	if len(snap.Snake) > 0 {
		hx, hy := snap.Snake[0].CellCoords(a.Box)
		fx, fy := snap.Food.CellCoords(a.Box)
		info += fmt.Sprintf("  head (%d,%d)  food (%d,%d)", hx, hy, fx, fy)
	}
	ebitenutil.DebugPrintAt(screen, info, r.cfg.ScreenWidth()-260, 8)
}

// drawPanel paints the status message and the speed slider below the board
func (r *Renderer) drawPanel(screen *ebiten.Image, msg snake.Message, slider *widget.Slider) {
	top := float32(r.cfg.Snake.CanvasHeight)
	vector.DrawFilledRect(screen, 0, top, float32(r.cfg.ScreenWidth()), float32(r.cfg.PanelHeight), colorPanel, false)

	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(12, float64(top)+8)
	op.ColorScale.ScaleWithColor(msg.Color)
	text.Draw(screen, msg.Text, r.face, op)

	if slider == nil {
		return
	}

	x, y := float32(slider.X), float32(slider.Y)
	w, h := float32(slider.Width), float32(slider.Height)
	knob := float32(slider.KnobX())

	vector.DrawFilledRect(screen, x, y+h/2-2, w, 4, colorTrack, false)
	vector.DrawFilledRect(screen, x, y+h/2-2, knob-x, 4, colorTrackFilled, false)
	vector.DrawFilledCircle(screen, knob, y+h/2, h/2, colorKnob, true)

	label := &text.DrawOptions{}
	label.GeoM.Translate(float64(x+w)+16, float64(y+h/2)-7)
	label.ColorScale.ScaleWithColor(colorLabel)
	text.Draw(screen, fmt.Sprintf("Speed: %d fps", slider.Value), r.face, label)
}
