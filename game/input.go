package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snakeloop/snake"
)

// ArrowDirection maps the four arrow keys to directions; any other key is ignored
func ArrowDirection(key ebiten.Key) (snake.Direction, bool) {
	switch key {
	case ebiten.KeyArrowLeft:
		return snake.Left, true
	case ebiten.KeyArrowUp:
		return snake.Up, true
	case ebiten.KeyArrowRight:
		return snake.Right, true
	case ebiten.KeyArrowDown:
		return snake.Down, true
	}
	return snake.None, false
}

// KeyboardInput collects the keys pressed since the previous frame
type KeyboardInput struct {
	keys []ebiten.Key
}

// NewKeyboardInput creates a new keyboard input provider
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		keys: make([]ebiten.Key, 0, 8),
	}
}

// Update refreshes the just-pressed key list; call once per frame
func (k *KeyboardInput) Update() {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
}

// Arrows returns this frame's arrow keys as directions, in press order
func (k *KeyboardInput) Arrows() []snake.Direction {
	var dirs []snake.Direction
	for _, key := range k.keys {
		if d, ok := ArrowDirection(key); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// JustPressed reports whether any of the keys went down this frame
func (k *KeyboardInput) JustPressed(keys ...ebiten.Key) bool {
	for _, pressed := range k.keys {
		for _, key := range keys {
			if pressed == key {
				return true
			}
		}
	}
	return false
}
