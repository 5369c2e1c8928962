// Package widget holds small input controls drawn by the game front end.
package widget

// Slider is a horizontal integer slider driven by the mouse
type Slider struct {
	X, Y          int
	Width, Height int
	Min, Max      int
	Value         int

	dragging bool
}

// NewSlider creates a slider with value clamped to [min, max]
func NewSlider(x, y, width, height, min, max, value int) *Slider {
	s := &Slider{X: x, Y: y, Width: width, Height: height, Min: min, Max: max}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v int) int {
	return max(s.Min, min(v, s.Max))
}

// Contains reports whether a point is over the slider track
func (s *Slider) Contains(x, y int) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

// Dragging reports whether the knob is held
func (s *Slider) Dragging() bool {
	return s.dragging
}

// ValueAt maps a cursor x coordinate to a slider value
func (s *Slider) ValueAt(x int) int {
	if s.Width <= 1 || s.Max <= s.Min {
		return s.Min
	}
	span := s.Max - s.Min
	offset := x - s.X
	// round to the nearest step
	v := s.Min + (offset*span+(s.Width-1)/2)/(s.Width-1)
	return s.clamp(v)
}

// KnobX returns the x coordinate of the knob center
func (s *Slider) KnobX() int {
	if s.Max <= s.Min {
		return s.X
	}
	return s.X + (s.Value-s.Min)*(s.Width-1)/(s.Max-s.Min)
}

// Update feeds the mouse state for one frame and returns true when the
// value changed. A drag starts only on the track and continues anywhere.
func (s *Slider) Update(cursorX, cursorY int, pressed bool) bool {
	if !pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		if !s.Contains(cursorX, cursorY) {
			return false
		}
		s.dragging = true
	}
	v := s.ValueAt(cursorX)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Step nudges the value by delta and returns true when it changed
func (s *Slider) Step(delta int) bool {
	v := s.clamp(s.Value + delta)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}
