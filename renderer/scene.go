package renderer

import (
	"github.com/richinsley/glclear/graphics"
)

// Scene is the state the loop keeps between frames: the last reported window
// size and the last reported pointer position, both in window coordinates.
type Scene struct {
	Width, Height int
	PointerX      int
	PointerY      int
}

// NewScene starts the pointer at the far corner of the window, so the first
// frame clears to (1, 1, 0, 1) until the pointer moves.
func NewScene(width, height int) *Scene {
	return &Scene{
		Width:    width,
		Height:   height,
		PointerX: width,
		PointerY: height,
	}
}

// Apply folds one event into the scene and reports whether it asks to quit.
func (s *Scene) Apply(ev graphics.Event) (quit bool) {
	switch e := ev.(type) {
	case graphics.QuitEvent:
		return true
	case graphics.MouseMotionEvent:
		s.PointerX, s.PointerY = e.X, e.Y
	case graphics.WindowResizedEvent:
		s.Width, s.Height = e.Width, e.Height
	}
	return false
}

// ClearColor maps the pointer position to red and green. ok is false while
// either window dimension is zero, e.g. when minimized.
func (s *Scene) ClearColor() (c graphics.Color, ok bool) {
	if s.Width <= 0 || s.Height <= 0 {
		return graphics.Color{}, false
	}
	return graphics.Color{
		R: ratio(s.PointerX, s.Width),
		G: ratio(s.PointerY, s.Height),
		B: 0,
		A: 1,
	}, true
}

// ratio returns n/d clamped to [0,1]; the pointer can leave the window while dragging.
func ratio(n, d int) float32 {
	r := float32(n) / float32(d)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
