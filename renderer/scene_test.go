package renderer

import (
	"testing"

	"github.com/richinsley/glclear/graphics"
)

func TestClearColor(t *testing.T) {
	tests := []struct {
		w, h, x, y int
		want       graphics.Color
	}{
		{800, 600, 800, 600, graphics.Color{R: 1, G: 1, B: 0, A: 1}},
		{800, 600, 0, 0, graphics.Color{R: 0, G: 0, B: 0, A: 1}},
		{400, 300, 200, 150, graphics.Color{R: 0.5, G: 0.5, B: 0, A: 1}},
		{400, 200, 100, 150, graphics.Color{R: 0.25, G: 0.75, B: 0, A: 1}},
		// pointer dragged outside the window
		{400, 300, -20, 900, graphics.Color{R: 0, G: 1, B: 0, A: 1}},
	}
	for _, tt := range tests {
		s := &Scene{Width: tt.w, Height: tt.h, PointerX: tt.x, PointerY: tt.y}
		got, ok := s.ClearColor()
		if !ok {
			t.Errorf("ClearColor() for %dx%d at (%d,%d) not ok", tt.w, tt.h, tt.x, tt.y)
			continue
		}
		if got != tt.want {
			t.Errorf("ClearColor() for %dx%d at (%d,%d) = %+v, want %+v", tt.w, tt.h, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClearColorZeroDimension(t *testing.T) {
	for _, s := range []*Scene{
		{Width: 0, Height: 600, PointerX: 10, PointerY: 10},
		{Width: 800, Height: 0, PointerX: 10, PointerY: 10},
		{Width: 0, Height: 0},
	} {
		if c, ok := s.ClearColor(); ok {
			t.Errorf("ClearColor() for %dx%d = %+v, want skipped", s.Width, s.Height, c)
		}
	}
}

func TestNewSceneDefaultPointer(t *testing.T) {
	s := NewScene(800, 600)
	if s.PointerX != 800 || s.PointerY != 600 {
		t.Errorf("pointer = (%d,%d), want (800,600)", s.PointerX, s.PointerY)
	}
}

func TestApply(t *testing.T) {
	s := NewScene(800, 600)

	if s.Apply(graphics.MouseMotionEvent{X: 12, Y: 34}) {
		t.Error("mouse motion reported quit")
	}
	if s.PointerX != 12 || s.PointerY != 34 {
		t.Errorf("pointer = (%d,%d), want (12,34)", s.PointerX, s.PointerY)
	}

	if s.Apply(graphics.WindowResizedEvent{Width: 640, Height: 480}) {
		t.Error("resize reported quit")
	}
	if s.Width != 640 || s.Height != 480 {
		t.Errorf("view = %dx%d, want 640x480", s.Width, s.Height)
	}

	before := *s
	for _, ev := range []graphics.Event{
		graphics.FramebufferResizedEvent{Width: 1, Height: 1},
		graphics.KeyEvent{Key: 65, Pressed: true},
	} {
		if s.Apply(ev) {
			t.Errorf("%T reported quit", ev)
		}
	}
	if *s != before {
		t.Errorf("ignored events changed scene: %+v, want %+v", *s, before)
	}

	if !s.Apply(graphics.QuitEvent{}) {
		t.Error("quit event not reported")
	}
}
