package renderer

import (
	"fmt"

	"github.com/richinsley/glclear/graphics"
)

// Renderer drives the interactive loop: drain events, clear, present.
type Renderer struct {
	context graphics.Context
	surface graphics.Surface
	scene   *Scene
	frames  int
}

func NewRenderer(ctx graphics.Context, surface graphics.Surface) *Renderer {
	width, height := ctx.GetWindowSize()
	return &Renderer{
		context: ctx,
		surface: surface,
		scene:   NewScene(width, height),
	}
}

func (r *Renderer) Scene() *Scene {
	return r.scene
}

// Frames returns the number of frames presented so far.
func (r *Renderer) Frames() int {
	return r.frames
}

// RenderFrame clears the surface to the scene's color. Frames with a zero
// window dimension are left uncleared.
func (r *Renderer) RenderFrame() error {
	color, ok := r.scene.ClearColor()
	if !ok {
		return nil
	}
	if err := r.surface.Clear(color); err != nil {
		return fmt.Errorf("failed to clear frame %d: %w", r.frames, err)
	}
	return nil
}

// Run loops until a QuitEvent is polled. Nothing is drawn or presented
// after the quit, and events queued behind it are left unread.
func (r *Renderer) Run() error {
	for {
		for {
			ev, ok := r.context.PollEvent()
			if !ok {
				break
			}
			if r.scene.Apply(ev) {
				return nil
			}
		}

		if err := r.RenderFrame(); err != nil {
			return err
		}

		r.context.EndFrame()
		r.frames++
	}
}
