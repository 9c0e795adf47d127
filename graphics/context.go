package graphics

import "unsafe"

// Context defines the interface for a window with an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	// PollEvent returns the next queued event without blocking.
	// ok is false once the queue is empty.
	PollEvent() (ev Event, ok bool)
	// EndFrame presents the back buffer and pumps pending platform events.
	EndFrame()
	GetWindowSize() (int, int)
	GetFramebufferSize() (int, int)
	ExtensionSupported(name string) bool
	GetProcAddress(name string) unsafe.Pointer
	SetSwapInterval(interval int) error
}

// Surface is the drawing side of a Context.
type Surface interface {
	Clear(c Color) error
}

// Color is an RGBA clear color with channels in [0,1].
type Color struct {
	R, G, B, A float32
}
