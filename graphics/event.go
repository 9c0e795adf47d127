package graphics

// Event is one entry of a Context's event queue.
type Event interface {
	isEvent()
}

// QuitEvent asks the render loop to stop.
type QuitEvent struct{}

// MouseMotionEvent carries the pointer position in window coordinates.
type MouseMotionEvent struct {
	X, Y int
}

// WindowResizedEvent carries the new window size in window coordinates.
type WindowResizedEvent struct {
	Width, Height int
}

// FramebufferResizedEvent carries the new drawable size in pixels.
type FramebufferResizedEvent struct {
	Width, Height int
}

// KeyEvent reports a key press or release; repeats are not queued.
type KeyEvent struct {
	Key     int
	Pressed bool
}

func (QuitEvent) isEvent()               {}
func (MouseMotionEvent) isEvent()        {}
func (WindowResizedEvent) isEvent()      {}
func (FramebufferResizedEvent) isEvent() {}
func (KeyEvent) isEvent()                {}
