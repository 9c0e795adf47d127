package glfwcontext

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glclear/graphics"
	"github.com/richinsley/glclear/options"
)

// ErrAlreadyInitialized is returned by InitGraphics after its first call.
var ErrAlreadyInitialized = errors.New("graphics already initialized")

var initialized atomic.Bool

// Platform is the process-wide GLFW handle.
type Platform struct {
	terminated bool
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called
// from the main thread, and only once per process.
func InitGraphics() (*Platform, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	log.Printf("GLFW Initialized")
	return &Platform{}, nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func (p *Platform) TerminateGraphics() {
	if p.terminated {
		return
	}
	p.terminated = true
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// Context owns a GLFW window, its GL context and the events its callbacks queue.
type Context struct {
	window *glfw.Window
	events []graphics.Event
}

var _ graphics.Context = (*Context)(nil)

// New creates a window with a context of the given profile and makes that
// context current on the calling thread.
func New(opts *options.WindowOptions, profile graphics.Profile) (*Context, error) {
	glfw.DefaultWindowHints()
	if profile.API == graphics.OpenGLES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, profile.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, profile.Minor)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s window: %w", profile, err)
	}
	c := &Context{window: win}
	c.MakeCurrent()
	win.SetCloseCallback(c.closeCallback)
	win.SetKeyCallback(c.keyCallback)
	win.SetCursorPosCallback(c.cursorPosCallback)
	win.SetSizeCallback(c.sizeCallback)
	win.SetFramebufferSizeCallback(c.framebufferSizeCallback)

	return c, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (c *Context) push(ev graphics.Event) {
	c.events = append(c.events, ev)
}

func (c *Context) closeCallback(w *glfw.Window) {
	c.push(graphics.QuitEvent{})
}

func (c *Context) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	c.push(graphics.KeyEvent{Key: int(key), Pressed: action == glfw.Press})
	if key == glfw.KeyEscape && action == glfw.Press {
		c.push(graphics.QuitEvent{})
	}
}

func (c *Context) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	c.push(graphics.MouseMotionEvent{X: int(xpos), Y: int(ypos)})
}

func (c *Context) sizeCallback(w *glfw.Window, width, height int) {
	c.push(graphics.WindowResizedEvent{Width: width, Height: height})
}

func (c *Context) framebufferSizeCallback(w *glfw.Window, width, height int) {
	c.push(graphics.FramebufferResizedEvent{Width: width, Height: height})
}

// PollEvent pops the oldest queued event. Events are only added while
// EndFrame pumps GLFW, so a drain loop always terminates.
func (c *Context) PollEvent() (graphics.Event, bool) {
	if len(c.events) == 0 {
		return nil, false
	}
	ev := c.events[0]
	c.events[0] = nil
	c.events = c.events[1:]
	return ev, true
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window and its context.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}

// EndFrame swaps the window buffers, then pumps GLFW so callbacks refill the queue.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetWindowSize() (int, int) {
	return c.window.GetSize()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// ExtensionSupported reports whether the current context exposes the named extension.
func (c *Context) ExtensionSupported(name string) bool {
	return glfw.ExtensionSupported(name)
}

func (c *Context) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// SetSwapInterval sets the swap interval of the current context. GLFW
// reports failures here by panicking; they come back as an error instead.
func (c *Context) SetSwapInterval(interval int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to set swap interval %d: %v", interval, r)
		}
	}()
	glfw.SwapInterval(interval)
	return nil
}
