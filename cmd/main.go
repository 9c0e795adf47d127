package main

import (
	"errors"
	"log"
	"runtime"

	"github.com/richinsley/glclear/gles"
	"github.com/richinsley/glclear/glfwcontext"
	"github.com/richinsley/glclear/glload"
	"github.com/richinsley/glclear/graphics"
	"github.com/richinsley/glclear/options"
	"github.com/richinsley/glclear/renderer"
)

func init() {
	runtime.LockOSThread()
}

func loadOptions() *options.WindowOptions {
	path, err := options.DefaultPath()
	if err != nil {
		log.Printf("No user config directory, using defaults: %v", err)
		return options.Defaults()
	}
	opts, err := options.Load(path)
	if err != nil {
		log.Printf("Ignoring config: %v", err)
		return options.Defaults()
	}
	return opts
}

func reportFunctions(err error) {
	var unresolved *glload.UnresolvedError
	switch {
	case errors.As(err, &unresolved):
		for _, name := range unresolved.Names {
			log.Printf("Function didn't load: %s", name)
		}
	case err != nil:
		log.Printf("Function loading failed: %v", err)
	default:
		log.Println("All functions loaded.")
	}
}

func main() {
	opts := loadOptions()

	platform, err := glfwcontext.InitGraphics()
	if err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	defer platform.TerminateGraphics()

	profile := graphics.PlatformProfile()
	ctx, err := glfwcontext.New(opts, profile)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	width, height := ctx.GetWindowSize()
	log.Printf("GL window size: %dx%d", width, height)
	fbWidth, fbHeight := ctx.GetFramebufferSize()
	log.Printf("GL drawable size: %dx%d", fbWidth, fbHeight)
	log.Printf("%s supported: %t", opts.DebugExtension, ctx.ExtensionSupported(opts.DebugExtension))

	if opts.VSync {
		_ = ctx.SetSwapInterval(1)
	}

	// The loader resolves through the current context.
	ctx.MakeCurrent()
	table, err := gles.Load(ctx.GetProcAddress)
	reportFunctions(err)

	surface := gles.NewSurface(table)
	if version, err := surface.Version(); err == nil {
		log.Printf("GL version: %s (requested %s)", version, profile)
	}

	r := renderer.NewRenderer(ctx, surface)
	log.Println("Starting interactive render loop...")
	if err := r.Run(); err != nil {
		log.Printf("Render loop stopped: %v", err)
		return
	}
	log.Printf("Quit after %d frames", r.Frames())
}
