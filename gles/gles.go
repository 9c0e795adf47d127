package gles

/*
// Bound in place of entry points the platform could not resolve.
static void gles_unresolved(void) {}
*/
import "C"

import (
	"sync"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/richinsley/glclear/glload"
	"github.com/richinsley/glclear/graphics"
)

var (
	loadOnce  sync.Once
	loadTable *glload.Table
	loadErr   error
)

// Load binds the GL ES function pointers through resolve. It runs once per
// process; later calls return the first result.
func Load(resolve glload.ProcAddrFunc) (*glload.Table, error) {
	loadOnce.Do(func() {
		loadTable, loadErr = glload.Load(gl.InitWithProcAddrFunc, resolve, unsafe.Pointer(C.gles_unresolved))
	})
	return loadTable, loadErr
}

// Surface clears the default framebuffer of the current context.
type Surface struct {
	table *glload.Table
}

var _ graphics.Surface = (*Surface)(nil)

// NewSurface returns a Surface whose GL calls are gated by table.
func NewSurface(table *glload.Table) *Surface {
	return &Surface{table: table}
}

func (s *Surface) Clear(c graphics.Color) error {
	if err := s.table.Check("glClearColor", "glClear"); err != nil {
		return err
	}
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

// Version returns the GL_VERSION string of the current context.
func (s *Surface) Version() (string, error) {
	if err := s.table.Check("glGetString"); err != nil {
		return "", err
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}
