package graphics

import "fmt"

type API int

const (
	// AnyAPI leaves the client API and version to the platform.
	AnyAPI API = iota
	OpenGLES
)

// Profile selects the kind of context a window is created with.
type Profile struct {
	API   API
	Major int
	Minor int
}

var (
	DontCare = Profile{API: AnyAPI}
	ES31     = Profile{API: OpenGLES, Major: 3, Minor: 1}
)

func (p Profile) String() string {
	switch p.API {
	case OpenGLES:
		return fmt.Sprintf("OpenGL ES %d.%d", p.Major, p.Minor)
	default:
		return "default GL context"
	}
}
