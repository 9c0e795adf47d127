package graphics

import (
	"runtime"
	"testing"
)

func TestPlatformProfile(t *testing.T) {
	got := PlatformProfile()
	want := ES31
	if runtime.GOOS == "darwin" {
		want = DontCare
	}
	if got != want {
		t.Errorf("PlatformProfile() = %v, want %v", got, want)
	}
}

func TestProfileString(t *testing.T) {
	tests := []struct {
		p    Profile
		want string
	}{
		{ES31, "OpenGL ES 3.1"},
		{Profile{API: OpenGLES, Major: 2, Minor: 0}, "OpenGL ES 2.0"},
		{DontCare, "default GL context"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
