//go:build darwin

package graphics

// PlatformProfile returns the context profile for this platform.
// macOS has no ES contexts, so any context will do.
func PlatformProfile() Profile {
	return DontCare
}
