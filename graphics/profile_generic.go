//go:build !darwin

package graphics

// PlatformProfile returns the context profile for this platform.
func PlatformProfile() Profile {
	return ES31
}
