package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type WindowOptions struct {
	Title          string
	Width          int
	Height         int
	Resizable      bool
	VSync          bool
	DebugExtension string // extension reported at startup, informational only
}

const (
	configDirName = "glclear"
	configFile    = "config.toml"
)

func Defaults() *WindowOptions {
	return &WindowOptions{
		Title:          "Example GL Window",
		Width:          800,
		Height:         600,
		Resizable:      true,
		VSync:          true,
		DebugExtension: "GL_KHR_debug",
	}
}

// DefaultPath returns the location of the optional config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFile), nil
}

// Load returns the defaults overridden by whatever the TOML file at path sets.
// A missing file is not an error. The file is never created or written.
func Load(path string) (*WindowOptions, error) {
	opts := Defaults()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return opts, nil
}

func (o *WindowOptions) Validate() error {
	if o.Title == "" {
		return errors.New("title must not be empty")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", o.Width, o.Height)
	}
	return nil
}
