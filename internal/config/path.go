package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName names the settings directory under the user's config home.
	AppName = "cytraco"

	// DefaultFilename is the configuration filename inside the settings directory.
	DefaultFilename = "config.toml"
)

// DefaultPath returns the configuration path under the user's XDG config
// home, e.g. ~/.config/cytraco/config.toml. It does not create anything.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultFilename)
}
