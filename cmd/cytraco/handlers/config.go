package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cytraco/cytraco/internal/config"
)

// Output formats for ConfigShow.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Factory function variables for config - can be replaced in tests.
var (
	loadConfig = func(path string) (config.Config, error) {
		return config.NewFileStore(path).Load()
	}
)

// ConfigShow prints the stored configuration in the requested format.
func ConfigShow(path, format string) error {
	path = resolveConfigPath(path)

	cfg, err := loadConfig(path)
	if errors.Is(err, config.ErrNotFound) {
		return fmt.Errorf("no configuration at %s, run cytraco to create one", path)
	}
	if err != nil {
		return err
	}

	out, err := encodeConfig(cfg, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// ConfigPath prints the resolved configuration path.
func ConfigPath(path string) error {
	_, err := fmt.Fprintln(stdout, resolveConfigPath(path))
	return err
}

func encodeConfig(cfg config.Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatTOML:
		return config.Encode(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want toml, yaml or json)", format)
	}
}
