// Package config holds the manager's compile-time-constant-turned-struct
// configuration (spec.md §6) and an optional TOML override loader for it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the manager's runtime configuration. Defaults mirror
// original_source/config.h exactly, so the rewrite's out-of-the-box look
// matches the original C implementation's.
type Config struct {
	HeaderSize uint16 `toml:"header_size"`
	BorderSize uint16 `toml:"border_size"`

	MaxWorkspaces int `toml:"max_workspaces"`

	UnfocusedBorderColor uint32 `toml:"unfocused_border_color"`
	UnfocusedHeaderColor uint32 `toml:"unfocused_header_color"`
	FocusedBorderColor   uint32 `toml:"focused_border_color"`
	FocusedHeaderColor   uint32 `toml:"focused_header_color"`
}

// Default matches original_source/config.h verbatim.
func Default() Config {
	return Config{
		HeaderSize:           20,
		BorderSize:           1,
		MaxWorkspaces:        10,
		UnfocusedBorderColor: 0xFF0000,
		UnfocusedHeaderColor: 0x00FF00,
		FocusedBorderColor:   0x0000FF,
		FocusedHeaderColor:   0x00FFFF,
	}
}

// DefaultPath returns the XDG-resolved path to the manager's optional
// override file, $XDG_CONFIG_HOME/swm/config.toml.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("swm", "config.toml"))
}

// Load returns Default() overridden by whatever fields are present in the
// TOML file at path. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	return cfg, nil
}
