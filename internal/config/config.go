// Package config holds the user-facing configuration for penrose: workspace
// names, window classes that always float, border styling and keybindings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Colors configures window border colors as "#rrggbb" strings.
type Colors struct {
	Focused   string `yaml:"focused"`
	Unfocused string `yaml:"unfocused"`
}

// Config is the full penrose configuration.
type Config struct {
	// Workspaces names the virtual desktops, in order.
	Workspaces []string `yaml:"workspaces"`

	// FloatingClasses lists WM_CLASS entries that always float.
	FloatingClasses []string `yaml:"floating_classes"`

	// BorderPx is the window border width in pixels.
	BorderPx uint32 `yaml:"border_px"`

	// GapPx is the gap left around tiled windows in pixels.
	GapPx uint32 `yaml:"gap_px"`

	// Borders are the focused/unfocused border colors.
	Borders Colors `yaml:"borders"`

	// Keybindings maps key sequences ("Mod4-j") to action names.
	Keybindings map[string]string `yaml:"keybindings"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Workspaces:      []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		FloatingClasses: []string{"dmenu", "dunst"},
		BorderPx:        2,
		GapPx:           5,
		Borders: Colors{
			Focused:   "#cc241d",
			Unfocused: "#3c3836",
		},
		Keybindings: map[string]string{
			"Mod4-Shift-q": "quit",
		},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "penrose", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error: defaults apply.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a config file, layering its values over the defaults.
// A missing file yields the defaults unchanged.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the window manager cannot
// start with.
func (c *Config) Validate() error {
	if len(c.Workspaces) == 0 {
		return fmt.Errorf("at least one workspace is required")
	}
	for i, name := range c.Workspaces {
		if name == "" {
			return fmt.Errorf("workspace %d has an empty name", i)
		}
	}
	if err := validateColor(c.Borders.Focused); err != nil {
		return fmt.Errorf("borders.focused: %w", err)
	}
	if err := validateColor(c.Borders.Unfocused); err != nil {
		return fmt.Errorf("borders.unfocused: %w", err)
	}
	return nil
}

func validateColor(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("color %q must look like #rrggbb", s)
	}
	for _, r := range s[1:] {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		if !isHex {
			return fmt.Errorf("color %q must look like #rrggbb", s)
		}
	}
	return nil
}
