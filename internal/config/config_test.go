package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if len(cfg.Workspaces) == 0 {
		t.Fatalf("expected default workspaces")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BorderPx != DefaultConfig().BorderPx {
		t.Fatalf("expected default border width, got %d", cfg.BorderPx)
	}
}

func TestLoadFromPath_OverridesLayerOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"workspaces: [\"web\", \"code\"]",
		"floating_classes: [\"pinentry\"]",
		"border_px: 4",
		"keybindings:",
		"  Mod4-j: focus-next",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Workspaces) != 2 || cfg.Workspaces[0] != "web" {
		t.Fatalf("expected workspaces override, got %v", cfg.Workspaces)
	}
	if len(cfg.FloatingClasses) != 1 || cfg.FloatingClasses[0] != "pinentry" {
		t.Fatalf("expected floating class override, got %v", cfg.FloatingClasses)
	}
	if cfg.BorderPx != 4 {
		t.Fatalf("expected border_px 4, got %d", cfg.BorderPx)
	}
	if cfg.Keybindings["Mod4-j"] != "focus-next" {
		t.Fatalf("expected keybinding override, got %v", cfg.Keybindings)
	}
	// Untouched values keep their defaults.
	if cfg.GapPx != DefaultConfig().GapPx {
		t.Fatalf("expected default gap, got %d", cfg.GapPx)
	}
}

func TestLoadFromPath_RejectsEmptyWorkspaceList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("workspaces: []\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for empty workspace list")
	}
}

func TestValidate_BorderColors(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"valid lowercase", "#cc241d", false},
		{"valid uppercase", "#CC241D", false},
		{"missing hash", "cc241d", true},
		{"too short", "#fff", true},
		{"not hex", "#zzzzzz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Borders.Focused = tt.color
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for color %q", tt.color)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for color %q: %v", tt.color, err)
			}
		})
	}
}
