package config

import (
	"os"
	"path/filepath"
	"testing"
)

// useConfigDir points XDG_CONFIG_HOME at a temp directory so tests never
// touch the real user config
func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TAREA_THEME_FILE", "")
	return dir
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "tarea")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	useConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("default backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("default add_task = %q, want a", cfg.KeyMappings.AddTask)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("default quit = %q, want q", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("default accent color is empty")
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, `
storage:
  backend: json
  path: /tmp/my-tasks.json
key_mappings:
  add_task: n
theme:
  accent: "#FF0000"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Backend != "json" {
		t.Errorf("backend = %q, want json", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/my-tasks.json" {
		t.Errorf("path = %q, want /tmp/my-tasks.json", cfg.Storage.Path)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("add_task = %q, want n", cfg.KeyMappings.AddTask)
	}
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("accent = %q, want #FF0000", cfg.ColorScheme.Accent)
	}

	// Unspecified values are filled from defaults
	if cfg.KeyMappings.DeleteTask != "d" {
		t.Errorf("delete_task = %q, want default d", cfg.KeyMappings.DeleteTask)
	}
	if cfg.ColorScheme.Subtle == "" {
		t.Error("unspecified subtle color not defaulted")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "storage: [not: a: mapping")

	if _, err := Load(); err == nil {
		t.Error("Load with malformed yaml succeeded")
	}
}

func TestLoadMonochromePreset(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, `
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ColorScheme.Preset != "monochrome" {
		t.Errorf("preset = %q, want monochrome", cfg.ColorScheme.Preset)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("monochrome preset left accent empty")
	}
	if cfg.ColorScheme.Accent == DefaultColorScheme().Accent {
		t.Error("monochrome accent equals the default preset accent")
	}
}

func TestThemeFileOverridesConfig(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, `
theme:
  accent: "#111111"
  create: "#222222"
`)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, []byte(`
theme:
  accent: "#ABCDEF"
`), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("TAREA_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#ABCDEF" {
		t.Errorf("accent = %q, want theme-file override #ABCDEF", cfg.ColorScheme.Accent)
	}
	// Values the theme file doesn't set stay as configured
	if cfg.ColorScheme.Create != "#222222" {
		t.Errorf("create = %q, want #222222", cfg.ColorScheme.Create)
	}
}

func TestMissingThemeFileIsIgnored(t *testing.T) {
	useConfigDir(t)
	t.Setenv("TAREA_THEME_FILE", "/nonexistent/theme.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("accent = %q, want default", cfg.ColorScheme.Accent)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	useConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Storage.Backend = "json"
	cfg.KeyMappings.Search = "s"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Storage.Backend != "json" {
		t.Errorf("reloaded backend = %q, want json", reloaded.Storage.Backend)
	}
	if reloaded.KeyMappings.Search != "s" {
		t.Errorf("reloaded search = %q, want s", reloaded.KeyMappings.Search)
	}
}
