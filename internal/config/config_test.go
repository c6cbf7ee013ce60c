package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultColorScheme(t *testing.T) {
	defaults := DefaultColorScheme()

	if defaults.Preset != "default" {
		t.Errorf("Default preset = %s, want default", defaults.Preset)
	}
	if defaults.Accent == "" {
		t.Error("Default accent color should not be empty")
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Loaded preset = %s, want default", cfg.ColorScheme.Preset)
	}
	if cfg.DataDir != "" {
		t.Errorf("Loaded data dir = %s, want empty", cfg.DataDir)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir with config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "masar")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `data_dir: /tmp/masar-test
theme:
  accent: "#FF5733"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.DataDir != "/tmp/masar-test" {
		t.Errorf("Loaded data dir = %s, want /tmp/masar-test", cfg.DataDir)
	}
	if cfg.ColorScheme.Accent != "#FF5733" {
		t.Errorf("Loaded accent = %s, want #FF5733", cfg.ColorScheme.Accent)
	}

	// Unspecified values should use defaults
	if cfg.ColorScheme.Subtle != DefaultColorScheme().Subtle {
		t.Errorf("Loaded subtle = %s, want default", cfg.ColorScheme.Subtle)
	}
}

func TestSaveConfig(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		DataDir:     "/tmp/masar-test",
		ColorScheme: MonochromeColorScheme(),
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after save failed: %v", err)
	}

	if loaded.DataDir != "/tmp/masar-test" {
		t.Errorf("Reloaded data dir = %s, want /tmp/masar-test", loaded.DataDir)
	}
	if loaded.ColorScheme.Preset != "monochrome" {
		t.Errorf("Reloaded preset = %s, want monochrome", loaded.ColorScheme.Preset)
	}
}

func TestDatabasePathOverride(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/masar-test"}

	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() failed: %v", err)
	}
	if path != filepath.Join("/tmp/masar-test", "masar.db") {
		t.Errorf("DatabasePath() = %s, want /tmp/masar-test/masar.db", path)
	}
}

func TestThemeFileMerge(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	origTheme := os.Getenv("MASAR_THEME_FILE")
	defer func() {
		os.Setenv("XDG_CONFIG_HOME", origXDG)
		os.Setenv("MASAR_THEME_FILE", origTheme)
	}()

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	themePath := filepath.Join(tempDir, "theme.yaml")
	themeContent := `theme:
  title: "#ABCDEF"
`
	if err := os.WriteFile(themePath, []byte(themeContent), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	os.Setenv("MASAR_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Title != "#ABCDEF" {
		t.Errorf("Theme file title = %s, want #ABCDEF", cfg.ColorScheme.Title)
	}
	// Other colors keep defaults
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}
