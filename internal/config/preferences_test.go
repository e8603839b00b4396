package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "kvforge") {
		t.Errorf("GetConfigDir() = %v, should contain 'kvforge'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewPreferencesDefaults(t *testing.T) {
	prefs := NewPreferences()

	if prefs.Version != 1 {
		t.Errorf("NewPreferences().Version = %v, want 1", prefs.Version)
	}
	if prefs.Emit.Format != "json" {
		t.Errorf("NewPreferences().Emit.Format = %q, want json", prefs.Emit.Format)
	}
	if prefs.Emit.Path != "" {
		t.Errorf("NewPreferences().Emit.Path = %q, want empty (stdout)", prefs.Emit.Path)
	}
	if prefs.Counter.Min != 0 || prefs.Counter.Max != 255 {
		t.Errorf("NewPreferences().Counter = %+v, want {0 255}", prefs.Counter)
	}
	if prefs.HelloMessage == "" {
		t.Error("NewPreferences().HelloMessage should not be empty")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	prefs, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if prefs.Emit.Format != "json" {
		t.Errorf("missing file should yield defaults, got format %q", prefs.Emit.Format)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	prefs := NewPreferences()
	prefs.Emit.Format = "yaml"
	prefs.Emit.Path = "/tmp/pairs.yaml"
	prefs.Counter.Max = 10
	prefs.HelloMessage = "howdy"

	if err := prefs.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if loaded.Emit.Format != "yaml" {
		t.Errorf("Emit.Format = %q, want yaml", loaded.Emit.Format)
	}
	if loaded.Emit.Path != "/tmp/pairs.yaml" {
		t.Errorf("Emit.Path = %q, want /tmp/pairs.yaml", loaded.Emit.Path)
	}
	if loaded.Counter.Max != 10 {
		t.Errorf("Counter.Max = %d, want 10", loaded.Counter.Max)
	}
	if loaded.HelloMessage != "howdy" {
		t.Errorf("HelloMessage = %q, want howdy", loaded.HelloMessage)
	}
}

func TestSaveWritesHeaderComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := NewPreferences().SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# kvforge configuration file") {
		t.Errorf("config file should start with the header comment, got:\n%s", data[:60])
	}
}

func TestLoadFromRejectsUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 99\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject unsupported config versions")
	}
}

func TestLoadFromFillsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nemit:\n  format: yaml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	prefs, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if prefs.Emit.Format != "yaml" {
		t.Errorf("Emit.Format = %q, want yaml", prefs.Emit.Format)
	}
	if prefs.Counter.Max != 255 {
		t.Errorf("Counter.Max = %d, want default 255", prefs.Counter.Max)
	}
	if prefs.HelloMessage == "" {
		t.Error("HelloMessage should fall back to the default")
	}
}
