package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "kvforge"
	configFile = "config.yaml"
)

var (
	// Global preferences instance (loaded lazily)
	globalPrefs     *Preferences
	globalPrefsOnce sync.Once
	globalPrefsErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// Preferences represents the user configuration file. Everything in it is
// cosmetic or output-related; key bindings are fixed and never configured.
type Preferences struct {
	Version int `yaml:"version"`

	// Emit holds output settings for the editor
	Emit EmitPrefs `yaml:"emit"`

	// Counter holds bounds for the counter demo
	Counter CounterPrefs `yaml:"counter"`

	// HelloMessage is the banner text for the hello demo
	HelloMessage string `yaml:"hello_message"`
}

// EmitPrefs represents output settings for the editor.
type EmitPrefs struct {
	Format string `yaml:"format"`         // "json" or "yaml"
	Path   string `yaml:"path,omitempty"` // empty means stdout
}

// CounterPrefs represents bounds for the counter demo.
type CounterPrefs struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// NewPreferences creates a Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version: 1,
		Emit: EmitPrefs{
			Format: "json",
		},
		Counter: CounterPrefs{
			Min: 0,
			Max: 255,
		},
		HelloMessage: "Hello from kvforge!",
	}
}

// GetConfigDir returns the OS-appropriate configuration directory for the
// application. This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/kvforge or $HOME/.config/kvforge
//   - macOS: $HOME/.config/kvforge (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\kvforge
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems: Use XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// ensureConfigDir ensures the configuration directory exists.
func ensureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load loads the preferences from disk. If the file doesn't exist, returns
// defaults. Thread-safe - multiple calls return the same instance.
func Load() (*Preferences, error) {
	globalPrefsOnce.Do(func() {
		configPath, err := GetConfigPath()
		if err != nil {
			globalPrefsErr = fmt.Errorf("failed to get config path: %w", err)
			return
		}
		globalPrefs, globalPrefsErr = LoadFrom(configPath)
	})
	return globalPrefs, globalPrefsErr
}

// LoadFrom loads preferences from an explicit path. A missing file is not an
// error; defaults are returned.
func LoadFrom(path string) (*Preferences, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewPreferences(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if prefs.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", prefs.Version)
	}

	// Fill in zero-value gaps so a partial file behaves sensibly
	defaults := NewPreferences()
	if prefs.Emit.Format == "" {
		prefs.Emit.Format = defaults.Emit.Format
	}
	if prefs.Counter.Min == 0 && prefs.Counter.Max == 0 {
		prefs.Counter = defaults.Counter
	}
	if prefs.HelloMessage == "" {
		prefs.HelloMessage = defaults.HelloMessage
	}

	return &prefs, nil
}

// Save saves the preferences to disk.
// Performs an atomic write to prevent corruption on crash.
func (p *Preferences) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return p.saveTo(configPath)
}

// SaveTo saves the preferences to an explicit path with an atomic write.
func (p *Preferences) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	return p.saveTo(path)
}

func (p *Preferences) saveTo(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# kvforge configuration file
# Output settings for the editor and cosmetics for the demo screens.
# Key bindings are fixed and cannot be configured here.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
