// Package config provides user configuration management for kvforge.
//
// This package manages a YAML-based preferences file covering output settings
// (emit format and path) and cosmetics for the demo screens (counter bounds,
// hello banner text). The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/kvforge/config.yaml or $HOME/.config/kvforge/config.yaml
//   - macOS: $HOME/.config/kvforge/config.yaml
//   - Windows: %LOCALAPPDATA%\kvforge\config.yaml
//
// # Scope
//
// Preferences never include key bindings; those are fixed. The mapping being
// edited is never persisted here either - the editor session is in-memory
// only and its output goes through the emit package.
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
//	prefs.Emit.Format = "yaml"
//
//	// Save changes atomically
//	if err := prefs.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global preferences use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
